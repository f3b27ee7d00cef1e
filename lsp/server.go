// Package lsp implements a Language Server Protocol server exposing the
// elixir package's cursor classifier as textDocument/completion,
// textDocument/hover, and textDocument/signatureHelp. Transport is
// go.lsp.dev/protocol + go.lsp.dev/jsonrpc2; logging is a zap.Logger
// injected at construction, never a package global. Document state lives in
// package session.
package lsp

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/frerich/elixir"
	"github.com/frerich/elixir/policy"
	"github.com/frerich/elixir/session"
)

// Server implements protocol.Server for the classifier.
type Server struct {
	client protocol.Client
	logger *zap.Logger

	docs *session.Store

	opts elixir.Options

	policyMu sync.RWMutex
	policy   *policy.Config

	initialized   bool
	shutdown      bool
	workspaceRoot string
}

// NewServer creates a new LSP server. pol may be nil, in which case every
// context kind is allowed.
func NewServer(client protocol.Client, logger *zap.Logger, pol *policy.Config) *Server {
	if pol == nil {
		pol = policy.DefaultConfig()
	}

	return &Server{
		client: client,
		logger: logger,
		docs:   session.NewStore(),
		policy: pol,
	}
}

// SetPolicy swaps the active completion policy, e.g. after a config hot
// reload triggered by emberconfig.Watcher.
func (s *Server) SetPolicy(pol *policy.Config) {
	s.policyMu.Lock()
	defer s.policyMu.Unlock()

	s.policy = pol
}

func (s *Server) currentPolicy() *policy.Config {
	s.policyMu.RLock()
	defer s.policyMu.RUnlock()

	return s.policy
}

// Initialize handles the initialize request.
func (s *Server) Initialize(_ context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Info("Initialize")

	if params.RootURI != "" {
		s.workspaceRoot = string(params.RootURI)
	} else if params.RootPath != "" {
		s.workspaceRoot = params.RootPath
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			HoverProvider: true,
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{".", ":", "@", "/", "("},
				ResolveProvider:   false,
			},
			SignatureHelpProvider: &protocol.SignatureHelpOptions{
				TriggerCharacters: []string{"("},
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "ember-lsp",
			Version: "0.1.0",
		},
	}, nil
}

// Initialized handles the initialized notification.
func (s *Server) Initialized(_ context.Context, _ *protocol.InitializedParams) error {
	s.logger.Info("Initialized")
	s.initialized = true

	return nil
}

// Shutdown handles the shutdown request.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info("Shutdown")
	s.shutdown = true

	return nil
}

// Exit handles the exit notification.
func (s *Server) Exit(_ context.Context) error {
	s.logger.Info("Exit")
	return nil
}

// DidOpen handles textDocument/didOpen notifications.
func (s *Server) DidOpen(_ context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.logger.Info("DidOpen", zap.String("uri", string(params.TextDocument.URI)))

	s.docs.Open(string(params.TextDocument.URI), params.TextDocument.Version, params.TextDocument.Text)

	return nil
}

// DidChange handles textDocument/didChange notifications.
func (s *Server) DidChange(_ context.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.logger.Debug("DidChange", zap.String("uri", string(params.TextDocument.URI)))

	if len(params.ContentChanges) == 0 {
		return nil
	}

	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.Change(string(params.TextDocument.URI), params.TextDocument.Version, text)

	return nil
}

// DidClose handles textDocument/didClose notifications.
func (s *Server) DidClose(_ context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.logger.Info("DidClose", zap.String("uri", string(params.TextDocument.URI)))
	s.docs.Close(string(params.TextDocument.URI))

	return nil
}

// DidSave handles textDocument/didSave notifications.
func (s *Server) DidSave(_ context.Context, _ *protocol.DidSaveTextDocumentParams) error {
	return nil
}

// fragmentAt extracts the cursor-relevant fragment for a position, or false
// if the document isn't open.
func (s *Server) fragmentAt(uri protocol.DocumentURI, pos protocol.Position) (string, bool) {
	doc, ok := s.docs.Get(string(uri))
	if !ok {
		return "", false
	}

	return session.FragmentAt(doc.Text, int(pos.Line), int(pos.Character)), true
}
