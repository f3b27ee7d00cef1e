package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/frerich/elixir"
	"github.com/frerich/elixir/docs"
)

// Hover handles textDocument/hover requests: classify the fragment to the
// left of the cursor and render the static documentation for that context
// kind as Markdown.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.logger.Debug("Hover",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	fragment, ok := s.fragmentAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	ctx := elixir.Classify(fragment, s.opts)

	md, ok := docs.Markdown(elixir.Kind(ctx))
	if !ok {
		return nil, nil //nolint:nilnil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: md,
		},
	}, nil
}
