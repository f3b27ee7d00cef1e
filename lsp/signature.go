package lsp

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/frerich/elixir"
)

// SignatureHelp handles textDocument/signatureHelp requests. The classifier
// does not recognize call arguments (the cursor is classified as if outside
// them), so this can only tell the caller what's being called, not which
// parameter is active.
func (s *Server) SignatureHelp(_ context.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	s.logger.Debug("SignatureHelp", zap.String("uri", string(params.TextDocument.URI)))

	fragment, ok := s.fragmentAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	ctx := elixir.Classify(fragment, s.opts)

	label, ok := calleeLabel(ctx)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	return &protocol.SignatureHelp{
		Signatures: []protocol.SignatureInformation{
			{Label: label},
		},
		ActiveSignature: 0,
		ActiveParameter: 0,
	}, nil
}

func calleeLabel(ctx elixir.Context) (string, bool) {
	switch v := ctx.(type) {
	case elixir.LocalCall:
		return fmt.Sprintf("%s(...)", v.Chars), true
	case elixir.OperatorCall:
		return fmt.Sprintf("%s(...)", v.Chars), true
	case elixir.DotCall:
		return fmt.Sprintf("%s(...)", v.Chars), true
	default:
		return "", false
	}
}
