package lsp

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/frerich/elixir"
	"github.com/frerich/elixir/lang"
	"github.com/frerich/elixir/policy"
)

// moduleAttributes are the built-in module attributes suggested for
// ModuleAttribute contexts. A real project's symbol index would add
// user-defined ones; this server has none, so these are what it ships with.
var moduleAttributes = []string{
	"behaviour", "callback", "derive", "doc", "enforce_keys",
	"impl", "moduledoc", "spec", "type", "typep",
}

// coreAtoms are the handful of atoms worth suggesting unprompted.
var coreAtoms = []string{"ok", "error", "true", "false", "nil"}

// pipeFunctions are common Enum/String-style function names suggested after
// a dot on a plain variable, standing in for what a real symbol index would
// derive from inferred type information.
var pipeFunctions = []string{
	"map", "filter", "reduce", "each", "reject", "sort", "sort_by",
	"take", "drop", "count", "to_list", "flat_map",
}

var textualOperators = []string{"when", "not", "and", "or"}

// Completion handles textDocument/completion requests. It classifies the
// fragment to the left of the cursor and maps the resulting elixir.Context
// to a completion list, which is the domain logic this server exists to
// exercise.
func (s *Server) Completion(_ context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	s.logger.Debug("Completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	fragment, ok := s.fragmentAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	ctx := elixir.Classify(fragment, s.opts)

	allowed, err := s.allows(ctx, string(params.TextDocument.URI))
	if err != nil {
		s.logger.Warn("Completion: policy evaluation failed", zap.Error(err))
	}
	if !allowed {
		return &protocol.CompletionList{Items: nil}, nil
	}

	items := completionItems(ctx)

	if prefix, ok := elixir.Chars(ctx); ok && prefix != "" {
		items = filterByPrefix(items, prefix)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// allows evaluates the active policy for a classified context.
func (s *Server) allows(ctx elixir.Context, uri string) (bool, error) {
	chars, _ := elixir.Chars(ctx)
	_, insideDot := elixir.InsideDotOf(ctx)

	env := policy.Env{
		Kind:      elixir.Kind(ctx),
		Chars:     chars,
		InsideDot: insideDot,
		Ext:       filepath.Ext(uri),
	}

	return s.currentPolicy().Allows(env)
}

// completionItems maps a classified context to candidate completion items.
// Variants backed by a real symbol table in a full implementation (aliases,
// local variables and calls, dotted alias members) have no static
// candidates here and return nil; this server classifies positions, it
// doesn't index projects.
func completionItems(ctx elixir.Context) []protocol.CompletionItem {
	switch v := ctx.(type) {
	case elixir.UnquotedAtom:
		return itemsFor(coreAtoms, protocol.CompletionItemKindEnumMember)
	case elixir.ModuleAttribute:
		return itemsFor(moduleAttributes, protocol.CompletionItemKindProperty)
	case elixir.Operator, elixir.OperatorArity:
		return itemsFor(lang.Operators(), protocol.CompletionItemKindOperator)
	case elixir.OperatorCall:
		return itemsFor(textualOperators, protocol.CompletionItemKindKeyword)
	case elixir.Dot:
		return dotCompletionItems(v.Inside)
	case elixir.DotCall:
		return dotCompletionItems(v.Inside)
	case elixir.DotArity:
		return dotCompletionItems(v.Inside)
	default:
		return nil
	}
}

func dotCompletionItems(inside elixir.InsideDot) []protocol.CompletionItem {
	if _, ok := inside.(elixir.VarInside); ok {
		return itemsFor(pipeFunctions, protocol.CompletionItemKindFunction)
	}

	return nil
}

func itemsFor(labels []string, kind protocol.CompletionItemKind) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, len(labels))
	for i, label := range labels {
		items[i] = protocol.CompletionItem{Label: label, Kind: kind}
	}

	return items
}

func filterByPrefix(items []protocol.CompletionItem, prefix string) []protocol.CompletionItem {
	filtered := make([]protocol.CompletionItem, 0, len(items))

	for _, item := range items {
		if strings.HasPrefix(item.Label, prefix) {
			filtered = append(filtered, item)
		}
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Label < filtered[j].Label })

	return filtered
}
