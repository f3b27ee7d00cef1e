// Package docs holds the static hover/help documentation for each
// elixir.Context kind, shared by the LSP server's Hover handler and the
// `ember docs` CLI command so the two surfaces never drift out of sync.
// The source of truth is Markdown; RenderHTML and RenderMan derive the
// other formats from it on demand.
package docs

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/yuin/goldmark"
)

// entries maps a context-kind name (as returned by elixir.Kind, e.g.
// "LocalOrVar") to its authored Markdown documentation.
var entries = map[string]string{
	"Expr": "## Expression\n\nAny expression may start here: a literal, a variable, a call, a block " +
		"keyword. There is nothing to narrow the suggestion list by.",
	"None": "## No completion\n\nThe cursor sits in a position where no sensible suggestion exists, " +
		"for example immediately after a bare trailing `.` or a malformed token.",
	"UnquotedAtom": "## Atom\n\nThe cursor follows a `:` and is typing an unquoted atom literal, e.g. " +
		"`:ok` or `:error`.",
	"Alias": "## Alias\n\nThe cursor is typing a capitalized namespace path such as `Foo` or " +
		"`Foo.Bar`. Suggestions should come from known module aliases.",
	"ModuleAttribute": "## Module attribute\n\nThe cursor follows `@` at module scope. Suggestions " +
		"include built-ins like `@doc`, `@moduledoc`, `@spec`, `@behaviour`, and `@impl`.",
	"LocalOrVar": "## Local variable or call\n\nThe cursor is typing a lowercase identifier: either a " +
		"variable reference or the start of a local function call.",
	"LocalArity": "## Local function by arity\n\nThe cursor follows a lowercase identifier and `/`, the " +
		"syntax for referring to a function by name and parameter count.",
	"LocalCall": "## Local function call\n\nThe cursor follows a lowercase identifier and `(` or a " +
		"space in call position. Suggestions should be argument lists or call completions.",
	"Operator": "## Operator\n\nThe cursor is typing a validated operator token such as `+` or `|>`.",
	"OperatorArity": "## Operator by arity\n\nThe cursor follows an operator and `/`, referring to the " +
		"operator as a function value.",
	"OperatorCall": "## Operator call\n\nThe cursor follows an operator and `(` or a space in call " +
		"position, including textual operators like `when`, `not`, `and`, `or`.",
	"Dot": "## Member reference\n\nThe cursor follows `inside.tail`: a dotted reference off a variable, " +
		"alias, atom, or module attribute. Suggestions should be members of whatever `inside` resolves to.",
	"DotArity": "## Member by arity\n\nA Dot immediately followed by `/`: referring to a member function " +
		"by name and parameter count.",
	"DotCall": "## Member call\n\nA Dot immediately followed by `(` or a space in call position.",
}

// Markdown returns the documentation for a context-kind name.
func Markdown(kind string) (string, bool) {
	md, ok := entries[kind]
	return md, ok
}

// Kinds returns every documented context-kind name, sorted for stable
// output (listing commands, man page generation).
func Kinds() []string {
	kinds := make([]string, 0, len(entries))
	for k := range entries {
		kinds = append(kinds, k)
	}

	sort.Strings(kinds)

	return kinds
}

// RenderHTML converts Markdown documentation to an HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer

	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("docs: rendering markdown: %w", err)
	}

	return buf.String(), nil
}

// RenderMan renders Markdown documentation as roff, suitable for piping to
// a man page file (e.g. ember-docs-LocalOrVar.1).
func RenderMan(title, markdown string) []byte {
	header := fmt.Sprintf("# %s(1)\n\n", title)
	return md2man.Render([]byte(header + markdown))
}
