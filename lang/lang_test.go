package lang_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frerich/elixir/lang"
)

func TestLexer_Symbols(t *testing.T) {
	t.Parallel()

	symbols := lang.Lexer().Symbols()

	expected := []string{
		"EOF", "Whitespace", "Ident", "Alias", "Atom", "Number",
		"Op", "Dot", "Punct",
	}

	for _, name := range expected {
		if _, ok := symbols[name]; !ok {
			t.Errorf("missing symbol: %s", name)
		}
	}
}

type tokenExpect struct {
	typ lexer.TokenType
	val string
}

func lexTokens(t *testing.T, input string) []tokenExpect {
	t.Helper()

	lex, err := lang.Lexer().Lex("", strings.NewReader(input))
	require.NoError(t, err)

	var tokens []tokenExpect

	for {
		tok, err := lex.Next()
		require.NoError(t, err)

		if tok.EOF() {
			return tokens
		}

		if tok.Type == lang.TokenWhitespace {
			continue
		}

		tokens = append(tokens, tokenExpect{typ: tok.Type, val: tok.Value})
	}
}

func TestLexer_TokenStream(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  []tokenExpect
	}{
		{"foo.bar", []tokenExpect{
			{lang.TokenIdent, "foo"}, {lang.TokenDot, "."}, {lang.TokenIdent, "bar"},
		}},
		{"Foo.Bar", []tokenExpect{
			{lang.TokenAlias, "Foo"}, {lang.TokenDot, "."}, {lang.TokenAlias, "Bar"},
		}},
		{":ok |> Enum", []tokenExpect{
			{lang.TokenAtom, ":ok"}, {lang.TokenOp, "|>"}, {lang.TokenAlias, "Enum"},
		}},
		{"x = true", []tokenExpect{
			{lang.TokenIdent, "x"}, {lang.TokenOp, "="}, {lang.TokenAtom, "true"},
		}},
		{"f(a, 42)", []tokenExpect{
			{lang.TokenIdent, "f"}, {lang.TokenPunct, "("}, {lang.TokenIdent, "a"},
			{lang.TokenPunct, ","}, {lang.TokenNumber, "42"}, {lang.TokenPunct, ")"},
		}},
		{"valid? node@host", []tokenExpect{
			{lang.TokenIdent, "valid?"}, {lang.TokenIdent, "node@host"},
		}},
		{"...", []tokenExpect{
			{lang.TokenAtom, "..."},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, lexTokens(t, tc.input))
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	t.Parallel()

	lx, err := lang.Lexer().LexString("frag", ".++")
	require.NoError(t, err)

	dot, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, lang.TokenDot, dot.Type)
	assert.Equal(t, lexer.Position{Filename: "frag", Offset: 0, Line: 1, Column: 1}, dot.Pos)

	op, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, lang.TokenOp, op.Type)
	assert.Equal(t, lexer.Position{Filename: "frag", Offset: 1, Line: 1, Column: 2}, op.Pos)
}

func TestLexer_PositionsAcrossLines(t *testing.T) {
	t.Parallel()

	lx, err := lang.Lexer().LexString("", "foo\nbar")
	require.NoError(t, err)

	first, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "foo", first.Value)

	ws, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, lang.TokenWhitespace, ws.Type)

	second, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "bar", second.Value)
	assert.Equal(t, 2, second.Pos.Line)
	assert.Equal(t, 1, second.Pos.Column)
}

func TestIdentify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token     string
		typ       lexer.TokenType
		asciiOnly bool
		hasAt     bool
		ok        bool
	}{
		{"foo", lang.TokenIdent, true, false, true},
		{"_private", lang.TokenIdent, true, false, true},
		{"foo_bar2", lang.TokenIdent, true, false, true},
		{"valid?", lang.TokenIdent, true, false, true},
		{"save!", lang.TokenIdent, true, false, true},
		{"Foo", lang.TokenAlias, true, false, true},
		{"FooBar2", lang.TokenAlias, true, false, true},
		{"true", lang.TokenAtom, true, false, true},
		{"false", lang.TokenAtom, true, false, true},
		{"nil", lang.TokenAtom, true, false, true},
		{"node@host", lang.TokenIdent, true, true, true},
		{"héllo", lang.TokenIdent, false, false, true},
		{"Olá", lang.TokenAlias, false, false, true},
		{"", 0, false, false, false},
		{"2fast", 0, false, false, false},
		{"foo-bar", 0, false, false, false},
		{"fo?o", 0, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()

			typ, asciiOnly, hasAt, ok := lang.Identify(tc.token)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.asciiOnly, asciiOnly)
			assert.Equal(t, tc.hasAt, hasAt)
		})
	}
}

func TestTokenizeOperatorRun(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want []tokenExpect
		ok   bool
	}{
		{"+", []tokenExpect{{lang.TokenOp, "+"}}, true},
		{"|>", []tokenExpect{{lang.TokenOp, "|>"}}, true},
		{"::", []tokenExpect{{lang.TokenOp, "::"}}, true},
		{"^^^", []tokenExpect{{lang.TokenOp, "^^^"}}, true},
		{"...", []tokenExpect{{lang.TokenAtom, "..."}}, true},
		{".+", []tokenExpect{{lang.TokenDot, "."}, {lang.TokenOp, "+"}}, true},
		{".++", []tokenExpect{{lang.TokenDot, "."}, {lang.TokenOp, "++"}}, true},
		{":+", []tokenExpect{{lang.TokenAtom, ":+"}}, true},
		{":=>", []tokenExpect{{lang.TokenAtom, ":=>"}}, true},
		{":<<", []tokenExpect{{lang.TokenAtom, ":<<"}}, true},
		{".", []tokenExpect{{lang.TokenDot, "."}}, true},
		{"..", []tokenExpect{{lang.TokenDot, "."}, {lang.TokenDot, "."}}, true},
		{"", nil, false},
		{":", nil, false},
		{":~", nil, false},
		{"=%", nil, false},
		{"^^", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			toks, ok := lang.TokenizeOperatorRun(tc.text)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}

			got := make([]tokenExpect, len(toks))
			for i, tok := range toks {
				got[i] = tokenExpect{typ: tok.Type, val: tok.Value}
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOperatorCategories(t *testing.T) {
	t.Parallel()

	assert.True(t, lang.IsBinaryOp("|>"))
	assert.True(t, lang.IsBinaryOp("++"))
	assert.True(t, lang.IsUnaryOp("!"))
	assert.True(t, lang.IsUnaryOp("-"))
	assert.False(t, lang.IsBinaryOp("!"))
	assert.False(t, lang.IsUnaryOp("|>"))
	assert.False(t, lang.IsBinaryOp("^^"))
}

func TestIsIncomplete(t *testing.T) {
	t.Parallel()

	assert.True(t, lang.IsIncomplete("~"))
	assert.True(t, lang.IsIncomplete("~~"))
	assert.True(t, lang.IsIncomplete("^^"))
	assert.False(t, lang.IsIncomplete("~~~"))
	assert.False(t, lang.IsIncomplete("^^^"))
}

func TestOperatorsSortedAndMerged(t *testing.T) {
	t.Parallel()

	ops := lang.Operators()
	require.NotEmpty(t, ops)
	assert.True(t, sort.StringsAreSorted(ops))

	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		assert.False(t, seen[op], "duplicate operator %q", op)
		seen[op] = true
	}

	assert.Contains(t, ops, "|>")
	assert.Contains(t, ops, "!")
}
