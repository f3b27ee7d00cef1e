package elixir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func classify(fragment string) Context {
	return Classify(fragment, Options{})
}

func TestClassify_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Context
	}{
		{"empty", "", Expr{}},
		{"local var prefix", "hello_wor", LocalOrVar{Chars: "hello_wor"}},
		{"dotted alias", "Hello.Wor", Alias{Chars: "Hello.Wor"}},
		{"alias dot local", "Hello.wor", Dot{Inside: AliasInside{Chars: "Hello"}, Chars: "wor"}},
		{"var dot local", "hello.wor", Dot{Inside: VarInside{Chars: "hello"}, Chars: "wor"}},
		{"module attribute", "@hello", ModuleAttribute{Chars: "hello"}},
		{"bare at", "@", ModuleAttribute{Chars: ""}},
		{"unquoted atom", ":foo", UnquotedAtom{Chars: "foo"}},
		{"bare colon", ":", UnquotedAtom{Chars: ""}},
		{"textual op call", "x when ", OperatorCall{Chars: "when"}},
		{"local arity", "foo/", LocalArity{Chars: "foo"}},
		{"dot then digit arity", "Hello.world/2", None{}},
		{"dot arity", "Hello.world/", DotArity{Inside: AliasInside{Chars: "Hello"}, Chars: "world"}},
		{"dot call", "Hello.world(", DotCall{Inside: AliasInside{Chars: "Hello"}, Chars: "world"}},
		{"plus operator", "+", Operator{Chars: "+"}},
		{"plus arity", "+/", OperatorArity{Chars: "+"}},
		{"fat arrow", "=> ", Expr{}},
		{"double dot", "..", None{}},
		{"trailing question mark", "foo?", None{}},
		{"trailing bang", "foo!", LocalOrVar{Chars: "foo!"}},
		{"operator atom", ":+", UnquotedAtom{Chars: "+"}},
		{"fat arrow atom", ":=>", UnquotedAtom{Chars: "=>"}},
		{"stab atom", ":->", UnquotedAtom{Chars: "->"}},
		{"colon before binary open", ":<<", Expr{}},
		{"node atom", ":node@host", UnquotedAtom{Chars: "node@host"}},
		{"embedded at outside atom", "node@host", None{}},
		{"pipe call", "x |> ", OperatorCall{Chars: "|>"}},
		{"incomplete op alone", "~", Operator{Chars: "~"}},
		{"incomplete op pair", "^^", Operator{Chars: "^^"}},
		{"complete triple caret", "^^^", Operator{Chars: "^^^"}},
		{"incomplete op in call position", "~ ", None{}},
		{"incomplete op before slash", "^^/", None{}},
		{"attr dot member", "@attr.field", Dot{Inside: ModuleAttributeInside{Chars: "attr"}, Chars: "field"}},
		{"atom dot member", ":erlang.monotonic_time", Dot{Inside: UnquotedAtomInside{Chars: "erlang"}, Chars: "monotonic_time"}},
		{"alias chain dot member", "Foo.Bar.baz", Dot{Inside: AliasInside{Chars: "Foo.Bar"}, Chars: "baz"}},
		{"operator member arity", "Kernel.+/", DotArity{Inside: AliasInside{Chars: "Kernel"}, Chars: "+"}},
		{"operator member", "x.++", Dot{Inside: VarInside{Chars: "x"}, Chars: "++"}},
		{"non-ascii alias", "Olá", None{}},
		{"non-ascii local", "héllo", LocalOrVar{Chars: "héllo"}},
		{"trailing double colon", "Foo::", Operator{Chars: "::"}},
		{"alias after type colon", "Foo::Bar", Alias{Chars: "Bar"}},
		{"local after type colon", "foo::bar", LocalOrVar{Chars: "bar"}},
		{"local after range", "a..b", LocalOrVar{Chars: "b"}},
		{"starter resets", "foo(bar, ", Expr{}},
		{"trailing dot on alias", "Hello.", Dot{Inside: AliasInside{Chars: "Hello"}, Chars: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestClassify_Purity(t *testing.T) {
	inputs := []string{"", "foo", "Foo.bar", "@attr", ":atom", "x when ", "+/"}
	for _, in := range inputs {
		assert.Equal(t, classify(in), classify(in), "classify must be pure for %q", in)
	}
}

func TestClassify_MultilineReducesToLastLine(t *testing.T) {
	assert.Equal(t, classify("hello"), classify("whatever\nhello"))
	assert.Equal(t, classify("hello"), classify("a.b.c\nDEF\nhello"))
}

func TestClassify_TrailingNewlineIsExpr(t *testing.T) {
	for _, in := range []string{"", "foo", "Foo.Bar", "@x", ":y"} {
		assert.Equal(t, Expr{}, classify(in+"\n"), "classify(%q + newline)", in)
	}
}

func TestClassify_TrailingSpaceTurnsLocalIntoCall(t *testing.T) {
	assert.Equal(t, LocalOrVar{Chars: "foo"}, classify("foo"))
	assert.Equal(t, LocalCall{Chars: "foo"}, classify("foo "))
}

func TestClassify_TrailingSpaceTurnsOperatorIntoCall(t *testing.T) {
	assert.Equal(t, Operator{Chars: "+"}, classify("+"))
	assert.Equal(t, OperatorCall{Chars: "+"}, classify("+ "))
}

func TestClassify_DotChainLeftAssociative(t *testing.T) {
	got := classify("a.b.c")
	want := Dot{
		Inside: DotInside{Inside: VarInside{Chars: "a"}, Chars: "b"},
		Chars:  "c",
	}
	assert.Equal(t, want, got)
}

func TestClassify_CharsNeverContainSpaceOrStarters(t *testing.T) {
	samples := []string{"foo ", "foo(", "foo/", "Hello.world(", "@x", ":atom"}
	for _, s := range samples {
		ctx := classify(s)
		for _, c := range charsOf(ctx) {
			assert.NotContains(t, " \t,([{;)]}\"'", string(c), "chars leaked raw delimiter for input %q", s)
		}
	}
}

func charsOf(c Context) string {
	switch v := c.(type) {
	case UnquotedAtom:
		return v.Chars
	case Alias:
		return v.Chars
	case ModuleAttribute:
		return v.Chars
	case LocalOrVar:
		return v.Chars
	case LocalArity:
		return v.Chars
	case LocalCall:
		return v.Chars
	case Operator:
		return v.Chars
	case OperatorArity:
		return v.Chars
	case OperatorCall:
		return v.Chars
	case Dot:
		return v.Chars
	case DotArity:
		return v.Chars
	case DotCall:
		return v.Chars
	default:
		return ""
	}
}
