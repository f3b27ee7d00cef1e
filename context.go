// Package elixir classifies the syntactic construct a cursor sits inside,
// given only the text to its left. It targets a dynamic, expression-oriented
// language in the ML/Erlang family: modules, atoms, pipe-dot calls, @-prefixed
// module attributes, and textual operators (when, not, and, or).
package elixir

import "fmt"

// Context is the result of classifying a fragment. It is a closed sum type:
// the concrete implementations below are the only legal values.
type Context interface {
	isContext()
}

// Expr means any expression may start at the cursor.
type Expr struct{}

// None means no sensible completion exists at the cursor.
type None struct{}

// UnquotedAtom is a ":foo" prefix. Chars never includes the leading colon.
type UnquotedAtom struct{ Chars string }

// Alias is a capitalized namespace path, e.g. "Foo" or "Foo.Bar".
type Alias struct{ Chars string }

// ModuleAttribute is an "@name" prefix. Chars never includes the leading @.
type ModuleAttribute struct{ Chars string }

// LocalOrVar is a lowercase identifier: a variable reference or local call.
type LocalOrVar struct{ Chars string }

// LocalArity is a lowercase identifier immediately followed by "/".
type LocalArity struct{ Chars string }

// LocalCall is a lowercase identifier immediately followed by "(" or space.
type LocalCall struct{ Chars string }

// Operator is a validated operator token.
type Operator struct{ Chars string }

// OperatorArity is an operator immediately followed by "/".
type OperatorArity struct{ Chars string }

// OperatorCall is an operator immediately followed by "(" or space.
type OperatorCall struct{ Chars string }

// Dot is a member reference "inside.tail".
type Dot struct {
	Inside InsideDot
	Chars  string
}

// DotArity is a Dot immediately followed by "/".
type DotArity struct {
	Inside InsideDot
	Chars  string
}

// DotCall is a Dot immediately followed by "(" or space.
type DotCall struct {
	Inside InsideDot
	Chars  string
}

func (Expr) isContext()            {}
func (None) isContext()            {}
func (UnquotedAtom) isContext()    {}
func (Alias) isContext()           {}
func (ModuleAttribute) isContext() {}
func (LocalOrVar) isContext()      {}
func (LocalArity) isContext()      {}
func (LocalCall) isContext()       {}
func (Operator) isContext()        {}
func (OperatorArity) isContext()   {}
func (OperatorCall) isContext()    {}
func (Dot) isContext()             {}
func (DotArity) isContext()        {}
func (DotCall) isContext()         {}

// InsideDot is the left-hand side of a Dot/DotArity/DotCall. It forms a
// left-associative chain: "a.b.c" parses as Dot{Dot{Var("a"), "b"}, "c"}.
type InsideDot interface {
	isInsideDot()
}

// VarInside is a plain variable on the left of a dot.
type VarInside struct{ Chars string }

// AliasInside is a module alias on the left of a dot.
type AliasInside struct{ Chars string }

// ModuleAttributeInside is a module attribute on the left of a dot.
type ModuleAttributeInside struct{ Chars string }

// UnquotedAtomInside is an unquoted atom on the left of a dot.
type UnquotedAtomInside struct{ Chars string }

// DotInside is a nested dot chain on the left of a dot.
type DotInside struct {
	Inside InsideDot
	Chars  string
}

func (VarInside) isInsideDot()             {}
func (AliasInside) isInsideDot()           {}
func (ModuleAttributeInside) isInsideDot() {}
func (UnquotedAtomInside) isInsideDot()    {}
func (DotInside) isInsideDot()             {}

// String renders a Context for debugging and CLI output. It is not used by
// the classifier itself.
func String(c Context) string {
	switch v := c.(type) {
	case Expr:
		return "Expr"
	case None:
		return "None"
	case UnquotedAtom:
		return fmt.Sprintf("UnquotedAtom(%q)", v.Chars)
	case Alias:
		return fmt.Sprintf("Alias(%q)", v.Chars)
	case ModuleAttribute:
		return fmt.Sprintf("ModuleAttribute(%q)", v.Chars)
	case LocalOrVar:
		return fmt.Sprintf("LocalOrVar(%q)", v.Chars)
	case LocalArity:
		return fmt.Sprintf("LocalArity(%q)", v.Chars)
	case LocalCall:
		return fmt.Sprintf("LocalCall(%q)", v.Chars)
	case Operator:
		return fmt.Sprintf("Operator(%q)", v.Chars)
	case OperatorArity:
		return fmt.Sprintf("OperatorArity(%q)", v.Chars)
	case OperatorCall:
		return fmt.Sprintf("OperatorCall(%q)", v.Chars)
	case Dot:
		return fmt.Sprintf("Dot(%s, %q)", insideString(v.Inside), v.Chars)
	case DotArity:
		return fmt.Sprintf("DotArity(%s, %q)", insideString(v.Inside), v.Chars)
	case DotCall:
		return fmt.Sprintf("DotCall(%s, %q)", insideString(v.Inside), v.Chars)
	default:
		return "<unknown>"
	}
}

func insideString(d InsideDot) string {
	switch v := d.(type) {
	case VarInside:
		return fmt.Sprintf("Var(%q)", v.Chars)
	case AliasInside:
		return fmt.Sprintf("Alias(%q)", v.Chars)
	case ModuleAttributeInside:
		return fmt.Sprintf("ModuleAttribute(%q)", v.Chars)
	case UnquotedAtomInside:
		return fmt.Sprintf("UnquotedAtom(%q)", v.Chars)
	case DotInside:
		return fmt.Sprintf("Dot(%s, %q)", insideString(v.Inside), v.Chars)
	default:
		return "<unknown>"
	}
}
