package elixir

// Kind returns the name of c's concrete variant, e.g. "LocalOrVar" or
// "DotCall". It gives ambient tooling (the LSP server's completion/hover
// mapping, the CLI's JSON output) a stable string key without reflection or
// string-typed tags leaking into the sum type itself.
func Kind(c Context) string {
	switch c.(type) {
	case Expr:
		return "Expr"
	case None:
		return "None"
	case UnquotedAtom:
		return "UnquotedAtom"
	case Alias:
		return "Alias"
	case ModuleAttribute:
		return "ModuleAttribute"
	case LocalOrVar:
		return "LocalOrVar"
	case LocalArity:
		return "LocalArity"
	case LocalCall:
		return "LocalCall"
	case Operator:
		return "Operator"
	case OperatorArity:
		return "OperatorArity"
	case OperatorCall:
		return "OperatorCall"
	case Dot:
		return "Dot"
	case DotArity:
		return "DotArity"
	case DotCall:
		return "DotCall"
	default:
		return "Unknown"
	}
}

// Chars returns the chars payload of c, and false for variants that carry
// none (Expr, None).
func Chars(c Context) (string, bool) {
	switch v := c.(type) {
	case UnquotedAtom:
		return v.Chars, true
	case Alias:
		return v.Chars, true
	case ModuleAttribute:
		return v.Chars, true
	case LocalOrVar:
		return v.Chars, true
	case LocalArity:
		return v.Chars, true
	case LocalCall:
		return v.Chars, true
	case Operator:
		return v.Chars, true
	case OperatorArity:
		return v.Chars, true
	case OperatorCall:
		return v.Chars, true
	case Dot:
		return v.Chars, true
	case DotArity:
		return v.Chars, true
	case DotCall:
		return v.Chars, true
	default:
		return "", false
	}
}

// InsideDotOf returns the InsideDot payload for the Dot/DotArity/DotCall
// variants, and false otherwise.
func InsideDotOf(c Context) (InsideDot, bool) {
	switch v := c.(type) {
	case Dot:
		return v.Inside, true
	case DotArity:
		return v.Inside, true
	case DotCall:
		return v.Inside, true
	default:
		return nil, false
	}
}
