package elixir

// This file holds the reverse scanner: the space stripper, the prefix
// dispatcher, the identifier and operator scanners, and the dot/arity/call
// composers that recurse into each other to build a Context. Classify (in
// classify.go) is the only exported entry point into this machinery.

// stripSpaces consumes leading SPACES from rev, reporting how many it ate.
func stripSpaces(rev []rune) (rest []rune, n int) {
	i := 0
	for i < len(rev) && isSpaceRune(rev[i]) {
		i++
	}
	return rev[i:], i
}

// classifyCallOp runs the full space-strip + dispatch pipeline on rev,
// tagging the result with callOp. dot and nestedAlias recurse through this;
// arityComposer and callComposer bypass it and go straight to the identifier
// scanner, since a slash or paren binds to the token directly before it.
func classifyCallOp(rev []rune, callOp bool, o Options) Context {
	rest, spaces := stripSpaces(rev)
	return dispatch(rest, spaces, callOp, o)
}

// dispatch is the ordered prefix dispatcher. rest has already had leading
// spaces stripped; spaces is how many were stripped.
func dispatch(rest []rune, spaces int, callOp bool, o Options) Context {
	switch {
	case len(rest) == 0:
		return Expr{}
	case hasHead(rest, '>', '='):
		if len(rest) == 2 || rest[2] != ':' {
			return Expr{}
		}
	case hasHead(rest, '>', '-'):
		if len(rest) == 2 || rest[2] != ':' {
			return Expr{}
		}
	case hasHead(rest, '<', '<'):
		if len(rest) == 2 || rest[2] != '<' {
			return Expr{}
		}
	}

	switch {
	case len(rest) == 1 && rest[0] == ':':
		return UnquotedAtom{Chars: ""}
	case rest[0] == ':' && len(rest) >= 2 && rest[1] != ':':
		return Expr{}
	case len(rest) == 1 && rest[0] == '.':
		return None{}
	case rest[0] == '.' && len(rest) >= 2 && rest[1] != '.' && rest[1] != ':':
		return dot(rest[1:], "", o)
	case rest[0] == '(':
		return callComposer(rest[1:], o)
	case rest[0] == '/':
		return arityComposer(rest[1:], o)
	case isStarter(rest[0]):
		return Expr{}
	case spaces > 0:
		return callComposer(rest, o)
	default:
		return identifierOrOperator(rest, callOp, o)
	}
}

func hasHead(rest []rune, a, b rune) bool {
	return len(rest) >= 2 && rest[0] == a && rest[1] == b
}

func hasRunePrefix(rest []rune, prefix string) bool {
	if len(rest) < len(prefix) {
		return false
	}
	for i, r := range []rune(prefix) {
		if rest[i] != r {
			return false
		}
	}
	return true
}

// scanKind distinguishes the shapes scanIdentifier can settle on.
type scanKind int

const (
	scanNone scanKind = iota
	scanMaybeOp
	scanModuleAttr
	scanResolved
)

// scanOutcome is the result of walking an identifier run.
type scanOutcome struct {
	kind       scanKind
	moduleAttr string
	identKind  IdentKind
	asciiOnly  bool
	remaining  []rune
	acc        string
	headWasQ   bool
}

// scanIdentifier performs the identifier scanner's walk over rev, starting
// at its head. It does not decide the final Context; identifierOrOperator
// does that by feeding the outcome to mapIdentResult or scanOperator.
func scanIdentifier(rev []rune, o Options) scanOutcome {
	i := 0
	acc := ""
	headWasQ := false

	if len(rev) > 0 && (rev[0] == '?' || rev[0] == '!') {
		headWasQ = rev[0] == '?'
		acc = string(rev[0])
		i = 1
	}

	if i >= len(rev) {
		return scanOutcome{kind: scanMaybeOp}
	}
	if isOperatorRune(rev[i]) {
		return scanOutcome{kind: scanMaybeOp}
	}
	if isNonIdent(rev[i]) {
		return scanOutcome{kind: scanNone}
	}

	j := i
	for j < len(rev) && !isNonIdent(rev[j]) {
		acc = string(rev[j]) + acc
		j++
	}
	remaining := rev[j:]

	// A leading @ on the forward accumulator means the walk crossed a module
	// attribute marker. The name after the @ must itself be one whole valid
	// identifier; a bare @ is a module attribute the user is still naming.
	if len(acc) > 0 && acc[0] == '@' {
		name := acc[1:]
		if name == "" {
			return scanOutcome{kind: scanModuleAttr, moduleAttr: ""}
		}
		if _, ok := o.Identifiers.Identify(name); !ok {
			return scanOutcome{kind: scanNone}
		}
		return scanOutcome{kind: scanModuleAttr, moduleAttr: name}
	}

	info, ok := o.Identifiers.Identify(acc)
	if !ok {
		return scanOutcome{kind: scanNone}
	}
	// An embedded @ (node-name style, foo@host) is only meaningful inside an
	// unquoted atom, i.e. when a colon sits immediately to the left.
	if info.HasAt && !(len(remaining) > 0 && remaining[0] == ':') {
		return scanOutcome{kind: scanNone}
	}

	return scanOutcome{
		kind:      scanResolved,
		identKind: info.Kind,
		asciiOnly: info.ASCIIOnly,
		remaining: remaining,
		acc:       acc,
		headWasQ:  headWasQ,
	}
}

// identifierOrOperator runs the identifier scanner and routes its outcome
// to the operator scanner or the result mapping.
func identifierOrOperator(rev []rune, callOp bool, o Options) Context {
	sr := scanIdentifier(rev, o)
	switch sr.kind {
	case scanMaybeOp:
		return scanOperator(rev, callOp, o)
	case scanModuleAttr:
		return ModuleAttribute{Chars: sr.moduleAttr}
	case scanNone:
		return None{}
	default:
		return mapIdentResult(sr, callOp, o)
	}
}

// mapIdentResult maps a resolved identifier scan to its Context, keyed on
// what follows the identifier to its left: ::, :, .., or a single dot.
func mapIdentResult(sr scanOutcome, callOp bool, o Options) Context {
	if sr.headWasQ {
		return None{}
	}

	rem, acc, kind := sr.remaining, sr.acc, sr.identKind

	if hasRunePrefix(rem, "::") {
		if kind == KindAlias && !sr.asciiOnly {
			return None{}
		}
		switch kind {
		case KindAlias:
			return Alias{Chars: acc}
		case KindIdentifier:
			return LocalOrVar{Chars: acc}
		default:
			return None{}
		}
	}
	if hasRunePrefix(rem, ":") {
		return UnquotedAtom{Chars: acc}
	}
	if kind == KindAtom {
		return None{}
	}
	if kind == KindAlias && !sr.asciiOnly {
		return None{}
	}
	if hasRunePrefix(rem, "..") {
		switch kind {
		case KindAlias:
			return Alias{Chars: acc}
		case KindIdentifier:
			return LocalOrVar{Chars: acc}
		default:
			return None{}
		}
	}
	if kind == KindAlias && hasRunePrefix(rem, ".") {
		return nestedAlias(rem[1:], acc, o)
	}
	if kind == KindIdentifier && hasRunePrefix(rem, ".") {
		return dot(rem[1:], acc, o)
	}
	if kind == KindAlias {
		return Alias{Chars: acc}
	}
	if kind == KindIdentifier && callOp && isTextualOp(acc) {
		return Operator{Chars: acc}
	}
	if kind == KindIdentifier {
		return LocalOrVar{Chars: acc}
	}
	return None{}
}

// scanOperator walks a run of operator characters and validates it via the
// expression tokenizer. rev is the reversed remainder at the point the
// identifier scanner bailed out because its head was operator-shaped; it
// has not been touched yet.
func scanOperator(rev []rune, callOp bool, o Options) Context {
	i := 0
	acc := ""
	for i < len(rev) && isOperatorRune(rev[i]) {
		acc = string(rev[i]) + acc
		i++
	}
	rest := rev[i:]

	if isIncompleteOp(acc) {
		if callOp {
			return None{}
		}
		return Operator{Chars: acc}
	}
	if len(acc) > 0 && acc[0] == '.' && isIncompleteOp(acc[1:]) {
		if callOp {
			return None{}
		}
		return dot(rest, acc[1:], o)
	}

	toks, ok := o.Expressions.Tokenize(acc)
	if !ok {
		return None{}
	}

	switch {
	case len(toks) == 1 && toks[0].Kind == TokAtom:
		return UnquotedAtom{Chars: toks[0].Text}
	case len(toks) == 2 && toks[0].Kind == TokDot && toks[1].Kind == TokOperator && isOpShaped(o, toks[1].Text):
		return dot(rest, toks[1].Text, o)
	case len(toks) == 1 && toks[0].Kind == TokOperator && isOpShaped(o, toks[0].Text):
		return Operator{Chars: toks[0].Text}
	default:
		return None{}
	}
}

func isOpShaped(o Options, text string) bool {
	return o.Operators.IsUnary(text) || o.Operators.IsBinary(text)
}

// dot composes a Dot/None from classifying rest. acc is the tail member
// name already scanned to the right of the '.'.
func dot(rest []rune, acc string, o Options) Context {
	switch v := classifyCallOp(rest, true, o).(type) {
	case LocalOrVar:
		return Dot{Inside: VarInside{Chars: v.Chars}, Chars: acc}
	case Alias:
		return Dot{Inside: AliasInside{Chars: v.Chars}, Chars: acc}
	case UnquotedAtom:
		return Dot{Inside: UnquotedAtomInside{Chars: v.Chars}, Chars: acc}
	case ModuleAttribute:
		return Dot{Inside: ModuleAttributeInside{Chars: v.Chars}, Chars: acc}
	case Dot:
		return Dot{Inside: DotInside{Inside: v.Inside, Chars: v.Chars}, Chars: acc}
	default:
		return None{}
	}
}

// nestedAlias composes a dotted Alias chain: only another Alias on the left
// keeps the result an Alias; anything else collapses to None.
func nestedAlias(rest []rune, acc string, o Options) Context {
	if a, ok := classifyCallOp(rest, true, o).(Alias); ok {
		return Alias{Chars: a.Chars + "." + acc}
	}
	return None{}
}

// arityComposer classifies what sits before a '/', then wraps the
// LocalOrVar/Operator/Dot result in its *Arity form.
func arityComposer(rest []rune, o Options) Context {
	switch v := identifierOrOperator(rest, true, o).(type) {
	case LocalOrVar:
		return LocalArity{Chars: v.Chars}
	case Operator:
		return OperatorArity{Chars: v.Chars}
	case Dot:
		return DotArity{Inside: v.Inside, Chars: v.Chars}
	default:
		return None{}
	}
}

// callComposer classifies what sits before a '(' or trailing space, then
// wraps the LocalOrVar/Operator/Dot result in its *Call form.
func callComposer(rest []rune, o Options) Context {
	switch v := identifierOrOperator(rest, true, o).(type) {
	case LocalOrVar:
		return LocalCall{Chars: v.Chars}
	case Operator:
		return OperatorCall{Chars: v.Chars}
	case Dot:
		return DotCall{Inside: v.Inside, Chars: v.Chars}
	default:
		return None{}
	}
}
