package elixir

import (
	"strings"

	"github.com/frerich/elixir/lang"
)

// langAdapter implements IdentifierTokenizer, ExpressionTokenizer, and
// OperatorCategorizer on top of the standalone package lang, which knows
// nothing about the classifier. It is the tokenizer set Classify falls back
// to; callers may substitute their own via Options.
type langAdapter struct{}

var defaultTokenizer = langAdapter{}

func (langAdapter) Identify(token string) (IdentInfo, bool) {
	typ, asciiOnly, hasAt, ok := lang.Identify(token)
	if !ok {
		return IdentInfo{}, false
	}

	var k IdentKind

	switch typ {
	case lang.TokenAlias:
		k = KindAlias
	case lang.TokenAtom:
		k = KindAtom
	default:
		k = KindIdentifier
	}

	return IdentInfo{Kind: k, ASCIIOnly: asciiOnly, HasAt: hasAt}, true
}

func (langAdapter) Tokenize(text string) ([]ExprToken, bool) {
	toks, ok := lang.TokenizeOperatorRun(text)
	if !ok {
		return nil, false
	}

	out := make([]ExprToken, len(toks))

	for i, t := range toks {
		kind := TokOperator
		value := t.Value

		switch t.Type {
		case lang.TokenDot:
			kind = TokDot
		case lang.TokenAtom:
			kind = TokAtom
			// Atom payloads never carry the colon marker.
			value = strings.TrimPrefix(value, ":")
		}

		out[i] = ExprToken{Kind: kind, Text: value}
	}

	return out, true
}

func (langAdapter) IsUnary(op string) bool  { return lang.IsUnaryOp(op) }
func (langAdapter) IsBinary(op string) bool { return lang.IsBinaryOp(op) }

// DefaultTokenizer returns the built-in collaborator set, for callers that
// want to reuse it outside of Classify (e.g. to pre-validate a name before
// suggesting it).
func DefaultTokenizer() interface {
	IdentifierTokenizer
	ExpressionTokenizer
	OperatorCategorizer
} {
	return defaultTokenizer
}
