package elixir

import "strings"

// Classify reports the syntactic construct the cursor sits inside, given the
// text immediately to its left. fragment may span multiple lines; only the
// last one is examined, since every construct this package recognizes is
// confined to a single line.
func Classify(fragment string, opts Options) Context {
	o := opts.withDefaults()
	line := lastLine(fragment)
	if line == "" {
		return Expr{}
	}
	return classifyCallOp(reverseRunes(line), false, o)
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func reverseRunes(s string) []rune {
	runes := []rune(s)
	rev := make([]rune, len(runes))
	for i, r := range runes {
		rev[len(runes)-1-i] = r
	}
	return rev
}
