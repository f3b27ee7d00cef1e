package elixir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "Expr", Kind(Expr{}))
	assert.Equal(t, "None", Kind(None{}))
	assert.Equal(t, "LocalOrVar", Kind(LocalOrVar{Chars: "x"}))
	assert.Equal(t, "DotCall", Kind(DotCall{Inside: VarInside{Chars: "a"}, Chars: "b"}))
}

func TestChars(t *testing.T) {
	chars, ok := Chars(LocalOrVar{Chars: "foo"})
	assert.True(t, ok)
	assert.Equal(t, "foo", chars)

	_, ok = Chars(Expr{})
	assert.False(t, ok)

	_, ok = Chars(None{})
	assert.False(t, ok)
}

func TestInsideDotOf(t *testing.T) {
	d := Dot{Inside: AliasInside{Chars: "Foo"}, Chars: "bar"}

	inside, ok := InsideDotOf(d)
	assert.True(t, ok)
	assert.Equal(t, AliasInside{Chars: "Foo"}, inside)

	_, ok = InsideDotOf(LocalOrVar{Chars: "x"})
	assert.False(t, ok)
}
