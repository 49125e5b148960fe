package rowcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a, b := NewGenerator(42), NewGenerator(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.OverflowLine(), b.OverflowLine())

		la, wa := a.ValidLine()
		lb, wb := b.ValidLine()
		require.Equal(t, la, lb)
		require.Equal(t, wa, wb)
	}
}

func TestGeneratorOverflowLines(t *testing.T) {
	g := NewGenerator(1)

	for i := 0; i < 100000; i++ {
		line := g.OverflowLine()
		for _, p := range Strategies() {
			if got := p.Parse(line); got.Kind != Error {
				t.Fatalf("%s: %q parsed as %v", p.Name(), line, got)
			}
		}
	}
}

func TestGeneratorValidLines(t *testing.T) {
	g := NewGenerator(2)

	for i := 0; i < 10000; i++ {
		line, want := g.ValidLine()
		require.Equal(t, Success, want.Kind)
		for _, p := range Strategies() {
			got := p.Parse(line)
			assert.True(t, want.Equal(got), "%s %q: got %v, want %v", p.Name(), line, got, want)
		}
	}
}

func TestLineGeneratorKeepsLinesIntact(t *testing.T) {
	g := NewLineGenerator(5)

	for i := 0; i < 1000; i++ {
		line, want := g.ValidLine()
		require.NotContains(t, line, "\n")
		require.NotContains(t, line, "\r")
		assert.True(t, want.Equal(Parse(line)), "%q", line)
	}
}
