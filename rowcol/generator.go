package rowcol

import (
	"math/rand/v2"
	"strconv"
)

var (
	whitespace       = []byte{' ', '\t', '\n', '\r', '\v', '\f'}
	inlineWhitespace = []byte{' ', '\t', '\v', '\f'}
	garbage          = [...]string{"", "", " ???", " 1.00256", " 42", "\tk", " -7 x"}
)

// Generator produces test lines. It owns its random source: two generators
// created with the same seed produce the same sequence. A Generator must not
// be used from multiple goroutines at once.
type Generator struct {
	r      *rand.Rand
	spaces []byte
}

// NewGenerator returns a Generator seeded with seed. Separators it produces
// may contain line breaks.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		r:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spaces: whitespace,
	}
}

// NewLineGenerator is like NewGenerator but never puts '\n' or '\r' into a
// line, so its output can be written one line per row.
func NewLineGenerator(seed uint64) *Generator {
	g := NewGenerator(seed)
	g.spaces = inlineWhitespace

	return g
}

// OverflowLine returns a line whose row is one digit longer than any uint64
// can hold: a value from (MaxWord/10, MaxWord] with a '0' appended.
func (g *Generator) OverflowLine() string {
	v := cutoff + 1 + g.r.Uint64N(MaxWord-cutoff)

	buf := make([]byte, 0, 32)
	buf = strconv.AppendUint(buf, v, 10)
	buf = append(buf, "0 10"...)

	return string(buf)
}

// ValidLine returns a well-formed line together with the Outcome expected
// for it. Separators are random whitespace runs; trailing content is random
// and never changes the Outcome.
func (g *Generator) ValidLine() (string, Outcome) {
	row, col := g.word(), g.word()

	buf := make([]byte, 0, 64)
	buf = g.appendSpaces(buf, 0)
	buf = strconv.AppendUint(buf, row, 10)
	buf = g.appendSpaces(buf, 1)
	buf = strconv.AppendUint(buf, col, 10)
	buf = append(buf, garbage[g.r.IntN(len(garbage))]...)
	buf = g.appendSpaces(buf, 0)

	return string(buf), Ok(row, col)
}

// word returns a value with a random number of significant bits so that short
// and long digit runs are equally likely.
func (g *Generator) word() uint64 {
	return g.r.Uint64() >> g.r.UintN(64)
}

func (g *Generator) appendSpaces(buf []byte, least int) []byte {
	n := least + g.r.IntN(4)
	for i := 0; i < n; i++ {
		buf = append(buf, g.spaces[g.r.IntN(len(g.spaces))])
	}

	return buf
}
