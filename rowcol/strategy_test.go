package rowcol

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategiesAgreeOnCases(t *testing.T) {
	for _, p := range Strategies() {
		t.Run(p.Name(), func(t *testing.T) {
			for _, c := range Cases {
				got := p.Parse(c.Input)
				assert.True(t, c.Want.Equal(got), "%q: got %v, want %v", c.Input, got, c.Want)
			}
		})
	}
}

func TestStrategiesAgreeWithParse(t *testing.T) {
	inputs := []string{
		"5", "5 x", "5x 10", "-5 10", "+5 10", "5 +10", "5 10garbage", "0 0",
		"1_000 2", "1 2_000", "0x10 1", "1\x002",
		"18446744073709551615 18446744073709551615",
		"18446744073709551615 18446744073709551616",
		strings.Repeat("0", 50) + "1 2",
		"1 " + strings.Repeat("9", 100),
	}

	g := NewGenerator(3)
	for i := 0; i < 200; i++ {
		line, _ := g.ValidLine()
		inputs = append(inputs, line, g.OverflowLine())
	}

	for _, p := range Strategies() {
		for _, in := range inputs {
			want := Parse(in)
			got := p.Parse(in)
			assert.True(t, want.Equal(got), "%s %q: got %v, want %v", p.Name(), in, got, want)
		}
	}
}

func TestStrategiesOrder(t *testing.T) {
	s := Strategies()
	require.Len(t, s, 2)
	assert.Equal(t, "manual", s[0].Name())
	assert.Equal(t, "strconv", s[1].Name())
}

func TestLookup(t *testing.T) {
	p, err := Lookup("strconv")
	require.NoError(t, err)
	assert.Equal(t, Strconv{}, p)

	p, err = Lookup("manual")
	require.NoError(t, err)
	assert.Equal(t, Manual{}, p)

	_, err = Lookup("sscanf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Contains(t, err.Error(), `"sscanf"`)
}
