package rowcol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanUint(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		i      int
		want   uint64
		wantN  int
		wantOk bool
	}{
		{"zero", "0", 0, 0, 1, true},
		{"no digit", "abc", 0, 0, 0, true},
		{"at end", "12", 2, 0, 0, true},
		{"stops at non-digit", "12ab", 0, 12, 2, true},
		{"starts at cursor", "xx42 ", 2, 42, 2, true},
		{"does not skip spaces", " 42", 0, 0, 0, true},
		{"max", "18446744073709551615", 0, MaxWord, 20, true},
		{"cutoff", "1844674407370955161", 0, cutoff, 19, true},
		{"leading zeros", strings.Repeat("0", 40) + "7", 0, 7, 41, true},
		{"max plus one", "18446744073709551616", 0, 0, 0, false},
		{"above cutoff", "18446744073709551620", 0, 0, 0, false},
		{"twenty nines", "99999999999999999999", 0, 0, 0, false},
		{"long run", strings.Repeat("9", 200), 0, 0, 0, false},
		{"overflow keeps failing", "184467440737095516111", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, ok := scanUint(tt.s, tt.i)
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestSkipSpaces(t *testing.T) {
	assert.Equal(t, 0, skipSpaces("", 0))
	assert.Equal(t, 0, skipSpaces("a ", 0))
	assert.Equal(t, 6, skipSpaces(" \t\n\r\v\fa", 0))
	assert.Equal(t, 3, skipSpaces("a  ", 1))
	assert.Equal(t, 1, skipSpaces(" \x00 ", 0))
}
