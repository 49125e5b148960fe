package main

import (
	"testing"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
	"github.com/ssgreg/rcparse/rowcol"
	"github.com/stretchr/testify/assert"
)

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "       1 "},
		{12345678, "12345678 "},
		{123456789, "       123456789 "},
		{0, "       0 "},
	}

	for _, tt := range tests {
		buf := logf.NewBufferWithCapacity(32)
		appendNumber(buf, tt.n)
		assert.Equal(t, tt.want, string(buf.Bytes()))
	}
}

func TestFormat(t *testing.T) {
	eseq := logftext.EscapeSequence{NoColor: true}

	tests := []struct {
		name string
		r    result
		opts Options
		want string
	}{
		{
			"success",
			result{outcome: rowcol.Ok(252165, 1682156)},
			Options{},
			"252165 1682156\n",
		},
		{
			"max",
			result{outcome: rowcol.Ok(rowcol.MaxWord, 0)},
			Options{},
			"18446744073709551615 0\n",
		},
		{
			"empty",
			result{outcome: rowcol.Outcome{Kind: rowcol.Empty}},
			Options{},
			"<empty>\n",
		},
		{
			"error with echo",
			result{outcome: rowcol.Outcome{Kind: rowcol.Error}, line: []byte(" k  11100 36 ")},
			Options{Echo: true},
			"<error> |  k  11100 36 \n",
		},
		{
			"numbered",
			result{number: 3, outcome: rowcol.Ok(1, 2), line: []byte("1 2 x")},
			Options{NumberLines: true, Echo: true},
			"       3 1 2 | 1 2 x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := logf.NewBufferWithCapacity(64)
			format(buf, eseq, &tt.r, tt.opts)
			assert.Equal(t, tt.want, string(buf.Bytes()))
		})
	}
}

func TestFormatColored(t *testing.T) {
	eseq := logftext.EscapeSequence{NoColor: false}

	plain := logf.NewBufferWithCapacity(64)
	format(plain, logftext.EscapeSequence{NoColor: true}, &result{outcome: rowcol.Ok(1, 2)}, Options{})

	colored := logf.NewBufferWithCapacity(64)
	format(colored, eseq, &result{outcome: rowcol.Ok(1, 2)}, Options{})

	assert.Contains(t, string(colored.Bytes()), "1 2")
	assert.Greater(t, len(colored.Bytes()), len(plain.Bytes()))
}
