package rowcol

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrUnknownStrategy is returned by Lookup for names it does not know.
var ErrUnknownStrategy = errors.New("unknown strategy")

// A Parser turns a line into an Outcome. All implementations in this package
// agree on every input; they differ only in how the digits are converted.
type Parser interface {
	Name() string
	Parse(line string) Outcome
}

// Manual parses digit runs with the overflow-checked scanner. It is what
// Parse uses.
type Manual struct{}

// Name implements Parser.
func (Manual) Name() string {
	return "manual"
}

// Parse implements Parser.
func (Manual) Parse(line string) Outcome {
	return Parse(line)
}

// Strconv locates digit runs itself and hands them to strconv.ParseUint.
type Strconv struct{}

// Name implements Parser.
func (Strconv) Name() string {
	return "strconv"
}

// Parse implements Parser.
func (Strconv) Parse(line string) Outcome {
	i := skipSpaces(line, 0)
	if i == len(line) {
		return Outcome{Kind: Empty}
	}

	row, i, ok := convertRun(line, i)
	if !ok {
		return Outcome{Kind: Error}
	}
	i = skipSpaces(line, i)

	col, _, ok := convertRun(line, i)
	if !ok {
		return Outcome{Kind: Error}
	}

	return Ok(row, col)
}

// convertRun converts the digit run at s[i] and returns the index past it.
func convertRun(s string, i int) (uint64, int, bool) {
	end := digitsEnd(s, i)
	if end == i {
		return 0, i, false
	}

	// ParseUint reports range errors with MaxUint64 as the value; the error is
	// all that matters here.
	v, err := strconv.ParseUint(s[i:end], 10, 64)
	if err != nil {
		return 0, i, false
	}

	return v, end, true
}

// Strategies returns all available parsers, the default one first.
func Strategies() []Parser {
	return []Parser{Manual{}, Strconv{}}
}

// Lookup returns the parser registered under name.
func Lookup(name string) (Parser, error) {
	for _, p := range Strategies() {
		if p.Name() == name {
			return p, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}
