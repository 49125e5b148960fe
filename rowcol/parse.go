package rowcol

import (
	"unsafe"
)

// Parse classifies line and extracts row and col from it.
//
// Leading whitespace is skipped. A line with nothing else is Empty. Otherwise
// the line must start with a digit run, followed by whitespace and a second
// digit run. Both runs must fit into uint64. Whatever follows the second run
// is ignored.
func Parse(line string) Outcome {
	i := skipSpaces(line, 0)
	if i == len(line) {
		return Outcome{Kind: Empty}
	}
	if !isDigit(line[i]) {
		return Outcome{Kind: Error}
	}

	row, n, ok := scanUint(line, i)
	if !ok || n == 0 {
		return Outcome{Kind: Error}
	}
	i = skipSpaces(line, i+n)

	if i == len(line) || !isDigit(line[i]) {
		return Outcome{Kind: Error}
	}
	col, n, ok := scanUint(line, i)
	if !ok || n == 0 {
		return Outcome{Kind: Error}
	}

	return Ok(row, col)
}

// ParseBytes is Parse for a byte slice. b is neither copied nor retained.
func ParseBytes(b []byte) Outcome {
	if len(b) == 0 {
		return Outcome{Kind: Empty}
	}

	return Parse(unsafe.String(&b[0], len(b)))
}
