package rowcol

// isSpace reports whether c belongs to the ASCII whitespace class.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

func isDigit(c byte) bool {
	return c-'0' < 10
}

// skipSpaces returns the index of the first non-whitespace byte at or after i,
// or len(s) if there is none.
func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

// digitsEnd returns the index one past the digit run starting at i.
func digitsEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	return i
}
