// Package rowcol parses lines of the form "<row> <col>" where both values are
// non-negative decimal integers that fit into uint64.
//
// Every line is classified as exactly one of three kinds: Empty (nothing but
// whitespace), Error (anything that is not two integers) or Success. Content
// after the second integer is ignored, so "5 10 garbage" is a Success while a
// lone "5" is an Error.
//
// The package never allocates on the hot path and holds no global state. All
// functions are safe for concurrent use.
package rowcol
