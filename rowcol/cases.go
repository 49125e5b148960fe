package rowcol

// Case is a line with the Outcome every Parser must produce for it.
type Case struct {
	Input string
	Want  Outcome
}

// Cases is the reference table all strategies are checked against.
var Cases = []Case{
	{"252165 1682156", Ok(252165, 1682156)},
	{"252165 1682156 1.00256", Ok(252165, 1682156)},
	{"252165 1682156 ???", Ok(252165, 1682156)},
	{" \t 252165 \t 1682156 \t ", Ok(252165, 1682156)},

	{"", Outcome{Kind: Empty}},
	{"    \t\t   \n", Outcome{Kind: Empty}},

	{" k  11100 36 ", Outcome{Kind: Error}},
	{" 11100 ? 36 ", Outcome{Kind: Error}},
	{"18446744073709551616 36", Outcome{Kind: Error}},
	{"26 18446744073709551616", Outcome{Kind: Error}},
	{"26 184467440737095516111", Outcome{Kind: Error}},
	{"26 53197085087656854960", Outcome{Kind: Error}},
}
