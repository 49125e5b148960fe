package main

import (
	"strconv"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
	"github.com/ssgreg/rcparse/rowcol"
)

// lineTooLong replaces the source of lines that did not fit the read buffer.
const lineTooLong = "<line too long>"

// Line numbers are right-aligned in columns of this width.
const numberWidth = 8

// result is a parsed line ready to be rendered.
type result struct {
	number  int
	outcome rowcol.Outcome
	line    []byte
}

func format(buf *logf.Buffer, eseq logftext.EscapeSequence, r *result, opts Options) {
	// Line number.
	if opts.NumberLines {
		appendNumber(buf, r.number)
	}

	// Outcome.
	appendOutcome(buf, eseq, r.outcome)

	// Source line.
	if opts.Echo {
		buf.AppendByte(' ')
		eseq.At(buf, logftext.EscBrightBlack, func() {
			buf.AppendString("| ")
			buf.AppendBytes(r.line)
		})
	}

	buf.AppendByte('\n')
}

func appendOutcome(buf *logf.Buffer, eseq logftext.EscapeSequence, o rowcol.Outcome) {
	switch o.Kind {
	case rowcol.Success:
		eseq.At(buf, logftext.EscBrightWhite, func() {
			buf.Data = strconv.AppendUint(buf.Data, o.Row, 10)
			buf.AppendByte(' ')
			buf.Data = strconv.AppendUint(buf.Data, o.Col, 10)
		})
	case rowcol.Empty:
		eseq.At(buf, logftext.EscBrightBlack, func() {
			buf.AppendString("<empty>")
		})
	default:
		eseq.At2(buf, logftext.EscBrightRed, logftext.EscReverse, func() {
			buf.AppendString("<error>")
		})
	}
}

// appendNumber writes n right-aligned to the next multiple of numberWidth,
// followed by a space.
func appendNumber(buf *logf.Buffer, n int) {
	// Buffer is enough for any int.
	var digits [20]byte
	d := strconv.AppendInt(digits[:0], int64(n), 10)

	window := ((len(d)-1)/numberWidth + 1) * numberWidth
	for i := len(d); i < window; i++ {
		buf.AppendByte(' ')
	}
	buf.AppendBytes(d)
	buf.AppendByte(' ')
}
