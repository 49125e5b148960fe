package rowcol

import (
	"strconv"
)

// Kind classifies the result of parsing a line.
type Kind uint8

// Available kinds.
const (
	Empty Kind = iota
	Error
	Success
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome is the result of parsing a single line. Row and Col are set only
// when Kind is Success.
type Outcome struct {
	Row  uint64
	Col  uint64
	Kind Kind
}

// Ok returns a successful Outcome holding row and col.
func Ok(row, col uint64) Outcome {
	return Outcome{Row: row, Col: col, Kind: Success}
}

// Equal reports whether two outcomes are the same. Non-success outcomes are
// compared by kind only.
func (o Outcome) Equal(other Outcome) bool {
	if o.Kind != other.Kind {
		return false
	}
	if o.Kind != Success {
		return true
	}

	return o.Row == other.Row && o.Col == other.Col
}

func (o Outcome) String() string {
	switch o.Kind {
	case Empty:
		return "empty string"
	case Error:
		return "error"
	case Success:
		return strconv.FormatUint(o.Row, 10) + " " + strconv.FormatUint(o.Col, 10)
	default:
		return "unknown"
	}
}
