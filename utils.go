package main

import (
	"unsafe"
)

// bytesToString converts a byte slice to a string without copying. The
// string is valid only as long as bs is not modified.
func bytesToString(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}

	return unsafe.String(&bs[0], len(bs))
}
