package ckutil

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
)

var ErrInvalidHexString = errors.New("invalid hex string")

// ParseUint32 parses an unsigned integer value from a string.  The string
// may be a decimal number, or a hex string prefixed with "0x".  Hex strings
// may be shorter than 8 characters, and may have an odd length.
func ParseUint32(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		h := s[2:]
		if len(h) == 0 {
			return 0, merry.Here(ErrInvalidHexString).Append("no digits after 0x")
		}
		if len(h)%2 == 1 {
			h = "0" + h
		}
		b, err := hex.DecodeString(h)
		if err != nil {
			return 0, merry.Here(ErrInvalidHexString).WithCause(err)
		}
		if len(b) > 4 {
			return 0, merry.Here(ErrInvalidHexString).Append("must be max 4 bytes (8 hex characters)")
		}
		var v uint32
		for _, c := range b {
			v = v<<8 | uint32(c)
		}
		return v, nil
	}
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return uint32(u), nil
}

// ParseUint64 is like ParseUint32, but accepts values up to 64 bits.  It is used
// for handles and lengths, which are as wide as a native unsigned long.
func ParseUint64(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, merry.Here(ErrInvalidHexString).WithCause(err)
		}
		return u, nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return u, nil
}
