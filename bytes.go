package ckparams

import (
	"crypto/subtle"
	"strconv"
)

// Bytes is a byte buffer owned by a parameter value.  It is copied on the way
// in and on the way out, so the caller never shares memory with it, and it
// can be wiped.
//
// The zero value is an absent buffer, which encodes as a NULL pointer.  A
// present buffer may be empty.
type Bytes struct {
	data []byte
}

// NewBytes copies b.  A nil b gives an absent buffer.
func NewBytes(b []byte) Bytes {
	if b == nil {
		return Bytes{}
	}
	data := make([]byte, len(b))
	copy(data, b)
	return Bytes{data: data}
}

// Data returns a copy of the buffer's contents, or nil if the buffer is absent.
func (b Bytes) Data() []byte {
	return NewBytes(b.data).data
}

func (b Bytes) Len() int {
	return len(b.data)
}

// IsNil reports whether the buffer is absent.
func (b Bytes) IsNil() bool {
	return b.data == nil
}

// Equal compares contents in constant time.  An absent buffer only equals
// another absent buffer.
func (b Bytes) Equal(other Bytes) bool {
	if b.IsNil() || other.IsNil() {
		return b.IsNil() == other.IsNil()
	}
	return subtle.ConstantTimeCompare(b.data, other.data) == 1
}

func (b Bytes) Clone() Bytes {
	return NewBytes(b.data)
}

// Wipe zeroes the buffer in place.  The length is kept.
func (b *Bytes) Wipe() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// String prints the length, never the contents.
func (b Bytes) String() string {
	if b.IsNil() {
		return "<nil>"
	}
	return "[" + strconv.Itoa(len(b.data)) + " bytes]"
}

// ref returns the underlying slice, without copying.
func (b Bytes) ref() []byte {
	return b.data
}
