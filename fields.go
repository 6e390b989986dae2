package ckparams

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// field is one field of a parameter value.  Each parameter type lists its
// fields once, and equality, hashing and wiping are derived from the list.
type field struct {
	name  string
	num   uint64
	buf   *Bytes
	obj   *Object
	isObj bool
}

func numField(name string, v uint64) field {
	return field{name: name, num: v}
}

func boolField(name string, v bool) field {
	if v {
		return field{name: name, num: 1}
	}
	return field{name: name}
}

func bufField(name string, b *Bytes) field {
	return field{name: name, buf: b}
}

func objField(name string, o *Object) field {
	return field{name: name, obj: o, isObj: true}
}

func equalFields(a, b []field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		fa, fb := a[i], b[i]
		if fa.name != fb.name || fa.num != fb.num || fa.isObj != fb.isObj {
			return false
		}
		if (fa.buf == nil) != (fb.buf == nil) {
			return false
		}
		if fa.buf != nil && !fa.buf.Equal(*fb.buf) {
			return false
		}
		if fa.isObj && !objectsEqual(fa.obj, fb.obj) {
			return false
		}
	}
	return true
}

func hashFields(kind string, fields []field) uint64 {
	h := hasher{d: xxhash.New()}
	h.str(kind)
	for _, f := range fields {
		h.str(f.name)
		switch {
		case f.buf != nil:
			h.bytes(*f.buf)
		case f.isObj:
			if f.obj == nil {
				h.ulong(0)
			} else {
				h.ulong(1)
				h.ulong(uint64(f.obj.Session))
				h.ulong(uint64(f.obj.Handle))
				h.ulong(uint64(f.obj.Class))
				h.ulong(uint64(f.obj.KeyType))
			}
		default:
			h.ulong(f.num)
		}
	}
	return h.d.Sum64()
}

func wipeFields(fields []field) {
	for _, f := range fields {
		if f.buf != nil {
			f.buf.Wipe()
		}
	}
}

type hasher struct {
	d   *xxhash.Digest
	tmp [8]byte
}

func (h *hasher) ulong(v uint64) {
	binary.BigEndian.PutUint64(h.tmp[:], v)
	_, _ = h.d.Write(h.tmp[:])
}

func (h *hasher) str(s string) {
	h.ulong(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) bytes(b Bytes) {
	if b.IsNil() {
		h.ulong(0)
		return
	}
	h.ulong(1)
	h.ulong(uint64(b.Len()))
	_, _ = h.d.Write(b.ref())
}
