package ckabi

import (
	"errors"
	"math"

	"github.com/ansel1/merry"
)

var ErrULongOverflow = errors.New("value exceeds unsigned long width")
var ErrFixedLength = errors.New("value exceeds fixed array length")

// Encoder writes PKCS#11 structures in the layout of a particular ABI.
//
// Values are written in field order.  The encoder inserts alignment padding
// before each member and at the end of each structure, unless the ABI is
// packed.  Variable length byte arrays are written as out-of-line segments,
// referenced from pointer slots in the structure.
//
// Errors are sticky: once an error has occurred, all further writes are
// ignored, and the error is returned from Block().
type Encoder struct {
	abi  ABI
	blk  *Block
	seg  *Segment
	err  error
	done bool

	// strictest alignment seen in the structure currently being written
	maxAlign int
}

func NewEncoder(abi ABI) *Encoder {
	e := &Encoder{abi: abi, maxAlign: 1}
	if err := abi.Validate(); err != nil {
		e.err = err
	}
	e.blk = &Block{ABI: abi}
	e.seg = &Segment{Align: 1}
	e.blk.Segments = append(e.blk.Segments, e.seg)
	return e
}

func (e *Encoder) ABI() ABI {
	return e.abi
}

// Err returns the first error encountered.
func (e *Encoder) Err() error {
	return e.err
}

// Fail records an error.  Callers use this to report invalid values
// discovered while encoding.  Only the first error is kept.
func (e *Encoder) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Offset is the current write position in the structure being written.
func (e *Encoder) Offset() int {
	return len(e.seg.Data)
}

// Block finishes the root structure and returns the block.  The encoder
// must not be used afterwards.
func (e *Encoder) Block() (*Block, error) {
	if e.err != nil {
		return nil, e.err
	}
	if !e.done {
		e.finish()
		e.done = true
	}
	return e.blk, nil
}

func (e *Encoder) finish() {
	e.pad(e.maxAlign)
	e.seg.Align = e.maxAlign
}

func (e *Encoder) pad(align int) {
	if align > e.maxAlign {
		e.maxAlign = align
	}
	n := len(e.seg.Data)
	if m := alignUp(n, align); m > n {
		e.seg.Data = append(e.seg.Data, zeros[:m-n]...)
	}
}

// EncodeULong writes a CK_ULONG.  Handles, lengths, flags and mechanism
// codes are all CK_ULONGs.
func (e *Encoder) EncodeULong(v uint64) {
	if e.err != nil {
		return
	}
	if e.abi.ULongSize == 4 && v > math.MaxUint32 {
		e.err = merry.Here(ErrULongOverflow).Appendf("%d does not fit in %d bytes", v, e.abi.ULongSize)
		return
	}
	e.pad(e.abi.alignOf(e.abi.ULongSize))
	n := len(e.seg.Data)
	e.seg.Data = append(e.seg.Data, zeros[:e.abi.ULongSize]...)
	e.abi.putUint(e.seg.Data[n:], e.abi.ULongSize, v)
}

// EncodeByte writes a CK_BYTE.
func (e *Encoder) EncodeByte(b byte) {
	if e.err != nil {
		return
	}
	e.seg.Data = append(e.seg.Data, b)
}

// EncodeBool writes a CK_BBOOL.
func (e *Encoder) EncodeBool(b bool) {
	if b {
		e.EncodeByte(1)
	} else {
		e.EncodeByte(0)
	}
}

// EncodeFixed writes an inline CK_BYTE array of length n.  b may be shorter
// than n, in which case the remainder is zeroed.
func (e *Encoder) EncodeFixed(b []byte, n int) {
	if e.err != nil {
		return
	}
	if len(b) > n {
		e.err = merry.Here(ErrFixedLength).Appendf("%d bytes does not fit in array of %d", len(b), n)
		return
	}
	e.seg.Data = append(e.seg.Data, b...)
	for i := len(b); i < n; i++ {
		e.seg.Data = append(e.seg.Data, 0)
	}
}

// EncodeBytes writes b inline with no length prefix.  Some mechanisms take a
// bare byte string as their parameter, rather than a structure.
func (e *Encoder) EncodeBytes(b []byte) {
	e.EncodeFixed(b, len(b))
}

// EncodePointer writes a pointer slot referring to the target segment.  A
// negative target writes a NULL pointer.
func (e *Encoder) EncodePointer(target int) {
	if e.err != nil {
		return
	}
	e.pad(e.abi.alignOf(e.abi.PointerSize))
	n := len(e.seg.Data)
	e.seg.Data = append(e.seg.Data, zeros[:e.abi.PointerSize]...)
	if target >= 0 {
		e.seg.Pointers = append(e.seg.Pointers, Pointer{Offset: n, Target: target})
	}
}

// AddBuffer copies b into a new out-of-line segment and returns its index.  A nil
// slice returns -1, which EncodePointer writes as NULL.  An empty, non-nil slice
// gets a zero length segment, so the distinction survives a round trip.
func (e *Encoder) AddBuffer(b []byte) int {
	if b == nil || e.err != nil {
		return -1
	}
	data := make([]byte, len(b))
	copy(data, b)
	e.blk.Segments = append(e.blk.Segments, &Segment{Data: data, Align: 1})
	return len(e.blk.Segments) - 1
}

// EncodePtrLen writes a byte array as a pointer followed by a CK_ULONG length.
func (e *Encoder) EncodePtrLen(b []byte) {
	e.EncodePointer(e.AddBuffer(b))
	e.EncodeULong(uint64(len(b)))
}

// EncodeLenPtr writes a byte array as a CK_ULONG length followed by a pointer.
func (e *Encoder) EncodeLenPtr(b []byte) {
	e.EncodeULong(uint64(len(b)))
	e.EncodePointer(e.AddBuffer(b))
}

// EncodeStructure writes a structure nested inline in the current one.  Nested
// structures in PKCS#11 are built from CK_ULONGs and pointers, so they are
// aligned to ABI.MaxAlign().
func (e *Encoder) EncodeStructure(f func(e *Encoder) error) error {
	if e.err != nil {
		return e.err
	}
	align := e.abi.MaxAlign()
	e.pad(align)
	outer := e.maxAlign
	e.maxAlign = 1
	err := f(e)
	if err != nil {
		e.maxAlign = outer
		e.Fail(err)
		return err
	}
	e.pad(align)
	if outer > e.maxAlign {
		e.maxAlign = outer
	}
	return e.err
}

// EncodeSegment writes a structure into a new out-of-line segment, and returns
// the index of the segment, for use with EncodePointer.
func (e *Encoder) EncodeSegment(f func(e *Encoder) error) (int, error) {
	if e.err != nil {
		return -1, e.err
	}
	outerSeg, outerAlign := e.seg, e.maxAlign
	e.seg = &Segment{Align: 1}
	e.maxAlign = 1
	e.blk.Segments = append(e.blk.Segments, e.seg)
	idx := len(e.blk.Segments) - 1

	err := f(e)
	if err == nil {
		e.finish()
	}
	e.seg, e.maxAlign = outerSeg, outerAlign
	if err != nil {
		e.Fail(err)
		return -1, err
	}
	return idx, e.err
}
