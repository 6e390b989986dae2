package ckabi

import (
	"errors"

	"github.com/ansel1/merry"
)

var ErrValueTruncated = errors.New("value truncated")

// Decoder reads PKCS#11 structures from a Block, following the same
// alignment rules as Encoder.  Like Encoder, errors are sticky: reads after
// an error return zero values, and the error is returned by Err().
type Decoder struct {
	blk    *Block
	segIdx int
	seg    *Segment
	off    int
	err    error
}

// NewDecoder returns a decoder positioned at the start of the root structure.
func NewDecoder(blk *Block) *Decoder {
	d := &Decoder{blk: blk}
	if blk == nil || len(blk.Segments) == 0 {
		d.err = merry.Here(ErrInvalidSegment).Append("block has no root structure")
		d.seg = &Segment{}
		return d
	}
	d.seg = blk.Segments[0]
	return d
}

func (d *Decoder) ABI() ABI {
	return d.blk.ABI
}

func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Offset is the current read position within the current segment.
func (d *Decoder) Offset() int {
	return d.off
}

// SegmentIndex is the index of the segment being read.
func (d *Decoder) SegmentIndex() int {
	return d.segIdx
}

func (d *Decoder) skipTo(align int) {
	d.off = alignUp(d.off, align)
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.off+n > len(d.seg.Data) {
		d.err = merry.Here(ErrValueTruncated).Appendf("segment %d: need %d bytes at offset %d, have %d", d.segIdx, n, d.off, len(d.seg.Data)-d.off)
		return nil
	}
	b := d.seg.Data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) DecodeULong() uint64 {
	abi := d.blk.ABI
	d.skipTo(abi.alignOf(abi.ULongSize))
	b := d.take(abi.ULongSize)
	if b == nil {
		return 0
	}
	return abi.uint(b, abi.ULongSize)
}

func (d *Decoder) DecodeByte() byte {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// DecodeBool reads a CK_BBOOL.  Any non-zero value is true.
func (d *Decoder) DecodeBool() bool {
	return d.DecodeByte() != 0
}

// DecodeFixed reads an inline array of n bytes, returning a copy.
func (d *Decoder) DecodeFixed(n int) []byte {
	b := d.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// DecodeRest returns a copy of the remainder of the current segment.
func (d *Decoder) DecodeRest() []byte {
	return d.DecodeFixed(len(d.seg.Data) - d.off)
}

// DecodePointer reads a pointer slot and returns the index of its target
// segment, or -1 if the pointer is NULL.
func (d *Decoder) DecodePointer() int {
	abi := d.blk.ABI
	d.skipTo(abi.alignOf(abi.PointerSize))
	at := d.off
	b := d.take(abi.PointerSize)
	if b == nil {
		return -1
	}
	if target, ok := d.blk.PointerAt(d.segIdx, at); ok {
		return target
	}
	for _, c := range b {
		if c != 0 {
			d.err = merry.Here(ErrInvalidPointer).Appendf("segment %d offset %d holds an address with no known target", d.segIdx, at)
			return -1
		}
	}
	return -1
}

func (d *Decoder) buffer(target int, n uint64) []byte {
	if d.err != nil {
		return nil
	}
	if target < 0 {
		if n != 0 {
			d.err = merry.Here(ErrInvalidPointer).Appendf("NULL pointer with length %d", n)
		}
		return nil
	}
	s, err := d.blk.Segment(target)
	if err != nil {
		d.err = err
		return nil
	}
	if n > uint64(len(s.Data)) {
		d.err = merry.Here(ErrValueTruncated).Appendf("length %d exceeds buffer of %d bytes", n, len(s.Data))
		return nil
	}
	out := make([]byte, n)
	copy(out, s.Data)
	return out
}

// DecodePtrLen reads a byte array written as pointer then length.  A NULL pointer
// returns nil.
func (d *Decoder) DecodePtrLen() []byte {
	target := d.DecodePointer()
	n := d.DecodeULong()
	return d.buffer(target, n)
}

// DecodeLenPtr reads a byte array written as length then pointer.
func (d *Decoder) DecodeLenPtr() []byte {
	n := d.DecodeULong()
	target := d.DecodePointer()
	return d.buffer(target, n)
}

// DecodeBuffer returns a copy of the first n bytes of a segment.
func (d *Decoder) DecodeBuffer(target int, n uint64) []byte {
	return d.buffer(target, n)
}

// DecodeStructure reads a structure nested inline in the current one.
func (d *Decoder) DecodeStructure(f func(d *Decoder) error) error {
	if d.err != nil {
		return d.err
	}
	align := d.blk.ABI.MaxAlign()
	d.skipTo(align)
	if err := f(d); err != nil {
		d.Fail(err)
		return err
	}
	d.skipTo(align)
	return d.err
}

// DecodeSegment reads a structure from an out-of-line segment, typically one
// returned by DecodePointer.
func (d *Decoder) DecodeSegment(target int, f func(d *Decoder) error) error {
	if d.err != nil {
		return d.err
	}
	s, err := d.blk.Segment(target)
	if err != nil {
		d.err = err
		return err
	}
	outerIdx, outerSeg, outerOff := d.segIdx, d.seg, d.off
	d.segIdx, d.seg, d.off = target, s, 0
	err = f(d)
	d.segIdx, d.seg, d.off = outerIdx, outerSeg, outerOff
	if err != nil {
		d.Fail(err)
		return err
	}
	return d.err
}

// DecodeSegmentData returns a copy of a whole segment, or nil for -1.  It is
// for buffers whose length is not stored anywhere in the structure, such as
// the IVs in CK_SSL3_KEY_MAT_OUT.
func (d *Decoder) DecodeSegmentData(target int) []byte {
	if d.err != nil || target < 0 {
		return nil
	}
	s, err := d.blk.Segment(target)
	if err != nil {
		d.err = err
		return nil
	}
	out := make([]byte, len(s.Data))
	copy(out, s.Data)
	return out
}
