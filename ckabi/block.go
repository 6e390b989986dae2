package ckabi

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ansel1/merry"
)

var ErrMisalignedBase = errors.New("base address is not aligned")
var ErrInvalidPointer = errors.New("invalid pointer")
var ErrInvalidSegment = errors.New("invalid segment")

// Pointer is a pointer slot inside a segment.  When the block is packed,
// the slot is patched with the absolute address of the target segment.
type Pointer struct {
	// Offset of the pointer slot, relative to the start of the segment.
	Offset int
	// Target is the index of the segment the slot points to.
	Target int
}

// Segment is one contiguous piece of native memory: a structure, or a byte
// buffer referenced by a structure.
type Segment struct {
	Data     []byte
	Align    int
	Pointers []Pointer
}

// Block is the native representation of a mechanism parameter.  Segments[0]
// is the parameter structure itself, which is what CK_MECHANISM.pParameter
// points at.  The remaining segments are the buffers and nested output
// structures it references.
//
// A Block is position independent until it is packed.
type Block struct {
	ABI      ABI
	Segments []*Segment
}

// Root returns the bytes of the parameter structure.  Pointer slots are left
// zeroed until the block is packed.
func (b *Block) Root() []byte {
	if b == nil || len(b.Segments) == 0 {
		return nil
	}
	return b.Segments[0].Data
}

func (b *Block) Segment(i int) (*Segment, error) {
	if i < 0 || i >= len(b.Segments) {
		return nil, merry.Here(ErrInvalidSegment).Appendf("no segment %d", i)
	}
	return b.Segments[i], nil
}

// PointerAt returns the target segment of the pointer slot at the given
// offset of a segment.  ok is false if there is no pointer slot at that offset,
// which is how NULL pointers are represented.
func (b *Block) PointerAt(seg, offset int) (target int, ok bool) {
	if seg < 0 || seg >= len(b.Segments) {
		return -1, false
	}
	for _, p := range b.Segments[seg].Pointers {
		if p.Offset == offset {
			return p.Target, true
		}
	}
	return -1, false
}

// Layout returns the offset of each segment relative to the packing base,
// and the total packed size.
func (b *Block) Layout() (offsets []int, size int) {
	offsets = make([]int, len(b.Segments))
	for i, s := range b.Segments {
		size = alignUp(size, s.Align)
		offsets[i] = size
		size += len(s.Data)
	}
	return offsets, size
}

// Align returns the alignment the packing base address must satisfy.
func (b *Block) Align() int {
	align := 1
	for _, s := range b.Segments {
		if s.Align > align {
			align = s.Align
		}
	}
	return align
}

// Pack flattens the block into a single buffer which will live at address base,
// patching every pointer slot with the absolute address of its target.
func (b *Block) Pack(base uint64) ([]byte, error) {
	if align := b.Align(); base%uint64(align) != 0 {
		return nil, merry.Here(ErrMisalignedBase).Appendf("%#x is not aligned to %d", base, align)
	}
	offsets, size := b.Layout()
	image := make([]byte, size)
	for i, s := range b.Segments {
		copy(image[offsets[i]:], s.Data)
	}
	for i, s := range b.Segments {
		for _, p := range s.Pointers {
			if p.Target < 0 || p.Target >= len(b.Segments) {
				return nil, merry.Here(ErrInvalidPointer).Appendf("segment %d offset %d points at missing segment %d", i, p.Offset, p.Target)
			}
			if p.Offset < 0 || p.Offset+b.ABI.PointerSize > len(s.Data) {
				return nil, merry.Here(ErrInvalidPointer).Appendf("segment %d has pointer slot outside its bounds at offset %d", i, p.Offset)
			}
			addr := base + uint64(offsets[p.Target])
			if b.ABI.PointerSize == 4 && addr > math.MaxUint32 {
				return nil, merry.Here(ErrInvalidPointer).Appendf("address %#x does not fit in a 32-bit pointer", addr)
			}
			b.ABI.putUint(image[offsets[i]+p.Offset:], b.ABI.PointerSize, addr)
		}
	}
	return image, nil
}

// Unpack copies the contents of a packed image back into the block's segments,
// picking up whatever the token wrote into the memory during the call.  Pointer
// slots are restored to zero, since they only hold meaningful values inside
// the image.
func (b *Block) Unpack(image []byte) error {
	offsets, size := b.Layout()
	if len(image) < size {
		return merry.Here(ErrValueTruncated).Appendf("image is %d bytes, block needs %d", len(image), size)
	}
	for i, s := range b.Segments {
		copy(s.Data, image[offsets[i]:offsets[i]+len(s.Data)])
		for _, p := range s.Pointers {
			copy(s.Data[p.Offset:p.Offset+b.ABI.PointerSize], zeros[:b.ABI.PointerSize])
		}
	}
	return nil
}

// ReplaceSegment overwrites the contents of a segment.  The new contents must
// be the same length as the old.  Pointer slots are kept.
func (b *Block) ReplaceSegment(i int, data []byte) error {
	s, err := b.Segment(i)
	if err != nil {
		return err
	}
	if len(data) != len(s.Data) {
		return merry.Here(ErrInvalidSegment).Appendf("segment %d is %d bytes, replacement is %d", i, len(s.Data), len(data))
	}
	copy(s.Data, data)
	for _, p := range s.Pointers {
		copy(s.Data[p.Offset:p.Offset+b.ABI.PointerSize], zeros[:b.ABI.PointerSize])
	}
	return nil
}

// Wipe zeroes every segment.  Blocks often hold copies of passwords and
// key material.
func (b *Block) Wipe() {
	if b == nil {
		return
	}
	for _, s := range b.Segments {
		for i := range s.Data {
			s.Data[i] = 0
		}
	}
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	c := &Block{ABI: b.ABI, Segments: make([]*Segment, len(b.Segments))}
	for i, s := range b.Segments {
		c.Segments[i] = &Segment{
			Data:     append([]byte(nil), s.Data...),
			Align:    s.Align,
			Pointers: append([]Pointer(nil), s.Pointers...),
		}
	}
	return c
}

// String prints one line per segment: its index, the offset it will have
// when packed, its bytes in hex, and the pointer slots it holds.
func (b *Block) String() string {
	if b == nil {
		return "<nil>"
	}
	var sb strings.Builder
	offsets, size := b.Layout()
	fmt.Fprintf(&sb, "abi=%s size=%d segments=%d\n", b.ABI.Name, size, len(b.Segments))
	for i, s := range b.Segments {
		fmt.Fprintf(&sb, "  [%d] @%d len=%d align=%d | %s", i, offsets[i], len(s.Data), s.Align, hex.EncodeToString(s.Data))
		for _, p := range s.Pointers {
			fmt.Fprintf(&sb, " | +%d -> [%d]", p.Offset, p.Target)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Hex2bytes converts hex string to bytes.  Any non-hex characters in the string are stripped first.
// panics on error
func Hex2bytes(s string) []byte {
	// strip non hex bytes
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return -1 // drop
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var zeros = [8]byte{}
