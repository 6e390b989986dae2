package ckabi

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, abi ABI, f func(e *Encoder)) *Block {
	t.Helper()
	e := NewEncoder(abi)
	f(e)
	blk, err := e.Block()
	require.NoError(t, err)
	return blk
}

func TestEncodeULongs(t *testing.T) {
	tests := []struct {
		abi ABI
		exp string
	}{
		{LP64, "5002000000000000 0200000000000000 2000000000000000"},
		{ILP32, "50020000 02000000 20000000"},
		{LLP64, "50020000 02000000 20000000"},
		{Win32, "50020000 02000000 20000000"},
	}
	for _, tc := range tests {
		t.Run(tc.abi.Name, func(t *testing.T) {
			blk := encode(t, tc.abi, func(e *Encoder) {
				e.EncodeULong(0x250)
				e.EncodeULong(2)
				e.EncodeULong(32)
			})
			assert.Equal(t, Hex2bytes(tc.exp), blk.Root())
			assert.Len(t, blk.Segments, 1)
		})
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name string
		abi  ABI
		f    func(e *Encoder)
		exp  string
	}{
		{
			name: "leading bool lp64",
			abi:  LP64,
			f:    func(e *Encoder) { e.EncodeBool(true); e.EncodeULong(5) },
			exp:  "01 00000000000000 | 0500000000000000",
		},
		{
			name: "leading bool ilp32",
			abi:  ILP32,
			f:    func(e *Encoder) { e.EncodeBool(true); e.EncodeULong(5) },
			exp:  "01 000000 | 05000000",
		},
		{
			name: "leading bool packed",
			abi:  LLP64,
			f:    func(e *Encoder) { e.EncodeBool(true); e.EncodeULong(5) },
			exp:  "01 | 05000000",
		},
		{
			name: "tail padding",
			abi:  LP64,
			f:    func(e *Encoder) { e.EncodeULong(5); e.EncodeByte(0x7f) },
			exp:  "0500000000000000 | 7f 00000000000000",
		},
		{
			name: "fixed array",
			abi:  LP64,
			f: func(e *Encoder) {
				e.EncodeFixed([]byte{1, 2, 3}, 8)
				e.EncodeULong(9)
			},
			exp: "0102030000000000 | 0900000000000000",
		},
		{
			name: "bytes only",
			abi:  LP64,
			f:    func(e *Encoder) { e.EncodeBytes([]byte{0xca, 0xfe, 0x01}) },
			exp:  "cafe01",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blk := encode(t, tc.abi, tc.f)
			assert.Equal(t, Hex2bytes(tc.exp), blk.Root())
		})
	}
}

func TestPackPointers(t *testing.T) {
	tests := []struct {
		abi       ABI
		root      string
		packed    string
		ptrOffset int
	}{
		{LP64, "0000000000000000 0200000000000000", "1010000000000000 0200000000000000 aabb", 0},
		{ILP32, "00000000 02000000", "08100000 02000000 aabb", 0},
		{LLP64, "0000000000000000 02000000", "0c10000000000000 02000000 aabb", 0},
	}
	for _, tc := range tests {
		t.Run(tc.abi.Name, func(t *testing.T) {
			blk := encode(t, tc.abi, func(e *Encoder) {
				e.EncodePtrLen([]byte{0xaa, 0xbb})
			})
			require.Len(t, blk.Segments, 2)
			assert.Equal(t, Hex2bytes(tc.root), blk.Root())
			assert.Equal(t, []Pointer{{Offset: tc.ptrOffset, Target: 1}}, blk.Segments[0].Pointers)

			image, err := blk.Pack(0x1000)
			require.NoError(t, err)
			assert.Equal(t, Hex2bytes(tc.packed), image)
		})
	}
}

func TestLenPtrAndNull(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) {
		e.EncodeLenPtr(nil)
		e.EncodeLenPtr([]byte{})
		e.EncodeLenPtr([]byte{1})
	})
	assert.Equal(t, Hex2bytes(`
		0000000000000000 0000000000000000
		0000000000000000 0000000000000000
		0100000000000000 0000000000000000`), blk.Root())
	// nil gets no segment, empty gets a zero length one
	require.Len(t, blk.Segments, 3)
	assert.Empty(t, blk.Segments[1].Data)
	assert.Equal(t, []Pointer{{Offset: 24, Target: 1}, {Offset: 40, Target: 2}}, blk.Segments[0].Pointers)

	d := NewDecoder(blk)
	assert.Nil(t, d.DecodeLenPtr())
	empty := d.DecodeLenPtr()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, []byte{1}, d.DecodeLenPtr())
	require.NoError(t, d.Err())
}

func TestNestedStructure(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) {
		e.EncodeBool(true)
		require.NoError(t, e.EncodeStructure(func(e *Encoder) error {
			e.EncodePtrLen([]byte("x"))
			e.EncodePtrLen(nil)
			return nil
		}))
		e.EncodePointer(-1)
	})
	assert.Len(t, blk.Root(), 48)
	assert.Equal(t, []Pointer{{Offset: 8, Target: 1}}, blk.Segments[0].Pointers)
	assert.Equal(t, 8, blk.Segments[0].Align)

	d := NewDecoder(blk)
	assert.True(t, d.DecodeBool())
	err := d.DecodeStructure(func(d *Decoder) error {
		assert.Equal(t, []byte("x"), d.DecodePtrLen())
		assert.Nil(t, d.DecodePtrLen())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, -1, d.DecodePointer())
	assert.Equal(t, 48, d.Offset())
	require.NoError(t, d.Err())
}

func TestOutputSegmentRoundTrip(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) {
		e.EncodeULong(16)
		idx, err := e.EncodeSegment(func(e *Encoder) error {
			e.EncodeULong(0)
			e.EncodePointer(e.AddBuffer(make([]byte, 4)))
			return nil
		})
		require.NoError(t, err)
		e.EncodePointer(idx)
	})
	require.Len(t, blk.Segments, 3)
	offsets, size := blk.Layout()
	assert.Equal(t, []int{0, 16, 32}, offsets)
	assert.Equal(t, 36, size)

	image, err := blk.Pack(0)
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes("1000000000000000 1000000000000000 0000000000000000 2000000000000000 00000000"), image)

	// what a token would do
	image[16] = 7
	copy(image[32:], []byte{1, 2, 3, 4})
	require.NoError(t, blk.Unpack(image))

	d := NewDecoder(blk)
	assert.EqualValues(t, 16, d.DecodeULong())
	target := d.DecodePointer()
	assert.Equal(t, 1, target)
	err = d.DecodeSegment(target, func(d *Decoder) error {
		assert.EqualValues(t, 7, d.DecodeULong())
		iv := d.DecodePointer()
		assert.Equal(t, []byte{1, 2, 3, 4}, d.DecodeBuffer(iv, 4))
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, d.Err())
}

func TestReplaceSegment(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) {
		e.EncodePtrLen([]byte{0, 0})
	})
	require.NoError(t, blk.ReplaceSegment(1, []byte{9, 9}))
	assert.Equal(t, []byte{9, 9}, blk.Segments[1].Data)

	err := blk.ReplaceSegment(1, []byte{9})
	assert.True(t, merry.Is(err, ErrInvalidSegment))
	err = blk.ReplaceSegment(5, []byte{9})
	assert.True(t, merry.Is(err, ErrInvalidSegment))
}

func TestBlockClone(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) { e.EncodePtrLen([]byte{0xaa}) })
	c := blk.Clone()
	assert.Equal(t, blk, c)

	c.Wipe()
	c.Segments[0].Pointers[0].Target = 5
	assert.Equal(t, []byte{0xaa}, blk.Segments[1].Data)
	assert.Equal(t, 1, blk.Segments[0].Pointers[0].Target)

	assert.Nil(t, (*Block)(nil).Clone())
}

func TestErrors(t *testing.T) {
	t.Run("ulong overflow", func(t *testing.T) {
		e := NewEncoder(ILP32)
		e.EncodeULong(1 << 32)
		e.EncodeULong(1)
		_, err := e.Block()
		assert.True(t, merry.Is(err, ErrULongOverflow))
	})
	t.Run("fixed too long", func(t *testing.T) {
		e := NewEncoder(LP64)
		e.EncodeFixed(make([]byte, 9), 8)
		_, err := e.Block()
		assert.True(t, merry.Is(err, ErrFixedLength))
	})
	t.Run("invalid abi", func(t *testing.T) {
		e := NewEncoder(ABI{ULongSize: 2, PointerSize: 8})
		_, err := e.Block()
		assert.True(t, merry.Is(err, ErrInvalidABI))
	})
	t.Run("structure failure restores alignment", func(t *testing.T) {
		e := NewEncoder(LP64)
		e.EncodeULong(1)
		err := e.EncodeStructure(func(e *Encoder) error {
			return merry.New("bad member")
		})
		require.Error(t, err)
		assert.Equal(t, 8, e.maxAlign)
		assert.Equal(t, err, e.Err())
	})
	t.Run("misaligned base", func(t *testing.T) {
		blk := encode(t, LP64, func(e *Encoder) { e.EncodeULong(1) })
		_, err := blk.Pack(0x1001)
		assert.True(t, merry.Is(err, ErrMisalignedBase))
	})
	t.Run("address too large", func(t *testing.T) {
		blk := encode(t, ILP32, func(e *Encoder) { e.EncodePtrLen([]byte{1}) })
		_, err := blk.Pack(0xfffffffc)
		assert.True(t, merry.Is(err, ErrInvalidPointer))
	})
	t.Run("truncated", func(t *testing.T) {
		d := NewDecoder(&Block{ABI: LP64, Segments: []*Segment{{Data: []byte{1}}}})
		d.DecodeULong()
		assert.True(t, merry.Is(d.Err(), ErrValueTruncated))
	})
	t.Run("unknown address", func(t *testing.T) {
		d := NewDecoder(&Block{ABI: ILP32, Segments: []*Segment{{Data: Hex2bytes("00100000 01000000")}}})
		d.DecodePtrLen()
		assert.True(t, merry.Is(d.Err(), ErrInvalidPointer))
	})
	t.Run("null with length", func(t *testing.T) {
		d := NewDecoder(&Block{ABI: ILP32, Segments: []*Segment{{Data: Hex2bytes("00000000 01000000")}}})
		d.DecodePtrLen()
		assert.True(t, merry.Is(d.Err(), ErrInvalidPointer))
	})
	t.Run("length past buffer", func(t *testing.T) {
		blk := encode(t, LP64, func(e *Encoder) { e.EncodePtrLen([]byte{1}) })
		blk.ABI.putUint(blk.Segments[0].Data[8:], 8, 2)
		d := NewDecoder(blk)
		d.DecodePtrLen()
		assert.True(t, merry.Is(d.Err(), ErrValueTruncated))
	})
}

func TestLookupABI(t *testing.T) {
	for _, name := range ABINames() {
		abi, err := LookupABI(name)
		require.NoError(t, err)
		require.NoError(t, abi.Validate())
	}
	abi, err := LookupABI("LLP64")
	require.NoError(t, err)
	assert.True(t, abi.Packed)
	assert.Equal(t, 4, abi.ULongSize)

	_, err = LookupABI("lp128")
	assert.True(t, merry.Is(err, ErrUnknownABI))
}

func TestBlockString(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) { e.EncodePtrLen([]byte{0xaa}) })
	assert.Equal(t, "abi=lp64 size=17 segments=2\n"+
		"  [0] @0 len=16 align=8 | 00000000000000000100000000000000 | +0 -> [1]\n"+
		"  [1] @16 len=1 align=1 | aa\n", blk.String())
}

func TestWipe(t *testing.T) {
	blk := encode(t, LP64, func(e *Encoder) { e.EncodePtrLen([]byte("secret")) })
	blk.Wipe()
	assert.Equal(t, make([]byte, 6), blk.Segments[1].Data)
}

func TestEnum(t *testing.T) {
	e := NewEnum("CKM_")
	e.RegisterValue(0x250, "CKM_SHA256")
	e.RegisterValue(0x220, "CKM_SHA_1")
	e.RegisterValue(0x220, "CKM_SHA1")

	assert.Equal(t, "CKM_SHA256", e.Format(0x250))
	assert.Equal(t, "CKM_SHA_1", e.Format(0x220))
	assert.Equal(t, "0x00009999", e.Format(0x9999))
	assert.Equal(t, []uint32{0x220, 0x250}, e.Values())

	for _, s := range []string{"CKM_SHA256", "SHA256", "ckm_sha256", "0x250", "592"} {
		v, err := e.Parse(s)
		require.NoError(t, err, s)
		assert.EqualValues(t, 0x250, v, s)
	}
	v, err := e.Parse("CKM_SHA1")
	require.NoError(t, err)
	assert.EqualValues(t, 0x220, v)

	_, err = e.Parse("CKM_BOGUS")
	require.Error(t, err)

	RegisterEnum("Test Mechanism", &e)
	found, ok := LookupEnum("Test Mechanism")
	require.True(t, ok)
	assert.Equal(t, "CKM_", found.Prefix())
	assert.Contains(t, EnumNames(), "Test Mechanism")
}
