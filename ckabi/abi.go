package ckabi

import (
	"encoding/binary"
	"errors"
	"runtime"
	"strings"
	"unsafe"

	"github.com/ansel1/merry"
)

var ErrUnknownABI = errors.New("unknown ABI")
var ErrInvalidABI = errors.New("invalid ABI")

// ABI describes how a PKCS#11 library lays out its structures: the width of
// CK_ULONG, the width of pointers, byte order, and whether structures are
// packed.
//
// The PKCS#11 headers declare CK_ULONG as a C unsigned long, so the width
// follows the platform's data model rather than the pointer width.  Windows
// builds of cryptoki pack structures to 1 byte alignment; everyone else
// uses natural alignment.
type ABI struct {
	Name        string
	ULongSize   int
	PointerSize int
	ByteOrder   binary.ByteOrder
	Packed      bool
}

var (
	// LP64 is 64-bit Linux, macOS and the BSDs.
	LP64 = ABI{Name: "lp64", ULongSize: 8, PointerSize: 8, ByteOrder: binary.LittleEndian}
	// ILP32 is 32-bit linux and friends.
	ILP32 = ABI{Name: "ilp32", ULongSize: 4, PointerSize: 4, ByteOrder: binary.LittleEndian}
	// LLP64 is 64-bit Windows.
	LLP64 = ABI{Name: "llp64", ULongSize: 4, PointerSize: 8, ByteOrder: binary.LittleEndian, Packed: true}
	// Win32 is 32-bit Windows.
	Win32 = ABI{Name: "win32", ULongSize: 4, PointerSize: 4, ByteOrder: binary.LittleEndian, Packed: true}
)

var knownABIs = []ABI{LP64, ILP32, LLP64, Win32}

// NativeABI returns the ABI of the platform this program was compiled for.
func NativeABI() ABI {
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	abi := ABI{
		Name:        "native",
		ULongSize:   ptrSize,
		PointerSize: ptrSize,
		ByteOrder:   binary.NativeEndian,
	}
	if runtime.GOOS == "windows" {
		abi.ULongSize = 4
		abi.Packed = true
	}
	return abi
}

// LookupABI finds a predefined ABI by name.  The name "native" returns NativeABI().
func LookupABI(name string) (ABI, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "native" {
		return NativeABI(), nil
	}
	for _, abi := range knownABIs {
		if abi.Name == name {
			return abi, nil
		}
	}
	return ABI{}, merry.Here(ErrUnknownABI).Appendf("%q", name)
}

// ABINames returns the names accepted by LookupABI.
func ABINames() []string {
	names := []string{"native"}
	for _, abi := range knownABIs {
		names = append(names, abi.Name)
	}
	return names
}

func (a ABI) Validate() error {
	switch {
	case a.ULongSize != 4 && a.ULongSize != 8:
		return merry.Here(ErrInvalidABI).Appendf("unsigned long size must be 4 or 8, was %d", a.ULongSize)
	case a.PointerSize != 4 && a.PointerSize != 8:
		return merry.Here(ErrInvalidABI).Appendf("pointer size must be 4 or 8, was %d", a.PointerSize)
	case a.ByteOrder == nil:
		return merry.Here(ErrInvalidABI).Append("byte order is required")
	}
	return nil
}

// MaxAlign is the strictest alignment any member of a PKCS#11 structure
// can require under this ABI.
func (a ABI) MaxAlign() int {
	if a.Packed {
		return 1
	}
	if a.ULongSize > a.PointerSize {
		return a.ULongSize
	}
	return a.PointerSize
}

func (a ABI) alignOf(size int) int {
	if a.Packed {
		return 1
	}
	return size
}

func (a ABI) putUint(b []byte, size int, v uint64) {
	if size == 4 {
		a.ByteOrder.PutUint32(b, uint32(v))
		return
	}
	a.ByteOrder.PutUint64(b, v)
}

func (a ABI) uint(b []byte, size int) uint64 {
	if size == 4 {
		return uint64(a.ByteOrder.Uint32(b))
	}
	return a.ByteOrder.Uint64(b)
}

func (a ABI) String() string {
	return a.Name
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	if m := n % align; m > 0 {
		return n + align - m
	}
	return n
}
