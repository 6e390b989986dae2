//go:build pkcs11

package p11

import (
	"runtime"
	"unsafe"

	"github.com/gemalto/ckparams/ckabi"
)

// pinnedBlock is a block packed into Go memory that the garbage collector
// won't move.  The module dereferences the pointers in the parameter
// structure, and writes output through them, after the structure itself has
// been copied into C memory.
type pinnedBlock struct {
	blk    *ckabi.Block
	words  []uint64
	image  []byte
	root   []byte
	pinner runtime.Pinner
}

func pin(blk *ckabi.Block) (*pinnedBlock, error) {
	_, size := blk.Layout()
	// uint64 words are aligned for every ABI
	p := &pinnedBlock{blk: blk, words: make([]uint64, size/8+1)}
	p.pinner.Pin(&p.words[0])
	p.image = unsafe.Slice((*byte)(unsafe.Pointer(&p.words[0])), size)

	image, err := blk.Pack(uint64(uintptr(unsafe.Pointer(&p.words[0]))))
	if err != nil {
		p.release()
		return nil, err
	}
	copy(p.image, image)
	wipe(image)
	p.root = p.image[:len(blk.Root())]
	return p, nil
}

// unpack copies what the module wrote back into the block.
func (p *pinnedBlock) unpack() error {
	return p.blk.Unpack(p.image)
}

func (p *pinnedBlock) release() {
	wipe(p.image)
	p.pinner.Unpin()
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
