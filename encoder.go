package ckparams

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
)

// Encode encodes parameters in the layout of the platform this program
// was built for.  Referenced objects are encoded by handle, without checking
// them against a session.
func Encode(p Parameters) (*ckabi.Block, error) {
	return NewEncoder(ckabi.NativeABI(), nil).Encode(p)
}

// Encoder encodes parameter values into native blocks.
type Encoder struct {
	ABI ckabi.ABI
	// Resolver, if set, is used to check every object a parameter refers to
	// before its handle is encoded.
	Resolver ObjectResolver
}

func NewEncoder(abi ckabi.ABI, resolver ObjectResolver) *Encoder {
	return &Encoder{ABI: abi, Resolver: resolver}
}

// Encode validates p and encodes it.  The root segment of the returned
// block is the CK_*_PARAMS structure.
func (e *Encoder) Encode(p Parameters) (*ckabi.Block, error) {
	if p == nil {
		return nil, merry.Here(ErrInvalidParameter).Append("nil parameters")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	s := &encodeState{Encoder: ckabi.NewEncoder(e.ABI), resolver: e.Resolver}
	if err := p.marshalCK(s); err != nil {
		return nil, err
	}
	return s.Block()
}

// EncodeMechanism checks the mechanism's parameters against its type, and
// encodes them.  The block is nil for mechanisms without parameters.
func (e *Encoder) EncodeMechanism(m *Mechanism) (ck.MechanismType, *ckabi.Block, error) {
	if m == nil {
		return 0, nil, merry.Here(ErrInvalidParameter).Append("nil mechanism")
	}
	if err := checkMechanism(m.Type, m.Parameters); err != nil {
		return 0, nil, err
	}
	if m.Parameters == nil {
		return m.Type, nil, nil
	}
	blk, err := e.Encode(m.Parameters)
	if err != nil {
		return 0, nil, merry.Prependf(err, "encoding parameters for %v", m.Type)
	}
	return m.Type, blk, nil
}
