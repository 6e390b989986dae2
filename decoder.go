package ckparams

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
)

// Decode decodes the parameters of a mechanism from a native block.  Handles
// are not resolved; objects in the result only carry their handles.
func Decode(t ck.MechanismType, blk *ckabi.Block) (Parameters, error) {
	return NewDecoder(nil).Decode(t, blk)
}

// Decoder turns native blocks back into parameter values.
//
// Decode reads mechanism input, the way a token would.  DecodeOutput reads
// the results a token wrote into the parameter block of a mechanism with
// output parameters, like CKM_SSL3_KEY_AND_MAC_DERIVE.
type Decoder struct {
	// Resolver turns handles into objects.  DecodeOutput needs one to give
	// the returned objects their class and key type.  It should be the session
	// which performed the call.
	Resolver ObjectResolver
}

func NewDecoder(resolver ObjectResolver) *Decoder {
	return &Decoder{Resolver: resolver}
}

// Decode decodes and validates the input parameters of a mechanism.
func (d *Decoder) Decode(t ck.MechanismType, blk *ckabi.Block) (Parameters, error) {
	p, ok := newParameters(t)
	if !ok {
		return nil, merry.Here(ErrMechanismMismatch).Appendf("%v takes no parameters", t)
	}
	if blk == nil {
		return nil, merry.Here(ErrInvalidParameter).Appendf("%v requires parameters", t)
	}
	s := &decodeState{Decoder: ckabi.NewDecoder(blk), resolver: d.Resolver}
	if err := p.unmarshalCK(s); err != nil {
		return nil, err
	}
	if err := s.Err(); err != nil {
		return nil, merry.Prependf(err, "decoding %v parameters", t)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeOutput copies the output a token wrote into blk back into p, resolving
// returned handles with the decoder's resolver.  blk must be the block p was
// encoded into, after the call.  For parameters without output, it does
// nothing.
//
// If a returned handle can't be resolved, the error is ErrObjectNotFound.
func (d *Decoder) DecodeOutput(p Parameters, blk *ckabi.Block) error {
	out, ok := p.(outputParameters)
	if !ok {
		return nil
	}
	if blk == nil {
		return merry.Here(ErrInvalidParameter).Append("no block to decode output from")
	}
	s := &decodeState{Decoder: ckabi.NewDecoder(blk), resolver: d.Resolver}
	if err := out.decodeOutput(s); err != nil {
		return err
	}
	return s.Err()
}
