package ckparams

import (
	"github.com/gemalto/ckparams/ckabi"
)

// Parameters is the parameter value of a mechanism.  The implementations in
// this package map one to one to the PKCS#11 CK_*_PARAMS structures.
//
// Parameter values own their buffers.  Values are not safe for concurrent
// mutation; they are normally built, encoded, and discarded by a single
// goroutine.
type Parameters interface {
	// Equal compares field by field.  Buffers are compared by content.  Values of
	// different types are never equal.
	Equal(other Parameters) bool
	// Hash is consistent with Equal.
	Hash() uint64
	// Clone returns a deep copy.  Wiping or mutating the copy leaves the
	// original unchanged.
	Clone() Parameters
	// Wipe zeroes every buffer the value holds.
	Wipe()

	validate() error
	marshalCK(e *encodeState) error
	unmarshalCK(d *decodeState) error
}

// outputParameters is implemented by parameters the token writes results
// into.
type outputParameters interface {
	Parameters
	decodeOutput(d *decodeState) error
}

type encodeState struct {
	*ckabi.Encoder
	resolver ObjectResolver
}

// object returns the handle to encode for a referenced object.  When the
// encoder has a resolver, the object is looked up again, to catch stale
// references and objects from another session.
func (e *encodeState) object(name string, o *Object) uint64 {
	if o == nil || o.Handle == 0 {
		e.Fail(unresolved(name, "no object"))
		return 0
	}
	if e.resolver != nil {
		found, err := e.resolver.ResolveObject(o.Handle)
		switch {
		case err != nil:
			e.Fail(unresolved(name, "handle %d: %v", o.Handle, err))
			return 0
		case found == nil:
			e.Fail(unresolved(name, "handle %d not found", o.Handle))
			return 0
		case found.Session != o.Session:
			e.Fail(unresolved(name, "handle %d belongs to session %d, not %d", o.Handle, found.Session, o.Session))
			return 0
		}
	}
	return uint64(o.Handle)
}

func (e *encodeState) bytes(b Bytes) []byte {
	return b.ref()
}

type decodeState struct {
	*ckabi.Decoder
	resolver ObjectResolver
}

// object turns a handle read from a block back into an object.  Without a
// resolver, the object only carries its handle.
func (d *decodeState) object(name string, h uint64) *Object {
	if d.Err() != nil || h == 0 {
		return nil
	}
	if d.resolver == nil {
		return &Object{Handle: ObjectHandle(h)}
	}
	o, err := d.resolver.ResolveObject(ObjectHandle(h))
	if err != nil {
		d.Fail(notFound(name, "handle %d: %v", h, err))
		return nil
	}
	if o == nil {
		d.Fail(notFound(name, "handle %d", h))
		return nil
	}
	return o
}

func (d *decodeState) bytes() Bytes {
	return Bytes{data: d.DecodePtrLen()}
}

func (d *decodeState) lenBytes() Bytes {
	return Bytes{data: d.DecodeLenPtr()}
}
