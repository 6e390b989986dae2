//go:build pkcs11

package p11

import (
	"context"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume"
	"github.com/google/uuid"
	"github.com/miekg/pkcs11"
)

// Session is a PKCS#11 session.  It implements ckparams.ObjectResolver.
//
// PKCS#11 sessions are single threaded: use a Session from one goroutine at a
// time.
type Session struct {
	ID     uuid.UUID
	Handle ckparams.SessionHandle

	module *Module
	handle pkcs11.SessionHandle
	log    flume.Logger
}

func (s *Session) Close() error {
	if err := s.module.ctx.CloseSession(s.handle); err != nil {
		return merry.Prepend(err, "closing session")
	}
	s.log.Debug("closed session")
	return nil
}

var keyClasses = map[ck.ObjectClass]bool{
	ck.ObjectClassPUBLIC_KEY:  true,
	ck.ObjectClassPRIVATE_KEY: true,
	ck.ObjectClassSECRET_KEY:  true,
}

// ResolveObject reads the CKA_CLASS of an object, and its CKA_KEY_TYPE if it
// is a key.
func (s *Session) ResolveObject(h ckparams.ObjectHandle) (*ckparams.Object, error) {
	class, err := s.ulongAttribute(h, pkcs11.CKA_CLASS)
	if err != nil {
		return nil, err
	}
	o := &ckparams.Object{Session: s.Handle, Handle: h, Class: ck.ObjectClass(class)}
	if keyClasses[o.Class] {
		keyType, err := s.ulongAttribute(h, pkcs11.CKA_KEY_TYPE)
		if err != nil {
			return nil, err
		}
		o.KeyType = ck.KeyType(keyType)
	}
	return o, nil
}

func (s *Session) ulongAttribute(h ckparams.ObjectHandle, typ uint) (uint64, error) {
	attrs, err := s.module.ctx.GetAttributeValue(s.handle, pkcs11.ObjectHandle(h), []*pkcs11.Attribute{
		pkcs11.NewAttribute(typ, nil),
	})
	if err != nil {
		return 0, merry.Prependf(err, "reading attribute %#x of handle %d", typ, h)
	}
	blk := &ckabi.Block{ABI: ckabi.NativeABI(), Segments: []*ckabi.Segment{{Data: attrs[0].Value}}}
	d := ckabi.NewDecoder(blk)
	v := d.DecodeULong()
	return v, d.Err()
}

// DeriveKey is C_DeriveKey.  For mechanisms which return keys through their
// parameters, like CKM_TLS_KEY_AND_MAC_DERIVE, the returned object is nil,
// and the keys are in the parameters.
func (s *Session) DeriveKey(ctx context.Context, m *ckparams.Mechanism, base *ckparams.Object, template []*pkcs11.Attribute) (*ckparams.Object, error) {
	if base == nil {
		return nil, merry.Here(ckparams.ErrUnresolvedReference).Append("no base key")
	}
	var h pkcs11.ObjectHandle
	err := s.call(ctx, m, func(mech []*pkcs11.Mechanism) (err error) {
		h, err = s.module.ctx.DeriveKey(s.handle, mech, pkcs11.ObjectHandle(base.Handle), template)
		return err
	})
	if err != nil || h == 0 {
		return nil, err
	}
	return s.ResolveObject(ckparams.ObjectHandle(h))
}

// GenerateKey is C_GenerateKey.
func (s *Session) GenerateKey(ctx context.Context, m *ckparams.Mechanism, template []*pkcs11.Attribute) (*ckparams.Object, error) {
	var h pkcs11.ObjectHandle
	err := s.call(ctx, m, func(mech []*pkcs11.Mechanism) (err error) {
		h, err = s.module.ctx.GenerateKey(s.handle, mech, template)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.ResolveObject(ckparams.ObjectHandle(h))
}

// Encrypt is C_EncryptInit followed by a single part C_Encrypt.
func (s *Session) Encrypt(ctx context.Context, m *ckparams.Mechanism, key *ckparams.Object, plaintext []byte) ([]byte, error) {
	return s.singlePart(ctx, m, key, plaintext, s.module.ctx.EncryptInit, s.module.ctx.Encrypt)
}

// Decrypt is C_DecryptInit followed by a single part C_Decrypt.
func (s *Session) Decrypt(ctx context.Context, m *ckparams.Mechanism, key *ckparams.Object, ciphertext []byte) ([]byte, error) {
	return s.singlePart(ctx, m, key, ciphertext, s.module.ctx.DecryptInit, s.module.ctx.Decrypt)
}

// Sign is C_SignInit followed by a single part C_Sign.
func (s *Session) Sign(ctx context.Context, m *ckparams.Mechanism, key *ckparams.Object, message []byte) ([]byte, error) {
	return s.singlePart(ctx, m, key, message, s.module.ctx.SignInit, s.module.ctx.Sign)
}

type (
	initFunc func(pkcs11.SessionHandle, []*pkcs11.Mechanism, pkcs11.ObjectHandle) error
	opFunc   func(pkcs11.SessionHandle, []byte) ([]byte, error)
)

func (s *Session) singlePart(ctx context.Context, m *ckparams.Mechanism, key *ckparams.Object, in []byte, init initFunc, op opFunc) ([]byte, error) {
	if key == nil {
		return nil, merry.Here(ckparams.ErrUnresolvedReference).Append("no key")
	}
	// the parameters only need to live through the init call
	err := s.call(ctx, m, func(mech []*pkcs11.Mechanism) error {
		return init(s.handle, mech, pkcs11.ObjectHandle(key.Handle))
	})
	if err != nil {
		return nil, err
	}
	out, err := op(s.handle, in)
	if err != nil {
		return nil, merry.Prependf(err, "%v", m.Type)
	}
	return out, nil
}

// call encodes the mechanism, runs f with it, and decodes any output the
// module wrote into the parameters.
func (s *Session) call(ctx context.Context, m *ckparams.Mechanism, f func(mech []*pkcs11.Mechanism) error) error {
	if err := ctx.Err(); err != nil {
		return merry.Wrap(err)
	}
	mt, blk, err := ckparams.NewEncoder(ckabi.NativeABI(), s).EncodeMechanism(m)
	if err != nil {
		return err
	}
	log := s.log.With("mechanism", m.String())
	if blk == nil {
		log.Debug("calling module")
		return wrapCKR(f([]*pkcs11.Mechanism{pkcs11.NewMechanism(uint(mt), nil)}), mt)
	}
	defer blk.Wipe()

	p, err := pin(blk)
	if err != nil {
		return merry.Prepend(err, "packing mechanism parameters")
	}
	defer p.release()

	log.Debug("calling module", "parameterSize", len(p.root), "blockSize", len(p.image))
	if err := f([]*pkcs11.Mechanism{pkcs11.NewMechanism(uint(mt), p.root)}); err != nil {
		return wrapCKR(err, mt)
	}
	if err := p.unpack(); err != nil {
		return err
	}
	return ckparams.NewDecoder(s).DecodeOutput(m.Parameters, blk)
}

func wrapCKR(err error, mt ck.MechanismType) error {
	if err == nil {
		return nil
	}
	return merry.Prependf(err, "%v", mt)
}
