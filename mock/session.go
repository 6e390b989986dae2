package mock

import (
	"context"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume"
	"github.com/google/uuid"
)

// Session is a session on a Token.  It implements ckparams.ObjectResolver,
// so it can be given to parameter encoders and decoders.
type Session struct {
	ID     uuid.UUID
	Handle ckparams.SessionHandle

	token *Token
	log   flume.Logger
}

// ResolveObject implements ckparams.ObjectResolver.
func (s *Session) ResolveObject(h ckparams.ObjectHandle) (*ckparams.Object, error) {
	o, err := s.token.lookup(s, h)
	if err != nil {
		return nil, err
	}
	obj := o.Object
	return &obj, nil
}

// CreateSecretKey creates a secret key object holding value.
func (s *Session) CreateSecretKey(keyType ck.KeyType, value []byte) (*ckparams.Object, error) {
	if err := checkKeySize(keyType, len(value)); err != nil {
		return nil, err
	}
	return s.token.create(s, ck.ObjectClassSECRET_KEY, keyType, value)
}

// Value returns a copy of the CKA_VALUE of a secret key.  Every key on the
// mock token is extractable.
func (s *Session) Value(o *ckparams.Object) ([]byte, error) {
	if o == nil {
		return nil, merry.Here(ErrObjectHandleInvalid).Append("nil object")
	}
	obj, err := s.token.lookup(s, o.Handle)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), obj.value...), nil
}

// Close closes the session and destroys its objects.
func (s *Session) Close() error {
	return s.token.closeSession(s)
}

// DeriveKey is C_DeriveKey.  It derives a key of keyType from base.
//
// CKM_SSL3_KEY_AND_MAC_DERIVE and CKM_TLS_KEY_AND_MAC_DERIVE create four
// objects, which are returned through the mechanism's
// ckparams.SSL3KeyMaterialOutParameters, and DeriveKey returns a nil object.
// For the master key derivations, the protocol version from the pre-master
// secret is returned through the parameters as well.
func (s *Session) DeriveKey(ctx context.Context, m *ckparams.Mechanism, base *ckparams.Object, keyType ck.KeyType) (*ckparams.Object, error) {
	log, err := s.begin(ctx, m)
	if err != nil {
		return nil, err
	}

	blk, received, p, err := s.transmit(log, m)
	if err != nil {
		return nil, err
	}
	defer received.Wipe()
	if base == nil {
		return nil, merry.Here(ErrObjectHandleInvalid).Append("no base key")
	}
	baseKey, err := s.token.lookup(s, base.Handle)
	if err != nil {
		return nil, err
	}

	var out *ckparams.Object
	switch m.Type {
	case ck.MechanismTypeDES_CBC_ENCRYPT_DATA, ck.MechanismTypeDES3_CBC_ENCRYPT_DATA, ck.MechanismTypeAES_CBC_ENCRYPT_DATA:
		out, err = s.deriveCBCEncryptData(m.Type, p, baseKey, keyType)
	case ck.MechanismTypeCONCATENATE_BASE_AND_KEY:
		out, err = s.deriveConcatenateKey(p.(*ckparams.ObjectHandleParameters), baseKey, keyType)
	case ck.MechanismTypeCONCATENATE_BASE_AND_DATA:
		out, err = s.deriveConcatenateData(p.(*ckparams.KeyDerivationStringDataParameters), baseKey, keyType)
	case ck.MechanismTypeSSL3_MASTER_KEY_DERIVE, ck.MechanismTypeTLS_MASTER_KEY_DERIVE:
		out, err = s.deriveMasterKey(p.(*ckparams.SSL3MasterKeyDeriveParameters), received, baseKey)
	case ck.MechanismTypeSSL3_KEY_AND_MAC_DERIVE, ck.MechanismTypeTLS_KEY_AND_MAC_DERIVE:
		err = s.deriveKeyAndMAC(p.(*ckparams.SSL3KeyMaterialParameters), received, baseKey, keyType)
	default:
		err = merry.Here(ErrMechanismInvalid).Appendf("%v is not supported by C_DeriveKey", m.Type)
	}
	if err != nil {
		log.Debug("derive failed", "err", err)
		return nil, err
	}

	if err := s.writeBack(blk, received); err != nil {
		return nil, err
	}
	if err := ckparams.NewDecoder(s).DecodeOutput(m.Parameters, blk); err != nil {
		return nil, merry.Prepend(err, "decoding mechanism output")
	}
	log.Debug("derived key", "object", out.String())
	return out, nil
}

// GenerateKey is C_GenerateKey, for the password based key generation
// mechanisms.  length is the CKA_VALUE_LEN of the new key.
func (s *Session) GenerateKey(ctx context.Context, m *ckparams.Mechanism, keyType ck.KeyType, length int) (*ckparams.Object, error) {
	log, err := s.begin(ctx, m)
	if err != nil {
		return nil, err
	}

	_, received, p, err := s.transmit(log, m)
	if err != nil {
		return nil, err
	}
	defer received.Wipe()
	switch m.Type {
	case ck.MechanismTypePKCS5_PBKD2:
		return s.generatePBKD2(p.(*ckparams.PKCS5PBKD2Parameters), keyType, length)
	default:
		return nil, merry.Here(ErrMechanismInvalid).Appendf("%v is not supported by C_GenerateKey", m.Type)
	}
}

// transmit encodes the mechanism's parameters the way a library would hand
// them to a token, packed at the token's base address.  The token reads them
// back out of that memory into its own block, and decodes that.
func (s *Session) transmit(log flume.Logger, m *ckparams.Mechanism) (sent, received *ckabi.Block, p ckparams.Parameters, err error) {
	mt, sent, err := ckparams.NewEncoder(s.token.ABI, s).EncodeMechanism(m)
	if err != nil {
		return nil, nil, nil, err
	}
	if sent == nil {
		return nil, nil, nil, merry.Here(ErrMechanismInvalid).Appendf("%v takes no parameters", mt)
	}
	image, err := sent.Pack(s.token.Base)
	if err != nil {
		return nil, nil, nil, merry.Prepend(err, "packing mechanism parameters")
	}
	log.Debug("received mechanism", "abi", s.token.ABI.String(), "base", s.token.Base, "size", len(image))

	received = sent.Clone()
	received.Wipe()
	if err := received.Unpack(image); err != nil {
		return nil, nil, nil, merry.Prepend(err, "reading mechanism parameters")
	}
	p, err = ckparams.NewDecoder(s).Decode(mt, received)
	if err != nil {
		received.Wipe()
		return nil, nil, nil, merry.Prepend(err, "token rejected mechanism parameters")
	}
	return sent, received, p, nil
}

// writeBack copies what the token wrote into its memory back into the
// caller's block.
func (s *Session) writeBack(sent, received *ckabi.Block) error {
	image, err := received.Pack(s.token.Base)
	if err != nil {
		return merry.Prepend(err, "packing mechanism output")
	}
	return sent.Unpack(image)
}

func (s *Session) begin(ctx context.Context, m *ckparams.Mechanism) (flume.Logger, error) {
	if err := ctx.Err(); err != nil {
		return nil, merry.Wrap(err)
	}
	if m == nil {
		return nil, merry.Here(ErrMechanismInvalid).Append("nil mechanism")
	}
	return s.log.With("mechanism", m.String()), nil
}
