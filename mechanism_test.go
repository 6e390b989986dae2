package ckparams

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMechanism(t *testing.T) {
	oaep := must(NewRSAPkcsOAEPParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, ck.OAEPSourceEMPTY, nil))
	pss := must(NewRSAPkcsPSSParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, 20))

	tests := []struct {
		name string
		t    ck.MechanismType
		p    Parameters
		err  error
	}{
		{"matching", ck.MechanismTypeRSA_PKCS_OAEP, oaep, nil},
		{"no parameters", ck.MechanismTypeSHA256, nil, nil},
		{"wrong variant", ck.MechanismTypeRSA_PKCS_OAEP, pss, ErrMechanismMismatch},
		{"parameters for parameterless", ck.MechanismTypeRSA_PKCS, oaep, ErrMechanismMismatch},
		{"missing parameters", ck.MechanismTypeRSA_PKCS_OAEP, nil, ErrMechanismMismatch},
		{"vendor mechanism", ck.MechanismTypeVENDOR_DEFINED + 1, nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMechanism(tc.t, tc.p)
			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, Is(err, tc.err), "expected %v, got %v", tc.err, err)
				assert.False(t, Is(err, ErrInvalidParameter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.t, m.Type)
		})
	}
}

func TestMechanismMethods(t *testing.T) {
	m := must(NewMechanism(ck.MechanismTypeAES_CBC_PAD, must(NewInitializationVectorParameters(make([]byte, 16)))))
	c := m.Clone()
	assert.True(t, m.Equal(c))
	assert.Equal(t, m.Hash(), c.Hash())
	assert.Equal(t, "CKM_AES_CBC_PAD(*ckparams.InitializationVectorParameters)", m.String())

	c.Wipe()
	assert.True(t, m.Equal(c), "the iv was already zero")

	other := must(NewMechanism(ck.MechanismTypeAES_CBC, must(NewInitializationVectorParameters(make([]byte, 16)))))
	assert.False(t, m.Equal(other))
	assert.NotEqual(t, m.Hash(), other.Hash())

	digest := &Mechanism{Type: ck.MechanismTypeSHA256}
	assert.Equal(t, "CKM_SHA256", digest.String())
	assert.True(t, digest.Equal(digest.Clone()))
	assert.False(t, digest.Equal(m))
	assert.False(t, digest.Equal(nil))
}

func TestEncodeMechanismWithoutParameters(t *testing.T) {
	mt, blk, err := NewEncoder(ckabi.LP64, nil).EncodeMechanism(&Mechanism{Type: ck.MechanismTypeSHA_1})
	require.NoError(t, err)
	assert.Equal(t, ck.MechanismTypeSHA_1, mt)
	assert.Nil(t, blk)

	_, _, err = NewEncoder(ckabi.LP64, nil).EncodeMechanism(&Mechanism{Type: ck.MechanismTypeAES_CBC})
	assert.True(t, Is(err, ErrMechanismMismatch))
}

func TestParameterizedMechanisms(t *testing.T) {
	types := ParameterizedMechanisms()
	require.NotEmpty(t, types)
	assert.True(t, sort.SliceIsSorted(types, func(i, j int) bool { return types[i] < types[j] }))
	for _, mt := range types {
		assert.True(t, TakesParameters(mt))
		p, ok := newParameters(mt)
		require.True(t, ok)
		require.NotNil(t, p)
	}
	assert.False(t, TakesParameters(ck.MechanismTypeSHA256))
	assert.True(t, TakesParameters(ck.MechanismTypeSSL3_KEY_AND_MAC_DERIVE))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(ck.MechanismTypeSHA256, &ckabi.Block{ABI: ckabi.LP64})
	assert.True(t, Is(err, ErrMechanismMismatch))

	_, err = Decode(ck.MechanismTypeRSA_PKCS_OAEP, nil)
	assert.True(t, Is(err, ErrInvalidParameter))

	// one ulong short
	blk := &ckabi.Block{ABI: ckabi.LP64, Segments: []*ckabi.Segment{{Data: h("2002000000000000 0100000000000000"), Align: 8}}}
	_, err = Decode(ck.MechanismTypeRSA_PKCS_PSS, blk)
	assert.True(t, Is(err, ckabi.ErrValueTruncated))

	// structurally fine, but an invalid mgf
	blk = &ckabi.Block{ABI: ckabi.LP64, Segments: []*ckabi.Segment{{Data: h("2002000000000000 0900000000000000 1400000000000000"), Align: 8}}}
	_, err = Decode(ck.MechanismTypeRSA_PKCS_PSS, blk)
	assert.True(t, Is(err, ErrInvalidParameter))
	assert.Equal(t, "mgf", Field(err))
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(nil)
	assert.True(t, Is(err, ErrInvalidParameter))

	p := must(NewRSAPkcsPSSParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, math.MaxUint32+1))
	_, err = NewEncoder(ckabi.ILP32, nil).Encode(p)
	assert.True(t, Is(err, ckabi.ErrULongOverflow))
	_, err = NewEncoder(ckabi.LP64, nil).Encode(p)
	assert.NoError(t, err)
}

func TestEncodeResolvesObjects(t *testing.T) {
	session := stubSession{
		5: {Session: 1, Handle: 5, Class: ck.ObjectClassPRIVATE_KEY, KeyType: ck.KeyTypeX9_42_DH},
		6: {Session: 1, Handle: 6, Class: ck.ObjectClassPUBLIC_KEY, KeyType: ck.KeyTypeX9_42_DH},
	}
	opts := func(priv *Object) X942DH2DeriveOptions {
		return X942DH2DeriveOptions{
			KDF:         ck.KeyDerivationFunctionNULL,
			PublicData:  h("bb"),
			PrivateData: priv,
			PublicData2: h("cc"),
		}
	}

	tests := []struct {
		name  string
		priv  *Object
		pub   *Object
		err   error
		field string
	}{
		{"resolves", session[5], session[6], nil, ""},
		{"other session", &Object{Session: 2, Handle: 5}, session[6], ErrUnresolvedReference, "privateData"},
		{"unknown handle", session[5], &Object{Session: 1, Handle: 77}, ErrUnresolvedReference, "publicKey"},
		{"zero handle", &Object{Session: 1}, session[6], ErrUnresolvedReference, "privateData"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := must(NewX942MQVDeriveParameters(opts(tc.priv), tc.pub))
			blk, err := NewEncoder(ckabi.LP64, session).Encode(p)
			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, Is(err, tc.err), "expected %v, got %v", tc.err, err)
				assert.Equal(t, tc.field, Field(err))
				return
			}
			require.NoError(t, err)

			decoded, err := NewDecoder(session).Decode(ck.MechanismTypeX9_42_MQV_DERIVE, blk)
			require.NoError(t, err)
			assert.True(t, p.Equal(decoded), "resolved objects carry class and key type")
			assert.Equal(t, ck.KeyTypeX9_42_DH, decoded.(*X942MQVDeriveParameters).PrivateData().KeyType)

			_, err = NewDecoder(stubSession{}).Decode(ck.MechanismTypeX9_42_MQV_DERIVE, blk)
			assert.True(t, Is(err, ErrObjectNotFound))
		})
	}
}

func TestEncodeResolverFailure(t *testing.T) {
	failing := ObjectResolverFunc(func(ObjectHandle) (*Object, error) {
		return nil, errors.New("session closed")
	})
	p := must(NewObjectHandleParameters(&Object{Handle: 3}))
	_, err := NewEncoder(ckabi.LP64, failing).Encode(p)
	require.Error(t, err)
	assert.True(t, Is(err, ErrUnresolvedReference))
	assert.Contains(t, err.Error(), "session closed")
	assert.Equal(t, "object", Field(err))
}

func TestECMQVHandlesAreOpaque(t *testing.T) {
	p := must(NewECMQVDeriveParameters(ECMQVDeriveOptions{
		KDF:         ck.KeyDerivationFunctionNULL,
		SharedData:  h("aa"),
		PublicData:  h("bb"),
		PrivateData: 1234,
		PublicData2: h("cc"),
		PublicKey:   5678,
	}))
	// the resolver knows nothing about these handles, and isn't asked
	_, err := NewEncoder(ckabi.LP64, stubSession{}).Encode(p)
	require.NoError(t, err)
}
