package ckparams

import (
	"errors"
	"testing"

	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession resolves handles from a fixed set of objects.
type stubSession map[ObjectHandle]*Object

func (s stubSession) ResolveObject(h ObjectHandle) (*Object, error) {
	o, ok := s[h]
	if !ok {
		return nil, errors.New("no such object")
	}
	return o.clone(), nil
}

func newStubSession() stubSession {
	s := stubSession{}
	for i, kt := range []ck.KeyType{ck.KeyTypeGENERIC_SECRET, ck.KeyTypeGENERIC_SECRET, ck.KeyTypeDES3, ck.KeyTypeDES3} {
		h := ObjectHandle(100 + i)
		s[h] = &Object{Session: 1, Handle: h, Class: ck.ObjectClassSECRET_KEY, KeyType: kt}
	}
	return s
}

func TestSSL3KeyMaterialOutResolve(t *testing.T) {
	session := newStubSession()
	out := NewSSL3KeyMaterialOutParameters([]byte{}, []byte{})

	err := out.Resolve(SSL3KeyMatOut{
		ClientMacSecret: 100,
		ServerMacSecret: 101,
		ClientKey:       102,
		ServerKey:       103,
		IVClient:        h("0102030405060708"),
		IVServer:        h("1112131415161718"),
	}, session)
	require.NoError(t, err)

	objs := []*Object{out.ClientMacSecret(), out.ServerMacSecret(), out.ClientKey(), out.ServerKey()}
	for i, o := range objs {
		require.NotNil(t, o)
		assert.Equal(t, session[ObjectHandle(100+i)], o)
		for j := range objs[:i] {
			assert.NotEqual(t, objs[j], o, "objects must be distinct")
		}
	}
	assert.Equal(t, ck.KeyTypeDES3, out.ClientKey().KeyType)
	assert.Equal(t, h("0102030405060708"), out.IVClient())
	assert.Equal(t, h("1112131415161718"), out.IVServer())
}

func TestSSL3KeyMaterialOutResolveNotFound(t *testing.T) {
	out := NewSSL3KeyMaterialOutParameters(nil, nil)
	native := SSL3KeyMatOut{ClientMacSecret: 100, ServerMacSecret: 101, ClientKey: 102, ServerKey: 999}

	err := out.Resolve(native, newStubSession())
	require.Error(t, err)
	assert.True(t, Is(err, ErrObjectNotFound))
	assert.Equal(t, "serverKey", Field(err))
	assert.Nil(t, out.ClientMacSecret(), "nothing is resolved unless everything is")

	native.ServerKey = 0
	err = out.Resolve(native, newStubSession())
	assert.True(t, Is(err, ErrObjectNotFound))
}

func TestSSL3KeyAndMACDeriveOutput(t *testing.T) {
	tests := []struct {
		name   string
		abi    ckabi.ABI
		ivSize int
	}{
		{"lp64 empty ivs", ckabi.LP64, 0},
		{"lp64", ckabi.LP64, 8},
		{"ilp32", ckabi.ILP32, 8},
		{"llp64", ckabi.LLP64, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			session := newStubSession()
			out := NewSSL3KeyMaterialOutParameters(make([]byte, tc.ivSize), make([]byte, tc.ivSize))
			p := must(NewSSL3KeyMaterialParameters(SSL3KeyMaterialOptions{
				MACSizeInBits:       160,
				KeySizeInBits:       192,
				IVSizeInBits:        uint64(tc.ivSize * 8),
				RandomInfo:          randomData(),
				ReturnedKeyMaterial: out,
			}))
			blk, err := NewEncoder(tc.abi, session).Encode(p)
			require.NoError(t, err)

			ivClient := make([]byte, tc.ivSize)
			ivServer := make([]byte, tc.ivSize)
			for i := range ivClient {
				ivClient[i] = byte(i + 1)
				ivServer[i] = byte(0x80 + i)
			}

			// what the token does during C_DeriveKey
			image, err := blk.Pack(0x20000)
			require.NoError(t, err)
			err = StoreSSL3KeyMatOut(blk, SSL3KeyMatOut{
				ClientMacSecret: 100, ServerMacSecret: 101, ClientKey: 102, ServerKey: 103,
				IVClient: ivClient, IVServer: ivServer,
			})
			require.NoError(t, err)
			image2, err := blk.Pack(0x20000)
			require.NoError(t, err)
			assert.Equal(t, len(image), len(image2))
			require.NoError(t, blk.Unpack(image2))

			require.NoError(t, NewDecoder(session).DecodeOutput(p, blk))
			assert.Equal(t, session[100], out.ClientMacSecret())
			assert.Equal(t, session[101], out.ServerMacSecret())
			assert.Equal(t, session[102], out.ClientKey())
			assert.Equal(t, session[103], out.ServerKey())
			assert.Equal(t, ivClient, out.IVClient())
			assert.Equal(t, ivServer, out.IVServer())
		})
	}
}

func TestSSL3KeyAndMACDeriveOutputNotFound(t *testing.T) {
	out := NewSSL3KeyMaterialOutParameters([]byte{}, []byte{})
	p := must(NewSSL3KeyMaterialParameters(SSL3KeyMaterialOptions{RandomInfo: randomData(), ReturnedKeyMaterial: out}))
	blk, err := NewEncoder(ckabi.LP64, nil).Encode(p)
	require.NoError(t, err)
	require.NoError(t, StoreSSL3KeyMatOut(blk, SSL3KeyMatOut{ClientMacSecret: 100, ServerMacSecret: 101, ClientKey: 102, ServerKey: 7}))

	err = NewDecoder(newStubSession()).DecodeOutput(p, blk)
	require.Error(t, err)
	assert.True(t, Is(err, ErrObjectNotFound))
}

func TestStoreSSL3KeyMatOutIVSize(t *testing.T) {
	out := NewSSL3KeyMaterialOutParameters(make([]byte, 8), make([]byte, 8))
	p := must(NewSSL3KeyMaterialParameters(SSL3KeyMaterialOptions{IVSizeInBits: 64, RandomInfo: randomData(), ReturnedKeyMaterial: out}))
	blk, err := NewEncoder(ckabi.LP64, nil).Encode(p)
	require.NoError(t, err)

	err = StoreSSL3KeyMatOut(blk, SSL3KeyMatOut{ClientMacSecret: 1, ServerMacSecret: 2, ClientKey: 3, ServerKey: 4, IVClient: make([]byte, 16)})
	require.Error(t, err)
	assert.True(t, Is(err, ckabi.ErrInvalidSegment))
}

func TestSSL3MasterKeyDeriveVersion(t *testing.T) {
	p := must(NewSSL3MasterKeyDeriveParameters(randomData(), &Version{}))
	blk, err := NewEncoder(ckabi.LP64, nil).Encode(p)
	require.NoError(t, err)

	require.NoError(t, StoreVersion(blk, Version{Major: 3, Minor: 3}))
	require.NoError(t, NewDecoder(nil).DecodeOutput(p, blk))
	assert.Equal(t, Version{Major: 3, Minor: 3}, p.Version())
	assert.Equal(t, "3.3", p.Version().String())
	assert.Equal(t, h("c1c2"), p.RandomInfo().ClientRandom())
}

func TestPBEOutputIV(t *testing.T) {
	p := must(NewPBEParameters(make([]byte, PBEInitVectorSize), []byte("pw"), []byte("salt"), 1))
	blk, err := NewEncoder(ckabi.LP64, nil).Encode(p)
	require.NoError(t, err)

	require.NoError(t, blk.ReplaceSegment(1, h("0102030405060708")))
	require.NoError(t, NewDecoder(nil).DecodeOutput(p, blk))
	assert.Equal(t, h("0102030405060708"), p.IV())
}

func TestDecodeOutputNoOutput(t *testing.T) {
	p := NewMACGeneralParameters(8)
	blk, err := Encode(p)
	require.NoError(t, err)
	require.NoError(t, NewDecoder(nil).DecodeOutput(p, blk))
}
