//go:build pkcs11

package p11

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume/flumetest"
	"github.com/miekg/pkcs11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	mechanisms := map[ck.MechanismType]uint{
		ck.MechanismTypeRSA_PKCS_OAEP:            pkcs11.CKM_RSA_PKCS_OAEP,
		ck.MechanismTypeRSA_PKCS_PSS:             pkcs11.CKM_RSA_PKCS_PSS,
		ck.MechanismTypeSHA_1:                    pkcs11.CKM_SHA_1,
		ck.MechanismTypeSHA256:                   pkcs11.CKM_SHA256,
		ck.MechanismTypeDES3_CBC:                 pkcs11.CKM_DES3_CBC,
		ck.MechanismTypeAES_CBC_PAD:              pkcs11.CKM_AES_CBC_PAD,
		ck.MechanismTypeAES_KEY_GEN:              pkcs11.CKM_AES_KEY_GEN,
		ck.MechanismTypeECDH1_DERIVE:             pkcs11.CKM_ECDH1_DERIVE,
		ck.MechanismTypeX9_42_MQV_DERIVE:         pkcs11.CKM_X9_42_MQV_DERIVE,
		ck.MechanismTypeKEA_KEY_DERIVE:           pkcs11.CKM_KEA_KEY_DERIVE,
		ck.MechanismTypePKCS5_PBKD2:              pkcs11.CKM_PKCS5_PBKD2,
		ck.MechanismTypeSSL3_KEY_AND_MAC_DERIVE:  pkcs11.CKM_SSL3_KEY_AND_MAC_DERIVE,
		ck.MechanismTypeTLS_MASTER_KEY_DERIVE:    pkcs11.CKM_TLS_MASTER_KEY_DERIVE,
		ck.MechanismTypeAES_CBC_ENCRYPT_DATA:     pkcs11.CKM_AES_CBC_ENCRYPT_DATA,
		ck.MechanismTypeCONCATENATE_BASE_AND_KEY: pkcs11.CKM_CONCATENATE_BASE_AND_KEY,
		ck.MechanismTypeVENDOR_DEFINED:           pkcs11.CKM_VENDOR_DEFINED,
	}
	for mt, v := range mechanisms {
		assert.EqualValues(t, v, mt, mt.String())
	}

	assert.EqualValues(t, pkcs11.CKG_MGF1_SHA256, ck.MaskGenerationFunctionMGF1_SHA256)
	assert.EqualValues(t, pkcs11.CKD_SHA1_KDF, ck.KeyDerivationFunctionSHA1_KDF)
	assert.EqualValues(t, pkcs11.CKZ_DATA_SPECIFIED, ck.OAEPSourceDATA_SPECIFIED)
	assert.EqualValues(t, pkcs11.CKO_SECRET_KEY, ck.ObjectClassSECRET_KEY)
	assert.EqualValues(t, pkcs11.CKK_AES, ck.KeyTypeAES)
}

// openTestSession opens a session on the module named by
// CKPARAMS_PKCS11_LIBRARY, like SoftHSM.
func openTestSession(t *testing.T) *Session {
	lib := os.Getenv("CKPARAMS_PKCS11_LIBRARY")
	if lib == "" {
		t.Skip("CKPARAMS_PKCS11_LIBRARY not set")
	}
	cfg := &Config{
		Library:    lib,
		TokenLabel: envOr("CKPARAMS_PKCS11_TOKEN_LABEL", "ckparams"),
		PIN:        envOr("CKPARAMS_PKCS11_PIN", "1234"),
	}
	m, err := Open(cfg)
	require.NoError(t, err)
	s, err := m.OpenSession()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
		assert.NoError(t, m.Close())
	})
	return s
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func aesKeyTemplate(size int) []*pkcs11.Attribute {
	return []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_CLASS, pkcs11.CKO_SECRET_KEY),
		pkcs11.NewAttribute(pkcs11.CKA_KEY_TYPE, pkcs11.CKK_AES),
		pkcs11.NewAttribute(pkcs11.CKA_VALUE_LEN, size),
		pkcs11.NewAttribute(pkcs11.CKA_TOKEN, false),
		pkcs11.NewAttribute(pkcs11.CKA_ENCRYPT, true),
		pkcs11.NewAttribute(pkcs11.CKA_DECRYPT, true),
		pkcs11.NewAttribute(pkcs11.CKA_DERIVE, true),
	}
}

func TestEncryptDecrypt(t *testing.T) {
	defer flumetest.Start(t)()
	s := openTestSession(t)
	ctx := context.Background()

	key, err := s.GenerateKey(ctx, &ckparams.Mechanism{Type: ck.MechanismTypeAES_KEY_GEN}, aesKeyTemplate(32))
	require.NoError(t, err)
	assert.Equal(t, ck.ObjectClassSECRET_KEY, key.Class)
	assert.Equal(t, ck.KeyTypeAES, key.KeyType)
	assert.Equal(t, s.Handle, key.Session)

	iv, err := ckparams.NewInitializationVectorParameters(bytes.Repeat([]byte{0x42}, 16))
	require.NoError(t, err)
	m, err := ckparams.NewMechanism(ck.MechanismTypeAES_CBC_PAD, iv)
	require.NoError(t, err)

	plaintext := []byte("parameters survive the trip")
	ciphertext, err := s.Encrypt(ctx, m, key, plaintext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, 32)

	decrypted, err := s.Decrypt(ctx, m, key, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDeriveAESCBCEncryptData(t *testing.T) {
	defer flumetest.Start(t)()
	s := openTestSession(t)
	ctx := context.Background()

	base, err := s.GenerateKey(ctx, &ckparams.Mechanism{Type: ck.MechanismTypeAES_KEY_GEN}, aesKeyTemplate(16))
	require.NoError(t, err)

	p, err := ckparams.NewAESCBCEncryptDataParameters(make([]byte, 16), bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	m, err := ckparams.NewMechanism(ck.MechanismTypeAES_CBC_ENCRYPT_DATA, p)
	require.NoError(t, err)

	derived, err := s.DeriveKey(ctx, m, base, aesKeyTemplate(32))
	require.NoError(t, err)
	assert.Equal(t, ck.KeyTypeAES, derived.KeyType)

	// an object from "another session" is caught before the module sees it
	stale := *base
	stale.Session++
	p2, err := ckparams.NewObjectHandleParameters(&stale)
	require.NoError(t, err)
	m2, err := ckparams.NewMechanism(ck.MechanismTypeCONCATENATE_BASE_AND_KEY, p2)
	require.NoError(t, err)
	_, err = s.DeriveKey(ctx, m2, base, aesKeyTemplate(32))
	assert.True(t, ckparams.Is(err, ckparams.ErrUnresolvedReference))
}

func TestPin(t *testing.T) {
	p, err := ckparams.NewPBEParameters(make([]byte, 8), []byte("pw"), []byte("salt"), 1)
	require.NoError(t, err)
	blk, err := ckparams.NewEncoder(ckabi.NativeABI(), nil).Encode(p)
	require.NoError(t, err)

	pinned, err := pin(blk)
	require.NoError(t, err)
	defer pinned.release()

	// the token writes the IV through the pointer
	offsets, _ := blk.Layout()
	copy(pinned.image[offsets[1]:], "8bytesiv")
	require.NoError(t, pinned.unpack())
	require.NoError(t, ckparams.NewDecoder(nil).DecodeOutput(p, blk))
	assert.Equal(t, []byte("8bytesiv"), p.IV())
}
