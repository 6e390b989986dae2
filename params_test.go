package ckparams

import (
	"encoding/hex"
	"testing"

	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var h = ckabi.Hex2bytes

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func segmentsHex(blk *ckabi.Block) []string {
	var s []string
	for _, seg := range blk.Segments[1:] {
		s = append(s, hex.EncodeToString(seg.Data))
	}
	return s
}

func randomData() *SSL3RandomData {
	return must(NewSSL3RandomData(h("c1c2"), h("d1d2")))
}

var knownGoodEncodings = []struct {
	name     string
	abi      ckabi.ABI
	mech     ck.MechanismType
	p        Parameters
	root     string
	segments []string
	pointers []ckabi.Pointer
}{
	{
		name:     "des cbc encrypt data",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeDES_CBC_ENCRYPT_DATA,
		p:        must(NewDESCBCEncryptDataParameters(h("0102030405060708"), h("a1a2a3a4a5a6a7a8"))),
		root:     "0102030405060708 | 0000000000000000 | 0800000000000000",
		segments: []string{"a1a2a3a4a5a6a7a8"},
		pointers: []ckabi.Pointer{{Offset: 8, Target: 1}},
	},
	{
		name:     "aes cbc encrypt data",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeAES_CBC_ENCRYPT_DATA,
		p:        must(NewAESCBCEncryptDataParameters(h("000102030405060708090a0b0c0d0e0f"), h("ffffffffffffffffffffffffffffffff"))),
		root:     "000102030405060708090a0b0c0d0e0f | 0000000000000000 | 1000000000000000",
		segments: []string{"ffffffffffffffffffffffffffffffff"},
		pointers: []ckabi.Pointer{{Offset: 16, Target: 1}},
	},
	{
		name: "aes cbc iv",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeAES_CBC_PAD,
		p:    must(NewInitializationVectorParameters(h("000102030405060708090a0b0c0d0e0f"))),
		root: "000102030405060708090a0b0c0d0e0f",
	},
	{
		name: "dh pkcs derive",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeDH_PKCS_DERIVE,
		p:    must(NewDHPkcsDeriveParameters(h("0102"))),
		root: "0102",
	},
	{
		name:     "ecdh1 derive",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeECDH1_DERIVE,
		p:        must(NewECDH1DeriveParameters(ck.KeyDerivationFunctionNULL, nil, h("04aabb"))),
		root:     "0100000000000000 | 0000000000000000 0000000000000000 | 0300000000000000 0000000000000000",
		segments: []string{"04aabb"},
		pointers: []ckabi.Pointer{{Offset: 32, Target: 1}},
	},
	{
		name:     "ecdh1 derive ilp32",
		abi:      ckabi.ILP32,
		mech:     ck.MechanismTypeECDH1_COFACTOR_DERIVE,
		p:        must(NewECDH1DeriveParameters(ck.KeyDerivationFunctionSHA1_KDF, h("ee"), h("04aabb"))),
		root:     "02000000 | 01000000 00000000 | 03000000 00000000",
		segments: []string{"ee", "04aabb"},
		pointers: []ckabi.Pointer{{Offset: 8, Target: 1}, {Offset: 16, Target: 2}},
	},
	{
		name: "ecmqv derive",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeECMQV_DERIVE,
		p: must(NewECMQVDeriveParameters(ECMQVDeriveOptions{
			KDF:               ck.KeyDerivationFunctionNULL,
			SharedData:        h("aa"),
			PublicData:        h("bb"),
			PrivateDataLength: 32,
			PrivateData:       7,
			PublicData2:       h("cc"),
			PublicKey:         9,
		})),
		root: "0100000000000000 | 0100000000000000 0000000000000000 | 0100000000000000 0000000000000000 |" +
			"2000000000000000 | 0700000000000000 | 0100000000000000 0000000000000000 | 0900000000000000",
		segments: []string{"aa", "bb", "cc"},
		pointers: []ckabi.Pointer{{Offset: 16, Target: 1}, {Offset: 32, Target: 2}, {Offset: 64, Target: 3}},
	},
	{
		name:     "x9.42 dh1 derive",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeX9_42_DH_DERIVE,
		p:        must(NewX942DH1DeriveParameters(ck.KeyDerivationFunctionSHA1_KDF_ASN1, h("0a0b"), h("bb"))),
		root:     "0300000000000000 | 0200000000000000 0000000000000000 | 0100000000000000 0000000000000000",
		segments: []string{"0a0b", "bb"},
		pointers: []ckabi.Pointer{{Offset: 16, Target: 1}, {Offset: 32, Target: 2}},
	},
	{
		name: "x9.42 dh2 derive",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeX9_42_DH_HYBRID_DERIVE,
		p: must(NewX942DH2DeriveParameters(X942DH2DeriveOptions{
			KDF:               ck.KeyDerivationFunctionNULL,
			PublicData:        h("bb"),
			PrivateDataLength: 16,
			PrivateData:       &Object{Handle: 5},
			PublicData2:       h("cc"),
		})),
		root: "0100000000000000 | 0000000000000000 0000000000000000 | 0100000000000000 0000000000000000 |" +
			"1000000000000000 | 0500000000000000 | 0100000000000000 0000000000000000",
		segments: []string{"bb", "cc"},
		pointers: []ckabi.Pointer{{Offset: 32, Target: 1}, {Offset: 64, Target: 2}},
	},
	{
		name: "x9.42 mqv derive",
		abi:  ckabi.ILP32,
		mech: ck.MechanismTypeX9_42_MQV_DERIVE,
		p: must(NewX942MQVDeriveParameters(X942DH2DeriveOptions{
			KDF:               ck.KeyDerivationFunctionNULL,
			OtherInfo:         h("01"),
			PublicData:        h("bb"),
			PrivateDataLength: 16,
			PrivateData:       &Object{Handle: 5},
			PublicData2:       h("cc"),
		}, &Object{Handle: 6})),
		root:     "01000000 | 01000000 00000000 | 01000000 00000000 | 10000000 | 05000000 | 01000000 00000000 | 06000000",
		segments: []string{"01", "bb", "cc"},
		pointers: []ckabi.Pointer{{Offset: 8, Target: 1}, {Offset: 16, Target: 2}, {Offset: 32, Target: 3}},
	},
	{
		name:     "kea derive",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeKEA_KEY_DERIVE,
		p:        must(NewKEADeriveParameters(true, h("a1a2"), h("b1b2"), h("cc"))),
		root:     "01 00000000000000 | 0200000000000000 | 0000000000000000 | 0000000000000000 | 0100000000000000 0000000000000000",
		segments: []string{"a1a2", "b1b2", "cc"},
		pointers: []ckabi.Pointer{{Offset: 16, Target: 1}, {Offset: 24, Target: 2}, {Offset: 40, Target: 3}},
	},
	{
		name:     "kea derive packed",
		abi:      ckabi.LLP64,
		mech:     ck.MechanismTypeKEA_KEY_DERIVE,
		p:        must(NewKEADeriveParameters(false, h("a1a2"), h("b1b2"), h("cc"))),
		root:     "00 | 02000000 | 0000000000000000 | 0000000000000000 | 01000000 0000000000000000",
		segments: []string{"a1a2", "b1b2", "cc"},
		pointers: []ckabi.Pointer{{Offset: 5, Target: 1}, {Offset: 13, Target: 2}, {Offset: 25, Target: 3}},
	},
	{
		name: "pkcs5 pbkd2",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypePKCS5_PBKD2,
		p: must(NewPKCS5PBKD2Parameters(PKCS5PBKD2Options{
			SaltSource:     ck.SaltSourceSALT_SPECIFIED,
			SaltSourceData: h("5a5a"),
			Iterations:     1000,
			PRF:            ck.PseudoRandomFunctionPKCS5_PBKD2_HMAC_SHA1,
			PRFData:        []byte{},
			Password:       []byte("pw"),
		})),
		root: "0100000000000000 | 0000000000000000 0200000000000000 | e803000000000000 | 0100000000000000 |" +
			"0000000000000000 0000000000000000 | 0000000000000000 | 0000000000000000",
		segments: []string{"5a5a", "", "7077", "0200000000000000"},
		pointers: []ckabi.Pointer{{Offset: 8, Target: 1}, {Offset: 40, Target: 2}, {Offset: 56, Target: 3}, {Offset: 64, Target: 4}},
	},
	{
		name:     "pbe",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypePBE_SHA1_DES3_EDE_CBC,
		p:        must(NewPBEParameters(make([]byte, 8), []byte("pw"), h("5a"), 2048)),
		root:     "0000000000000000 | 0000000000000000 0200000000000000 | 0000000000000000 0100000000000000 | 0008000000000000",
		segments: []string{"0000000000000000", "7077", "5a"},
		pointers: []ckabi.Pointer{{Offset: 0, Target: 1}, {Offset: 8, Target: 2}, {Offset: 24, Target: 3}},
	},
	{
		name:     "rsa oaep",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeRSA_PKCS_OAEP,
		p:        must(NewRSAPkcsOAEPParameters(ck.MechanismTypeSHA256, ck.MaskGenerationFunctionMGF1_SHA256, ck.OAEPSourceDATA_SPECIFIED, []byte("abc"))),
		root:     "5002000000000000 | 0200000000000000 | 0100000000000000 | 0000000000000000 0300000000000000",
		segments: []string{"616263"},
		pointers: []ckabi.Pointer{{Offset: 24, Target: 1}},
	},
	{
		name: "rsa oaep empty source win32",
		abi:  ckabi.Win32,
		mech: ck.MechanismTypeRSA_PKCS_OAEP,
		p:    must(NewRSAPkcsOAEPParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, ck.OAEPSourceEMPTY, nil)),
		root: "20020000 | 01000000 | 00000000 | 00000000 00000000",
	},
	{
		name: "rsa pss",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeSHA256_RSA_PKCS_PSS,
		p:    must(NewRSAPkcsPSSParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, 20)),
		root: "2002000000000000 | 0100000000000000 | 1400000000000000",
	},
	{
		name: "rc2",
		abi:  ckabi.ILP32,
		mech: ck.MechanismTypeRC2_ECB,
		p:    must(NewRC2Parameters(128)),
		root: "80000000",
	},
	{
		name: "rc2 cbc",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeRC2_CBC_PAD,
		p:    must(NewRC2CBCParameters(128, h("0102030405060708"))),
		root: "8000000000000000 | 0102030405060708",
	},
	{
		name: "rc2 mac general",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeRC2_MAC_GENERAL,
		p:    must(NewRC2MACGeneralParameters(64, 4)),
		root: "4000000000000000 | 0400000000000000",
	},
	{
		name: "rc5",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeRC5_ECB,
		p:    NewRC5Parameters(4, 12),
		root: "0400000000000000 | 0c00000000000000",
	},
	{
		name:     "rc5 cbc",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeRC5_CBC,
		p:        must(NewRC5CBCParameters(4, 12, h("0102030405060708"))),
		root:     "0400000000000000 | 0c00000000000000 | 0000000000000000 0800000000000000",
		segments: []string{"0102030405060708"},
		pointers: []ckabi.Pointer{{Offset: 16, Target: 1}},
	},
	{
		name: "rc5 mac general",
		abi:  ckabi.ILP32,
		mech: ck.MechanismTypeRC5_MAC_GENERAL,
		p:    NewRC5MACGeneralParameters(4, 12, 8),
		root: "04000000 | 0c000000 | 08000000",
	},
	{
		name: "mac general",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeSHA256_HMAC_GENERAL,
		p:    NewMACGeneralParameters(16),
		root: "1000000000000000",
	},
	{
		name:     "key wrap set oaep",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeKEY_WRAP_SET_OAEP,
		p:        NewKeyWrapSetOAEPParameters(5, h("aabb")),
		root:     "05 00000000000000 | 0000000000000000 | 0200000000000000",
		segments: []string{"aabb"},
		pointers: []ckabi.Pointer{{Offset: 8, Target: 1}},
	},
	{
		name: "skipjack private wrap",
		abi:  ckabi.ILP32,
		mech: ck.MechanismTypeSKIPJACK_PRIVATE_WRAP,
		p: must(NewSkipjackPrivateWrapParameters(SkipjackPrivateWrapOptions{
			Password:   h("01"),
			PublicData: h("0202"),
			RandomA:    h("03"),
			PrimeP:     h("04040404"),
			BaseG:      h("05050505"),
			SubprimeQ:  h("0606"),
		})),
		root: "01000000 00000000 | 02000000 00000000 | 04000000 | 02000000 | 01000000 00000000 |" +
			"00000000 | 00000000 | 00000000",
		segments: []string{"01", "0202", "03", "04040404", "05050505", "0606"},
		pointers: []ckabi.Pointer{
			{Offset: 4, Target: 1}, {Offset: 12, Target: 2}, {Offset: 28, Target: 3},
			{Offset: 32, Target: 4}, {Offset: 36, Target: 5}, {Offset: 40, Target: 6},
		},
	},
	{
		name: "skipjack relayx",
		abi:  ckabi.ILP32,
		mech: ck.MechanismTypeSKIPJACK_RELAYX,
		p: must(NewSkipjackRelayXParameters(SkipjackRelayXOptions{
			OldWrappedX:   h("01"),
			OldPassword:   h("02"),
			OldPublicData: h("03"),
			OldRandomA:    h("04"),
			NewPassword:   h("05"),
			NewPublicData: h("06"),
			NewRandomA:    h("0707"),
		})),
		root: "01000000 00000000 | 01000000 00000000 | 01000000 00000000 | 01000000 00000000 |" +
			"01000000 00000000 | 01000000 00000000 | 02000000 00000000",
		segments: []string{"01", "02", "03", "04", "05", "06", "0707"},
		pointers: []ckabi.Pointer{
			{Offset: 4, Target: 1}, {Offset: 12, Target: 2}, {Offset: 20, Target: 3}, {Offset: 28, Target: 4},
			{Offset: 36, Target: 5}, {Offset: 44, Target: 6}, {Offset: 52, Target: 7},
		},
	},
	{
		name:     "ssl3 master key derive",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeTLS_MASTER_KEY_DERIVE,
		p:        must(NewSSL3MasterKeyDeriveParameters(randomData(), &Version{Major: 3, Minor: 1})),
		root:     "0000000000000000 0200000000000000 0000000000000000 0200000000000000 | 0000000000000000",
		segments: []string{"c1c2", "d1d2", "0301"},
		pointers: []ckabi.Pointer{{Offset: 0, Target: 1}, {Offset: 16, Target: 2}, {Offset: 32, Target: 3}},
	},
	{
		name: "ssl3 key material",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeSSL3_KEY_AND_MAC_DERIVE,
		p: must(NewSSL3KeyMaterialParameters(SSL3KeyMaterialOptions{
			MACSizeInBits:       160,
			KeySizeInBits:       128,
			IVSizeInBits:        64,
			RandomInfo:          randomData(),
			ReturnedKeyMaterial: NewSSL3KeyMaterialOutParameters(make([]byte, 8), make([]byte, 8)),
		})),
		root: "a000000000000000 | 8000000000000000 | 4000000000000000 | 00 00000000000000 |" +
			"0000000000000000 0200000000000000 0000000000000000 0200000000000000 | 0000000000000000",
		segments: []string{
			"c1c2",
			"d1d2",
			"0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000",
			"0000000000000000",
			"0000000000000000",
		},
		pointers: []ckabi.Pointer{{Offset: 32, Target: 1}, {Offset: 48, Target: 2}, {Offset: 64, Target: 3}},
	},
	{
		name: "object handle",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeCONCATENATE_BASE_AND_KEY,
		p:    must(NewObjectHandleParameters(&Object{Handle: 42})),
		root: "2a00000000000000",
	},
	{
		name:     "key derivation string data",
		abi:      ckabi.LP64,
		mech:     ck.MechanismTypeXOR_BASE_AND_DATA,
		p:        must(NewKeyDerivationStringDataParameters(h("ff00ff"))),
		root:     "0000000000000000 | 0300000000000000",
		segments: []string{"ff00ff"},
		pointers: []ckabi.Pointer{{Offset: 0, Target: 1}},
	},
	{
		name: "extract",
		abi:  ckabi.LP64,
		mech: ck.MechanismTypeEXTRACT_KEY_FROM_KEY,
		p:    NewExtractParameters(12),
		root: "0c00000000000000",
	},
}

func TestEncode(t *testing.T) {
	for _, tc := range knownGoodEncodings {
		t.Run(tc.name, func(t *testing.T) {
			blk, err := NewEncoder(tc.abi, nil).Encode(tc.p)
			require.NoError(t, err)

			assert.Equal(t, h(tc.root), blk.Root())
			var expSegs []string
			for _, s := range tc.segments {
				expSegs = append(expSegs, hex.EncodeToString(h(s)))
			}
			assert.Equal(t, expSegs, segmentsHex(blk))
			assert.Equal(t, tc.pointers, blk.Segments[0].Pointers)
		})
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range knownGoodEncodings {
		t.Run(tc.name, func(t *testing.T) {
			blk, err := NewEncoder(tc.abi, nil).Encode(tc.p)
			require.NoError(t, err)

			p, err := Decode(tc.mech, blk)
			require.NoError(t, err)
			assert.True(t, tc.p.Equal(p), "decoded parameters should equal the encoded ones")
			assert.Equal(t, tc.p.Hash(), p.Hash())

			// decoding must also survive a trip through native memory
			image, err := blk.Pack(0x10000)
			require.NoError(t, err)
			require.NoError(t, blk.Unpack(image))
			p, err = Decode(tc.mech, blk)
			require.NoError(t, err)
			assert.True(t, tc.p.Equal(p))
		})
	}
}

func TestEncodeMechanism(t *testing.T) {
	for _, tc := range knownGoodEncodings {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMechanism(tc.mech, tc.p)
			require.NoError(t, err)

			mt, blk, err := NewEncoder(tc.abi, nil).EncodeMechanism(m)
			require.NoError(t, err)
			assert.Equal(t, tc.mech, mt)
			assert.Equal(t, h(tc.root), blk.Root())
		})
	}
}

func TestDESCBCEncryptDataScenario(t *testing.T) {
	iv := make([]byte, 8)
	data := make([]byte, 24)

	p, err := NewDESCBCEncryptDataParameters(iv, data)
	require.NoError(t, err)

	blk, err := Encode(p)
	require.NoError(t, err)

	d := ckabi.NewDecoder(blk)
	assert.Equal(t, iv, d.DecodeFixed(DESBlockSize))
	assert.Equal(t, data, d.DecodePtrLen())
	require.NoError(t, d.Err())
}

func TestRSAPkcsOAEPSourceDataVerbatim(t *testing.T) {
	sourceData := []byte{0, 1, 2, 0xfe, 0xff, 0}
	for _, source := range []ck.OAEPSource{ck.OAEPSourceEMPTY, ck.OAEPSourceDATA_SPECIFIED} {
		t.Run(source.String(), func(t *testing.T) {
			p, err := NewRSAPkcsOAEPParameters(ck.MechanismTypeSHA512, ck.MaskGenerationFunctionMGF1_SHA512, source, sourceData)
			require.NoError(t, err)
			blk, err := NewEncoder(ckabi.LP64, nil).Encode(p)
			require.NoError(t, err)
			require.Len(t, blk.Segments, 2)
			assert.Equal(t, sourceData, blk.Segments[1].Data)
		})
	}
}

func TestPKCS5PBKD2RoundTrip(t *testing.T) {
	opts := PKCS5PBKD2Options{
		SaltSource:     ck.SaltSourceSALT_SPECIFIED,
		SaltSourceData: []byte("salt"),
		Iterations:     4096,
		PRF:            ck.PseudoRandomFunctionPKCS5_PBKD2_HMAC_SHA1,
		PRFData:        []byte("prf"),
	}
	for _, abi := range []ckabi.ABI{ckabi.LP64, ckabi.ILP32, ckabi.LLP64, ckabi.Win32} {
		t.Run(abi.Name, func(t *testing.T) {
			p, err := NewPKCS5PBKD2Parameters(opts)
			require.NoError(t, err)
			blk, err := NewEncoder(abi, nil).Encode(p)
			require.NoError(t, err)

			decoded, err := NewDecoder(nil).Decode(ck.MechanismTypePKCS5_PBKD2, blk)
			require.NoError(t, err)
			d := decoded.(*PKCS5PBKD2Parameters)
			assert.Equal(t, opts.SaltSource, d.SaltSource())
			assert.Equal(t, opts.SaltSourceData, d.SaltSourceData())
			assert.Equal(t, opts.Iterations, d.Iterations())
			assert.Equal(t, opts.PRF, d.PRF())
			assert.Equal(t, opts.PRFData, d.PRFData())
			assert.Nil(t, d.Password())
			assert.True(t, p.Equal(d))
		})
	}
}

func TestEncodeNativeABI(t *testing.T) {
	p := must(NewRSAPkcsPSSParameters(ck.MechanismTypeSHA256, ck.MaskGenerationFunctionMGF1_SHA256, 32))
	blk, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, "native", blk.ABI.Name)
	assert.Len(t, blk.Root(), 3*blk.ABI.ULongSize)
}
