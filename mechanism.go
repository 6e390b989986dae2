package ckparams

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/ansel1/merry"
	"github.com/cespare/xxhash/v2"
	"github.com/gemalto/ckparams/ck"
)

// Mechanism is a CK_MECHANISM: a mechanism type and its parameters, if it
// takes any.
type Mechanism struct {
	Type       ck.MechanismType
	Parameters Parameters
}

// NewMechanism pairs a mechanism type with parameters, checking that they are
// the kind of parameters the mechanism takes.  Pass nil for mechanisms without
// parameters.  The mechanism takes ownership of p.
func NewMechanism(t ck.MechanismType, p Parameters) (*Mechanism, error) {
	if err := checkMechanism(t, p); err != nil {
		return nil, err
	}
	return &Mechanism{Type: t, Parameters: p}, nil
}

func (m *Mechanism) Equal(other *Mechanism) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Type != other.Type {
		return false
	}
	if m.Parameters == nil || other.Parameters == nil {
		return m.Parameters == nil && other.Parameters == nil
	}
	return m.Parameters.Equal(other.Parameters)
}

func (m *Mechanism) Hash() uint64 {
	h := hasher{d: xxhash.New()}
	h.ulong(uint64(m.Type))
	if m.Parameters != nil {
		h.ulong(m.Parameters.Hash())
	}
	return h.d.Sum64()
}

func (m *Mechanism) Clone() *Mechanism {
	c := &Mechanism{Type: m.Type}
	if m.Parameters != nil {
		c.Parameters = m.Parameters.Clone()
	}
	return c
}

func (m *Mechanism) Wipe() {
	if m.Parameters != nil {
		m.Parameters.Wipe()
	}
}

func (m *Mechanism) String() string {
	if m.Parameters == nil {
		return m.Type.String()
	}
	return fmt.Sprintf("%v(%T)", m.Type, m.Parameters)
}

var mechanismParameters = map[ck.MechanismType]func() Parameters{}

func register(f func() Parameters, types ...ck.MechanismType) {
	for _, t := range types {
		mechanismParameters[t] = f
	}
}

func init() {
	register(func() Parameters { return &DESCBCEncryptDataParameters{} },
		ck.MechanismTypeDES_CBC_ENCRYPT_DATA, ck.MechanismTypeDES3_CBC_ENCRYPT_DATA)
	register(func() Parameters { return &AESCBCEncryptDataParameters{} },
		ck.MechanismTypeAES_CBC_ENCRYPT_DATA)
	register(func() Parameters { return &InitializationVectorParameters{} },
		ck.MechanismTypeDES_CBC, ck.MechanismTypeDES_CBC_PAD,
		ck.MechanismTypeDES3_CBC, ck.MechanismTypeDES3_CBC_PAD,
		ck.MechanismTypeAES_CBC, ck.MechanismTypeAES_CBC_PAD,
		ck.MechanismTypeSKIPJACK_CBC64, ck.MechanismTypeSKIPJACK_OFB64,
		ck.MechanismTypeSKIPJACK_CFB64, ck.MechanismTypeSKIPJACK_CFB32,
		ck.MechanismTypeSKIPJACK_CFB16, ck.MechanismTypeSKIPJACK_CFB8)

	register(func() Parameters { return &DHPkcsDeriveParameters{} },
		ck.MechanismTypeDH_PKCS_DERIVE)
	register(func() Parameters { return &ECDH1DeriveParameters{} },
		ck.MechanismTypeECDH1_DERIVE, ck.MechanismTypeECDH1_COFACTOR_DERIVE)
	register(func() Parameters { return &ECMQVDeriveParameters{} },
		ck.MechanismTypeECMQV_DERIVE)
	register(func() Parameters { return &X942DH1DeriveParameters{} },
		ck.MechanismTypeX9_42_DH_DERIVE)
	register(func() Parameters { return &X942DH2DeriveParameters{} },
		ck.MechanismTypeX9_42_DH_HYBRID_DERIVE)
	register(func() Parameters { return &X942MQVDeriveParameters{} },
		ck.MechanismTypeX9_42_MQV_DERIVE)
	register(func() Parameters { return &KEADeriveParameters{} },
		ck.MechanismTypeKEA_KEY_DERIVE)

	register(func() Parameters { return &PKCS5PBKD2Parameters{} },
		ck.MechanismTypePKCS5_PBKD2)
	register(func() Parameters { return &PBEParameters{} },
		ck.MechanismTypePBE_MD2_DES_CBC, ck.MechanismTypePBE_MD5_DES_CBC,
		ck.MechanismTypePBE_MD5_CAST_CBC, ck.MechanismTypePBE_MD5_CAST3_CBC,
		ck.MechanismTypePBE_MD5_CAST128_CBC, ck.MechanismTypePBE_SHA1_CAST128_CBC,
		ck.MechanismTypePBE_SHA1_RC4_128, ck.MechanismTypePBE_SHA1_RC4_40,
		ck.MechanismTypePBE_SHA1_DES3_EDE_CBC, ck.MechanismTypePBE_SHA1_DES2_EDE_CBC,
		ck.MechanismTypePBE_SHA1_RC2_128_CBC, ck.MechanismTypePBE_SHA1_RC2_40_CBC,
		ck.MechanismTypePBA_SHA1_WITH_SHA1_HMAC)

	register(func() Parameters { return &RSAPkcsOAEPParameters{} },
		ck.MechanismTypeRSA_PKCS_OAEP)
	register(func() Parameters { return &RSAPkcsPSSParameters{} },
		ck.MechanismTypeRSA_PKCS_PSS, ck.MechanismTypeSHA1_RSA_PKCS_PSS,
		ck.MechanismTypeSHA224_RSA_PKCS_PSS, ck.MechanismTypeSHA256_RSA_PKCS_PSS,
		ck.MechanismTypeSHA384_RSA_PKCS_PSS, ck.MechanismTypeSHA512_RSA_PKCS_PSS)

	register(func() Parameters { return &RC2Parameters{} },
		ck.MechanismTypeRC2_ECB, ck.MechanismTypeRC2_MAC)
	register(func() Parameters { return &RC2CBCParameters{} },
		ck.MechanismTypeRC2_CBC, ck.MechanismTypeRC2_CBC_PAD)
	register(func() Parameters { return &RC2MACGeneralParameters{} },
		ck.MechanismTypeRC2_MAC_GENERAL)
	register(func() Parameters { return &RC5Parameters{} },
		ck.MechanismTypeRC5_ECB, ck.MechanismTypeRC5_MAC)
	register(func() Parameters { return &RC5CBCParameters{} },
		ck.MechanismTypeRC5_CBC, ck.MechanismTypeRC5_CBC_PAD)
	register(func() Parameters { return &RC5MACGeneralParameters{} },
		ck.MechanismTypeRC5_MAC_GENERAL)
	register(func() Parameters { return &MACGeneralParameters{} },
		ck.MechanismTypeDES_MAC_GENERAL, ck.MechanismTypeDES3_MAC_GENERAL,
		ck.MechanismTypeAES_MAC_GENERAL,
		ck.MechanismTypeMD2_HMAC_GENERAL, ck.MechanismTypeMD5_HMAC_GENERAL,
		ck.MechanismTypeSHA_1_HMAC_GENERAL, ck.MechanismTypeRIPEMD128_HMAC_GENERAL,
		ck.MechanismTypeRIPEMD160_HMAC_GENERAL, ck.MechanismTypeSHA224_HMAC_GENERAL,
		ck.MechanismTypeSHA256_HMAC_GENERAL, ck.MechanismTypeSHA384_HMAC_GENERAL,
		ck.MechanismTypeSHA512_HMAC_GENERAL,
		ck.MechanismTypeSSL3_MD5_MAC, ck.MechanismTypeSSL3_SHA1_MAC)

	register(func() Parameters { return &KeyWrapSetOAEPParameters{} },
		ck.MechanismTypeKEY_WRAP_SET_OAEP)
	register(func() Parameters { return &SkipjackPrivateWrapParameters{} },
		ck.MechanismTypeSKIPJACK_PRIVATE_WRAP)
	register(func() Parameters { return &SkipjackRelayXParameters{} },
		ck.MechanismTypeSKIPJACK_RELAYX)

	register(func() Parameters { return &SSL3MasterKeyDeriveParameters{} },
		ck.MechanismTypeSSL3_MASTER_KEY_DERIVE, ck.MechanismTypeSSL3_MASTER_KEY_DERIVE_DH,
		ck.MechanismTypeTLS_MASTER_KEY_DERIVE, ck.MechanismTypeTLS_MASTER_KEY_DERIVE_DH)
	register(func() Parameters { return &SSL3KeyMaterialParameters{} },
		ck.MechanismTypeSSL3_KEY_AND_MAC_DERIVE, ck.MechanismTypeTLS_KEY_AND_MAC_DERIVE)

	register(func() Parameters { return &ObjectHandleParameters{} },
		ck.MechanismTypeCONCATENATE_BASE_AND_KEY)
	register(func() Parameters { return &KeyDerivationStringDataParameters{} },
		ck.MechanismTypeCONCATENATE_BASE_AND_DATA, ck.MechanismTypeCONCATENATE_DATA_AND_BASE,
		ck.MechanismTypeXOR_BASE_AND_DATA,
		ck.MechanismTypeDES_ECB_ENCRYPT_DATA, ck.MechanismTypeDES3_ECB_ENCRYPT_DATA,
		ck.MechanismTypeAES_ECB_ENCRYPT_DATA)
	register(func() Parameters { return &ExtractParameters{} },
		ck.MechanismTypeEXTRACT_KEY_FROM_KEY)
}

// newParameters returns an empty value of the parameters t takes.
func newParameters(t ck.MechanismType) (Parameters, bool) {
	f, ok := mechanismParameters[t]
	if !ok {
		return nil, false
	}
	return f(), true
}

// TakesParameters reports whether a mechanism takes parameters this package
// can encode.
func TakesParameters(t ck.MechanismType) bool {
	_, ok := mechanismParameters[t]
	return ok
}

// ParameterizedMechanisms returns every mechanism with parameters this
// package can encode, in numeric order.
func ParameterizedMechanisms() []ck.MechanismType {
	types := make([]ck.MechanismType, 0, len(mechanismParameters))
	for t := range mechanismParameters {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func checkMechanism(t ck.MechanismType, p Parameters) error {
	f, ok := mechanismParameters[t]
	switch {
	case !ok && p == nil:
		return nil
	case !ok:
		return merry.Here(ErrMechanismMismatch).Appendf("%v takes no parameters, got %T", t, p)
	}
	want := f()
	if p == nil {
		return merry.Here(ErrMechanismMismatch).Appendf("%v requires %T", t, want)
	}
	if reflect.TypeOf(p) != reflect.TypeOf(want) {
		return merry.Here(ErrMechanismMismatch).Appendf("%v requires %T, got %T", t, want, p)
	}
	return nil
}
