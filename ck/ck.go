// Package ck defines the PKCS#11 constants used to describe mechanisms and
// their parameters, with the numeric values assigned by the PKCS#11 standard.
//
// Most of this package is generated from ck.json by ckgen.
package ck

//go:generate go run ../cmd/ckgen -i ck.json -o ck_generated.go -p ck

// InvalidHandle is CK_INVALID_HANDLE.  No session or object ever has this handle.
const InvalidHandle = 0

var digestMechanisms = map[MechanismType]bool{
	MechanismTypeMD2:       true,
	MechanismTypeMD5:       true,
	MechanismTypeSHA_1:     true,
	MechanismTypeRIPEMD128: true,
	MechanismTypeRIPEMD160: true,
	MechanismTypeSHA224:    true,
	MechanismTypeSHA256:    true,
	MechanismTypeSHA384:    true,
	MechanismTypeSHA512:    true,
	MechanismTypeFASTHASH:  true,
}

var keyDerivationMechanisms = map[MechanismType]bool{
	MechanismTypeDH_PKCS_DERIVE:            true,
	MechanismTypeX9_42_DH_DERIVE:           true,
	MechanismTypeX9_42_DH_HYBRID_DERIVE:    true,
	MechanismTypeX9_42_MQV_DERIVE:          true,
	MechanismTypeCONCATENATE_BASE_AND_KEY:  true,
	MechanismTypeCONCATENATE_BASE_AND_DATA: true,
	MechanismTypeCONCATENATE_DATA_AND_BASE: true,
	MechanismTypeXOR_BASE_AND_DATA:         true,
	MechanismTypeEXTRACT_KEY_FROM_KEY:      true,
	MechanismTypeSSL3_MASTER_KEY_DERIVE:    true,
	MechanismTypeSSL3_MASTER_KEY_DERIVE_DH: true,
	MechanismTypeSSL3_KEY_AND_MAC_DERIVE:   true,
	MechanismTypeTLS_MASTER_KEY_DERIVE:     true,
	MechanismTypeTLS_MASTER_KEY_DERIVE_DH:  true,
	MechanismTypeTLS_KEY_AND_MAC_DERIVE:    true,
	MechanismTypeTLS_PRF:                   true,
	MechanismTypeMD2_KEY_DERIVATION:        true,
	MechanismTypeMD5_KEY_DERIVATION:        true,
	MechanismTypeSHA1_KEY_DERIVATION:       true,
	MechanismTypeSHA224_KEY_DERIVATION:     true,
	MechanismTypeSHA256_KEY_DERIVATION:     true,
	MechanismTypeSHA384_KEY_DERIVATION:     true,
	MechanismTypeSHA512_KEY_DERIVATION:     true,
	MechanismTypeKEA_KEY_DERIVE:            true,
	MechanismTypeECDH1_DERIVE:              true,
	MechanismTypeECDH1_COFACTOR_DERIVE:     true,
	MechanismTypeECMQV_DERIVE:              true,
	MechanismTypeDES_ECB_ENCRYPT_DATA:      true,
	MechanismTypeDES_CBC_ENCRYPT_DATA:      true,
	MechanismTypeDES3_ECB_ENCRYPT_DATA:     true,
	MechanismTypeDES3_CBC_ENCRYPT_DATA:     true,
	MechanismTypeAES_ECB_ENCRYPT_DATA:      true,
	MechanismTypeAES_CBC_ENCRYPT_DATA:      true,
}

var keyGenerationMechanisms = map[MechanismType]bool{
	MechanismTypeRC2_KEY_GEN:             true,
	MechanismTypeRC4_KEY_GEN:             true,
	MechanismTypeDES_KEY_GEN:             true,
	MechanismTypeDES2_KEY_GEN:            true,
	MechanismTypeDES3_KEY_GEN:            true,
	MechanismTypeRC5_KEY_GEN:             true,
	MechanismTypeAES_KEY_GEN:             true,
	MechanismTypeGENERIC_SECRET_KEY_GEN:  true,
	MechanismTypeSSL3_PRE_MASTER_KEY_GEN: true,
	MechanismTypeTLS_PRE_MASTER_KEY_GEN:  true,
	MechanismTypeSKIPJACK_KEY_GEN:        true,
	MechanismTypeJUNIPER_KEY_GEN:         true,
	MechanismTypePKCS5_PBKD2:             true,
	MechanismTypePBE_MD2_DES_CBC:         true,
	MechanismTypePBE_MD5_DES_CBC:         true,
	MechanismTypePBE_MD5_CAST_CBC:        true,
	MechanismTypePBE_MD5_CAST3_CBC:       true,
	MechanismTypePBE_MD5_CAST128_CBC:     true,
	MechanismTypePBE_SHA1_CAST128_CBC:    true,
	MechanismTypePBE_SHA1_RC4_128:        true,
	MechanismTypePBE_SHA1_RC4_40:         true,
	MechanismTypePBE_SHA1_DES3_EDE_CBC:   true,
	MechanismTypePBE_SHA1_DES2_EDE_CBC:   true,
	MechanismTypePBE_SHA1_RC2_128_CBC:    true,
	MechanismTypePBE_SHA1_RC2_40_CBC:     true,
	MechanismTypePBA_SHA1_WITH_SHA1_HMAC: true,
}

var keyPairGenerationMechanisms = map[MechanismType]bool{
	MechanismTypeRSA_PKCS_KEY_PAIR_GEN:  true,
	MechanismTypeRSA_X9_31_KEY_PAIR_GEN: true,
	MechanismTypeDSA_KEY_PAIR_GEN:       true,
	MechanismTypeDH_PKCS_KEY_PAIR_GEN:   true,
	MechanismTypeX9_42_DH_KEY_PAIR_GEN:  true,
	MechanismTypeKEA_KEY_PAIR_GEN:       true,
	MechanismTypeEC_KEY_PAIR_GEN:        true,
}

// IsDigest reports whether the mechanism is a message digest.
func (m MechanismType) IsDigest() bool {
	return digestMechanisms[m]
}

// IsKeyDerivation reports whether the mechanism derives a key from a base key
// with C_DeriveKey.
func (m MechanismType) IsKeyDerivation() bool {
	return keyDerivationMechanisms[m]
}

func (m MechanismType) IsKeyGeneration() bool {
	return keyGenerationMechanisms[m]
}

func (m MechanismType) IsKeyPairGeneration() bool {
	return keyPairGenerationMechanisms[m]
}

// IsVendorDefined reports whether the code is in the range reserved for vendor
// extensions.
func (m MechanismType) IsVendorDefined() bool {
	return m >= MechanismTypeVENDOR_DEFINED
}
