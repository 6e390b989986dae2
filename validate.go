package ckparams

import (
	"github.com/gemalto/ckparams/ck"
)

func requirePresent(name string, b Bytes) error {
	if b.IsNil() {
		return invalid(name, "required")
	}
	return nil
}

func requireLen(name string, b Bytes, n int) error {
	if b.IsNil() {
		return invalid(name, "required")
	}
	if b.Len() != n {
		return invalid(name, "must be %d bytes, was %d", n, b.Len())
	}
	return nil
}

func requireObject(name string, o *Object) error {
	if o == nil {
		return invalid(name, "required")
	}
	return nil
}

var allowedKDFs = map[ck.KeyDerivationFunction]bool{
	ck.KeyDerivationFunctionNULL:                 true,
	ck.KeyDerivationFunctionSHA1_KDF:             true,
	ck.KeyDerivationFunctionSHA1_KDF_ASN1:        true,
	ck.KeyDerivationFunctionSHA1_KDF_CONCATENATE: true,
}

func validateKDF(kdf ck.KeyDerivationFunction) error {
	if !allowedKDFs[kdf] {
		return invalid("kdf", "%v is not a supported key derivation function", kdf)
	}
	return nil
}

var allowedMGFs = map[ck.MaskGenerationFunction]bool{
	ck.MaskGenerationFunctionMGF1_SHA1:   true,
	ck.MaskGenerationFunctionMGF1_SHA256: true,
	ck.MaskGenerationFunctionMGF1_SHA384: true,
	ck.MaskGenerationFunctionMGF1_SHA512: true,
}

func validateMGF(mgf ck.MaskGenerationFunction) error {
	if !allowedMGFs[mgf] {
		return invalid("mgf", "%v is not a supported mask generation function", mgf)
	}
	return nil
}

func validateHashAlg(hashAlg ck.MechanismType) error {
	if !hashAlg.IsDigest() {
		return invalid("hashAlg", "%v is not a digest mechanism", hashAlg)
	}
	return nil
}

// requireAll checks that every buffer field is present.
func requireAll(fields []field) error {
	for _, f := range fields {
		if f.buf != nil {
			if err := requirePresent(f.name, *f.buf); err != nil {
				return err
			}
		}
	}
	return nil
}
