package mock

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"golang.org/x/crypto/pbkdf2"
)

// maxIterations bounds PBKDF2 work on the mock token.
const maxIterations = 1 << 24

const masterSecretSize = 48

var keySizes = map[ck.KeyType][]int{
	ck.KeyTypeDES:  {8},
	ck.KeyTypeDES3: {16, 24},
	ck.KeyTypeAES:  {16, 24, 32},
}

func checkKeySize(keyType ck.KeyType, n int) error {
	if n == 0 {
		return merry.Here(ErrKeySizeRange).Append("empty key")
	}
	sizes, ok := keySizes[keyType]
	if !ok {
		return nil
	}
	for _, size := range sizes {
		if n == size {
			return nil
		}
	}
	return merry.Here(ErrKeySizeRange).Appendf("%v keys can't be %d bytes", keyType, n)
}

func (s *Session) deriveCBCEncryptData(mt ck.MechanismType, p ckparams.Parameters, base *object, keyType ck.KeyType) (*ckparams.Object, error) {
	var iv, data []byte
	switch p := p.(type) {
	case *ckparams.DESCBCEncryptDataParameters:
		iv, data = p.IV(), p.Data()
	case *ckparams.AESCBCEncryptDataParameters:
		iv, data = p.IV(), p.Data()
	}

	var (
		block cipher.Block
		err   error
	)
	switch mt {
	case ck.MechanismTypeDES_CBC_ENCRYPT_DATA:
		if base.KeyType != ck.KeyTypeDES {
			return nil, merry.Here(ErrKeyTypeInconsistent).Appendf("base key is %v", base.KeyType)
		}
		block, err = des.NewCipher(base.value)
	case ck.MechanismTypeDES3_CBC_ENCRYPT_DATA:
		if base.KeyType != ck.KeyTypeDES3 {
			return nil, merry.Here(ErrKeyTypeInconsistent).Appendf("base key is %v", base.KeyType)
		}
		key := base.value
		if len(key) == 16 {
			// two key triple DES
			key = append(append([]byte(nil), key...), key[:8]...)
		}
		block, err = des.NewTripleDESCipher(key)
	default:
		if base.KeyType != ck.KeyTypeAES {
			return nil, merry.Here(ErrKeyTypeInconsistent).Appendf("base key is %v", base.KeyType)
		}
		block, err = aes.NewCipher(base.value)
	}
	if err != nil {
		return nil, merry.Here(ErrKeySizeRange).Append(err.Error())
	}

	value := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(value, data)
	defer wipe(value)
	return s.CreateSecretKey(keyType, value)
}

func (s *Session) deriveConcatenateKey(p *ckparams.ObjectHandleParameters, base *object, keyType ck.KeyType) (*ckparams.Object, error) {
	other, err := s.token.lookup(s, p.Object().Handle)
	if err != nil {
		return nil, err
	}
	value := append(append([]byte(nil), base.value...), other.value...)
	defer wipe(value)
	return s.CreateSecretKey(keyType, value)
}

func (s *Session) deriveConcatenateData(p *ckparams.KeyDerivationStringDataParameters, base *object, keyType ck.KeyType) (*ckparams.Object, error) {
	value := append(append([]byte(nil), base.value...), p.Data()...)
	defer wipe(value)
	return s.CreateSecretKey(keyType, value)
}

// deriveMasterKey derives a TLS master secret from a pre-master secret, and
// returns the client version found in the pre-master secret's first two
// bytes.
func (s *Session) deriveMasterKey(p *ckparams.SSL3MasterKeyDeriveParameters, blk *ckabi.Block, base *object) (*ckparams.Object, error) {
	if len(base.value) != masterSecretSize {
		return nil, merry.Here(ErrKeySizeRange).Appendf("pre-master secret is %d bytes", len(base.value))
	}
	r := p.RandomInfo()
	master := prf(base.value, "master secret", concat(r.ClientRandom(), r.ServerRandom()), masterSecretSize)
	defer wipe(master)

	o, err := s.CreateSecretKey(ck.KeyTypeGENERIC_SECRET, master)
	if err != nil {
		return nil, err
	}
	v := ckparams.Version{Major: base.value[0], Minor: base.value[1]}
	if err := ckparams.StoreVersion(blk, v); err != nil {
		return nil, err
	}
	return o, nil
}

// deriveKeyAndMAC expands a master secret into MAC secrets, keys, and IVs.
// Export key weakening isn't implemented.
func (s *Session) deriveKeyAndMAC(p *ckparams.SSL3KeyMaterialParameters, blk *ckabi.Block, base *object, keyType ck.KeyType) error {
	sizes := []uint64{p.MACSizeInBits(), p.KeySizeInBits(), p.IVSizeInBits()}
	for _, bits := range sizes {
		if bits%8 != 0 {
			return merry.Here(ErrMechanismParamInvalid).Appendf("%d bits is not a whole number of bytes", bits)
		}
	}
	macLen, keyLen, ivLen := int(sizes[0]/8), int(sizes[1]/8), int(sizes[2]/8)

	r := p.RandomInfo()
	keyBlock := prf(base.value, "key expansion", concat(r.ServerRandom(), r.ClientRandom()), 2*(macLen+keyLen+ivLen))
	defer wipe(keyBlock)
	next := func(n int) []byte {
		b := keyBlock[:n]
		keyBlock = keyBlock[n:]
		return b
	}

	var native ckparams.SSL3KeyMatOut
	for _, k := range []struct {
		handle  *ckparams.ObjectHandle
		keyType ck.KeyType
		len     int
	}{
		{&native.ClientMacSecret, ck.KeyTypeGENERIC_SECRET, macLen},
		{&native.ServerMacSecret, ck.KeyTypeGENERIC_SECRET, macLen},
		{&native.ClientKey, keyType, keyLen},
		{&native.ServerKey, keyType, keyLen},
	} {
		o, err := s.CreateSecretKey(k.keyType, next(k.len))
		if err != nil {
			return err
		}
		*k.handle = o.Handle
	}
	native.IVClient = append([]byte(nil), next(ivLen)...)
	native.IVServer = append([]byte(nil), next(ivLen)...)

	s.log.Debug("returning key material",
		"clientMacSecret", native.ClientMacSecret,
		"serverMacSecret", native.ServerMacSecret,
		"clientKey", native.ClientKey,
		"serverKey", native.ServerKey,
	)
	return ckparams.StoreSSL3KeyMatOut(blk, native)
}

func (s *Session) generatePBKD2(p *ckparams.PKCS5PBKD2Parameters, keyType ck.KeyType, length int) (*ckparams.Object, error) {
	if p.PRF() != ck.PseudoRandomFunctionPKCS5_PBKD2_HMAC_SHA1 {
		return nil, merry.Here(ErrMechanismParamInvalid).Appendf("unsupported prf %v", p.PRF())
	}
	if p.Iterations() > maxIterations {
		return nil, merry.Here(ErrMechanismParamInvalid).Appendf("%d iterations", p.Iterations())
	}
	if err := checkKeySize(keyType, length); err != nil {
		return nil, err
	}
	value := pbkdf2.Key(p.Password(), p.SaltSourceData(), int(p.Iterations()), length, sha1.New)
	defer wipe(value)
	return s.CreateSecretKey(keyType, value)
}

// prf is the TLS 1.2 PRF with SHA-256.  The mock token uses it for SSL3 and
// TLS alike.
func prf(secret []byte, label string, seed []byte, n int) []byte {
	seed = concat([]byte(label), seed)
	out := make([]byte, 0, n+sha256.Size)
	a := seed
	for len(out) < n {
		h := hmac.New(sha256.New, secret)
		h.Write(a)
		a = h.Sum(nil)

		h.Reset()
		h.Write(a)
		h.Write(seed)
		out = h.Sum(out)
	}
	return out[:n]
}

func concat(a, b []byte) []byte {
	return append(append(make([]byte, 0, len(a)+len(b)), a...), b...)
}
