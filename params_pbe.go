package ckparams

import (
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
)

// PKCS5PBKD2Parameters are the parameters of CKM_PKCS5_PBKD2.  Only the salt
// source and PRF values defined by PKCS#5 v2.0 are accepted, though the native
// structure has room for others.
type PKCS5PBKD2Parameters struct {
	saltSource     ck.SaltSource
	saltSourceData Bytes
	iterations     uint64
	prf            ck.PseudoRandomFunction
	prfData        Bytes
	password       Bytes
}

type PKCS5PBKD2Options struct {
	SaltSource     ck.SaltSource
	SaltSourceData []byte
	Iterations     uint64
	PRF            ck.PseudoRandomFunction
	PRFData        []byte
	// Password is optional here.  Tokens that derive keys with this mechanism
	// require it.
	Password []byte
}

func NewPKCS5PBKD2Parameters(opts PKCS5PBKD2Options) (*PKCS5PBKD2Parameters, error) {
	p := &PKCS5PBKD2Parameters{
		saltSource:     opts.SaltSource,
		saltSourceData: NewBytes(opts.SaltSourceData),
		iterations:     opts.Iterations,
		prf:            opts.PRF,
		prfData:        NewBytes(opts.PRFData),
		password:       NewBytes(opts.Password),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PKCS5PBKD2Parameters) SaltSource() ck.SaltSource    { return p.saltSource }
func (p *PKCS5PBKD2Parameters) SaltSourceData() []byte       { return p.saltSourceData.Data() }
func (p *PKCS5PBKD2Parameters) Iterations() uint64           { return p.iterations }
func (p *PKCS5PBKD2Parameters) PRF() ck.PseudoRandomFunction { return p.prf }
func (p *PKCS5PBKD2Parameters) PRFData() []byte              { return p.prfData.Data() }
func (p *PKCS5PBKD2Parameters) Password() []byte             { return p.password.Data() }

func (p *PKCS5PBKD2Parameters) SetIterations(iterations uint64) error {
	if err := validateIterations(iterations); err != nil {
		return err
	}
	p.iterations = iterations
	return nil
}

func validateIterations(n uint64) error {
	if n == 0 {
		return invalid("iterations", "must be at least 1")
	}
	return nil
}

func (p *PKCS5PBKD2Parameters) fields() []field {
	return []field{
		numField("saltSource", uint64(p.saltSource)),
		bufField("saltSourceData", &p.saltSourceData),
		numField("iterations", p.iterations),
		numField("prf", uint64(p.prf)),
		bufField("prfData", &p.prfData),
		bufField("password", &p.password),
	}
}

func (p *PKCS5PBKD2Parameters) Equal(other Parameters) bool {
	o, ok := other.(*PKCS5PBKD2Parameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *PKCS5PBKD2Parameters) Hash() uint64 {
	return hashFields("PKCS5PBKD2", p.fields())
}

func (p *PKCS5PBKD2Parameters) Clone() Parameters {
	return &PKCS5PBKD2Parameters{
		saltSource:     p.saltSource,
		saltSourceData: p.saltSourceData.Clone(),
		iterations:     p.iterations,
		prf:            p.prf,
		prfData:        p.prfData.Clone(),
		password:       p.password.Clone(),
	}
}

func (p *PKCS5PBKD2Parameters) Wipe() {
	wipeFields(p.fields())
}

func (p *PKCS5PBKD2Parameters) validate() error {
	if p.saltSource != ck.SaltSourceSALT_SPECIFIED {
		return invalid("saltSource", "must be %v, was %v", ck.SaltSourceSALT_SPECIFIED, p.saltSource)
	}
	if err := requirePresent("saltSourceData", p.saltSourceData); err != nil {
		return err
	}
	if err := validateIterations(p.iterations); err != nil {
		return err
	}
	if p.prf != ck.PseudoRandomFunctionPKCS5_PBKD2_HMAC_SHA1 {
		return invalid("prf", "must be %v, was %v", ck.PseudoRandomFunctionPKCS5_PBKD2_HMAC_SHA1, p.prf)
	}
	return requirePresent("prfData", p.prfData)
}

// CK_PKCS5_PBKD2_PARAMS: saltSource, pSaltSourceData, ulSaltSourceDataLen, iterations,
// prf, pPrfData, ulPrfDataLen, pPassword, ulPasswordLen
//
// ulPasswordLen is a CK_ULONG_PTR, so the length goes in a segment of its own.
func (p *PKCS5PBKD2Parameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.saltSource))
	e.EncodePtrLen(p.saltSourceData.ref())
	e.EncodeULong(p.iterations)
	e.EncodeULong(uint64(p.prf))
	e.EncodePtrLen(p.prfData.ref())
	if p.password.IsNil() {
		e.EncodePointer(-1)
		e.EncodePointer(-1)
		return e.Err()
	}
	e.EncodePointer(e.AddBuffer(p.password.ref()))
	n, err := e.EncodeSegment(func(e *ckabi.Encoder) error {
		e.EncodeULong(uint64(p.password.Len()))
		return e.Err()
	})
	if err != nil {
		return err
	}
	e.EncodePointer(n)
	return e.Err()
}

func (p *PKCS5PBKD2Parameters) unmarshalCK(d *decodeState) error {
	p.saltSource = ck.SaltSource(d.DecodeULong())
	p.saltSourceData = d.bytes()
	p.iterations = d.DecodeULong()
	p.prf = ck.PseudoRandomFunction(d.DecodeULong())
	p.prfData = d.bytes()
	password := d.DecodePointer()
	lenPtr := d.DecodePointer()
	var n uint64
	if lenPtr >= 0 {
		_ = d.DecodeSegment(lenPtr, func(d *ckabi.Decoder) error {
			n = d.DecodeULong()
			return d.Err()
		})
	}
	p.password = Bytes{data: d.DecodeBuffer(password, n)}
	return d.Err()
}

// PBEInitVectorSize is the size of the IV buffer CK_PBE_PARAMS points to.
const PBEInitVectorSize = 8

// PBEParameters are the parameters of the CKM_PBE_* mechanisms and
// CKM_PBA_SHA1_WITH_SHA1_HMAC.  When the mechanism generates an IV, the token
// writes it into the IV buffer, so the buffer should be allocated, and the
// generated IV read back with Decoder.DecodeOutput.
type PBEParameters struct {
	iv         Bytes
	password   Bytes
	salt       Bytes
	iterations uint64
}

// NewPBEParameters requires password and salt.  iv may be nil, or
// PBEInitVectorSize bytes.
func NewPBEParameters(iv, password, salt []byte, iterations uint64) (*PBEParameters, error) {
	p := &PBEParameters{
		iv:         NewBytes(iv),
		password:   NewBytes(password),
		salt:       NewBytes(salt),
		iterations: iterations,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PBEParameters) IV() []byte         { return p.iv.Data() }
func (p *PBEParameters) Password() []byte   { return p.password.Data() }
func (p *PBEParameters) Salt() []byte       { return p.salt.Data() }
func (p *PBEParameters) Iterations() uint64 { return p.iterations }

func (p *PBEParameters) fields() []field {
	return []field{
		bufField("iv", &p.iv),
		bufField("password", &p.password),
		bufField("salt", &p.salt),
		numField("iterations", p.iterations),
	}
}

func (p *PBEParameters) Equal(other Parameters) bool {
	o, ok := other.(*PBEParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *PBEParameters) Hash() uint64 {
	return hashFields("PBE", p.fields())
}

func (p *PBEParameters) Clone() Parameters {
	return &PBEParameters{
		iv:         p.iv.Clone(),
		password:   p.password.Clone(),
		salt:       p.salt.Clone(),
		iterations: p.iterations,
	}
}

func (p *PBEParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *PBEParameters) validate() error {
	if !p.iv.IsNil() {
		if err := requireLen("iv", p.iv, PBEInitVectorSize); err != nil {
			return err
		}
	}
	if err := requirePresent("password", p.password); err != nil {
		return err
	}
	if err := requirePresent("salt", p.salt); err != nil {
		return err
	}
	return validateIterations(p.iterations)
}

// CK_PBE_PARAMS: pInitVector, pPassword, ulPasswordLen, pSalt, ulSaltLen, ulIteration
func (p *PBEParameters) marshalCK(e *encodeState) error {
	e.EncodePointer(e.AddBuffer(p.iv.ref()))
	e.EncodePtrLen(p.password.ref())
	e.EncodePtrLen(p.salt.ref())
	e.EncodeULong(p.iterations)
	return e.Err()
}

func (p *PBEParameters) unmarshalCK(d *decodeState) error {
	p.iv = Bytes{data: decodeIV(d)}
	p.password = d.bytes()
	p.salt = d.bytes()
	p.iterations = d.DecodeULong()
	return d.Err()
}

func (p *PBEParameters) decodeOutput(d *decodeState) error {
	iv := decodeIV(d)
	if err := d.Err(); err != nil {
		return err
	}
	if iv != nil {
		p.iv.Wipe()
		p.iv = Bytes{data: iv}
	}
	return nil
}

func decodeIV(d *decodeState) []byte {
	target := d.DecodePointer()
	if target < 0 {
		return nil
	}
	return d.DecodeBuffer(target, PBEInitVectorSize)
}
