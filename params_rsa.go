package ckparams

import (
	"github.com/gemalto/ckparams/ck"
)

// rsaPkcs holds the fields shared by the RSA OAEP and PSS parameters.
type rsaPkcs struct {
	hashAlg ck.MechanismType
	mgf     ck.MaskGenerationFunction
}

func (c *rsaPkcs) HashAlg() ck.MechanismType {
	return c.hashAlg
}

func (c *rsaPkcs) MGF() ck.MaskGenerationFunction {
	return c.mgf
}

func (c *rsaPkcs) fields() []field {
	return []field{numField("hashAlg", uint64(c.hashAlg)), numField("mgf", uint64(c.mgf))}
}

func validateRSAPkcs(c *rsaPkcs) error {
	if err := validateHashAlg(c.hashAlg); err != nil {
		return err
	}
	return validateMGF(c.mgf)
}

// RSAPkcsOAEPParameters are the parameters of CKM_RSA_PKCS_OAEP.
type RSAPkcsOAEPParameters struct {
	rsaPkcs
	source     ck.OAEPSource
	sourceData Bytes
}

// NewRSAPkcsOAEPParameters copies sourceData.  With ck.OAEPSourceEMPTY,
// sourceData is normally nil.
func NewRSAPkcsOAEPParameters(hashAlg ck.MechanismType, mgf ck.MaskGenerationFunction, source ck.OAEPSource, sourceData []byte) (*RSAPkcsOAEPParameters, error) {
	p := &RSAPkcsOAEPParameters{
		rsaPkcs:    rsaPkcs{hashAlg: hashAlg, mgf: mgf},
		source:     source,
		sourceData: NewBytes(sourceData),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RSAPkcsOAEPParameters) Source() ck.OAEPSource {
	return p.source
}

func (p *RSAPkcsOAEPParameters) SourceData() []byte {
	return p.sourceData.Data()
}

func (p *RSAPkcsOAEPParameters) SetSource(source ck.OAEPSource) error {
	if err := validateOAEPSource(source); err != nil {
		return err
	}
	p.source = source
	return nil
}

func (p *RSAPkcsOAEPParameters) SetSourceData(sourceData []byte) error {
	p.sourceData.Wipe()
	p.sourceData = NewBytes(sourceData)
	return nil
}

func validateOAEPSource(source ck.OAEPSource) error {
	switch source {
	case ck.OAEPSourceEMPTY, ck.OAEPSourceDATA_SPECIFIED:
		return nil
	default:
		return invalid("source", "%v is not a supported OAEP source", source)
	}
}

func (p *RSAPkcsOAEPParameters) fields() []field {
	return append(p.rsaPkcs.fields(),
		numField("source", uint64(p.source)),
		bufField("sourceData", &p.sourceData),
	)
}

func (p *RSAPkcsOAEPParameters) Equal(other Parameters) bool {
	o, ok := other.(*RSAPkcsOAEPParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RSAPkcsOAEPParameters) Hash() uint64 {
	return hashFields("RSAPkcsOAEP", p.fields())
}

func (p *RSAPkcsOAEPParameters) Clone() Parameters {
	return &RSAPkcsOAEPParameters{rsaPkcs: p.rsaPkcs, source: p.source, sourceData: p.sourceData.Clone()}
}

func (p *RSAPkcsOAEPParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *RSAPkcsOAEPParameters) validate() error {
	if err := validateRSAPkcs(&p.rsaPkcs); err != nil {
		return err
	}
	return validateOAEPSource(p.source)
}

// CK_RSA_PKCS_OAEP_PARAMS: hashAlg, mgf, source, pSourceData, ulSourceDataLen
func (p *RSAPkcsOAEPParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.hashAlg))
	e.EncodeULong(uint64(p.mgf))
	e.EncodeULong(uint64(p.source))
	e.EncodePtrLen(p.sourceData.ref())
	return e.Err()
}

func (p *RSAPkcsOAEPParameters) unmarshalCK(d *decodeState) error {
	p.hashAlg = ck.MechanismType(d.DecodeULong())
	p.mgf = ck.MaskGenerationFunction(d.DecodeULong())
	p.source = ck.OAEPSource(d.DecodeULong())
	p.sourceData = d.bytes()
	return d.Err()
}

// RSAPkcsPSSParameters are the parameters of CKM_RSA_PKCS_PSS and the
// CKM_SHA*_RSA_PKCS_PSS mechanisms.
type RSAPkcsPSSParameters struct {
	rsaPkcs
	saltLength uint64
}

func NewRSAPkcsPSSParameters(hashAlg ck.MechanismType, mgf ck.MaskGenerationFunction, saltLength uint64) (*RSAPkcsPSSParameters, error) {
	p := &RSAPkcsPSSParameters{rsaPkcs: rsaPkcs{hashAlg: hashAlg, mgf: mgf}, saltLength: saltLength}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RSAPkcsPSSParameters) SaltLength() uint64 {
	return p.saltLength
}

func (p *RSAPkcsPSSParameters) fields() []field {
	return append(p.rsaPkcs.fields(), numField("saltLength", p.saltLength))
}

func (p *RSAPkcsPSSParameters) Equal(other Parameters) bool {
	o, ok := other.(*RSAPkcsPSSParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RSAPkcsPSSParameters) Hash() uint64 {
	return hashFields("RSAPkcsPSS", p.fields())
}

func (p *RSAPkcsPSSParameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *RSAPkcsPSSParameters) Wipe() {}

func (p *RSAPkcsPSSParameters) validate() error {
	return validateRSAPkcs(&p.rsaPkcs)
}

// CK_RSA_PKCS_PSS_PARAMS: hashAlg, mgf, sLen
func (p *RSAPkcsPSSParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.hashAlg))
	e.EncodeULong(uint64(p.mgf))
	e.EncodeULong(p.saltLength)
	return e.Err()
}

func (p *RSAPkcsPSSParameters) unmarshalCK(d *decodeState) error {
	p.hashAlg = ck.MechanismType(d.DecodeULong())
	p.mgf = ck.MaskGenerationFunction(d.DecodeULong())
	p.saltLength = d.DecodeULong()
	return d.Err()
}
