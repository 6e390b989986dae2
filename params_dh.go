package ckparams

import (
	"github.com/gemalto/ckparams/ck"
)

// dhDerive holds the fields shared by the Diffie-Hellman style key agreement
// mechanisms: a key derivation function applied to the shared secret, and the
// other party's public value.
type dhDerive struct {
	kdf        ck.KeyDerivationFunction
	publicData Bytes
}

func (c *dhDerive) KDF() ck.KeyDerivationFunction {
	return c.kdf
}

func (c *dhDerive) PublicData() []byte {
	return c.publicData.Data()
}

func (c *dhDerive) fields() []field {
	return []field{numField("kdf", uint64(c.kdf)), bufField("publicData", &c.publicData)}
}

func (c *dhDerive) clone() dhDerive {
	return dhDerive{kdf: c.kdf, publicData: c.publicData.Clone()}
}

func validateDHDerive(c *dhDerive) error {
	if err := validateKDF(c.kdf); err != nil {
		return err
	}
	return requirePresent("publicData", c.publicData)
}

// setKDF and setPublicData change a field and revalidate the whole value
// through p, rolling back if it is no longer valid.
func setKDF(p Parameters, c *dhDerive, kdf ck.KeyDerivationFunction) error {
	old := c.kdf
	c.kdf = kdf
	if err := p.validate(); err != nil {
		c.kdf = old
		return err
	}
	return nil
}

func setPublicData(p Parameters, c *dhDerive, publicData []byte) error {
	old := c.publicData
	c.publicData = NewBytes(publicData)
	if err := p.validate(); err != nil {
		c.publicData = old
		return err
	}
	old.Wipe()
	return nil
}

// DHPkcsDeriveParameters is the other party's public value, the parameter of
// CKM_DH_PKCS_DERIVE.
type DHPkcsDeriveParameters struct {
	publicValue Bytes
}

func NewDHPkcsDeriveParameters(publicValue []byte) (*DHPkcsDeriveParameters, error) {
	p := &DHPkcsDeriveParameters{publicValue: NewBytes(publicValue)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *DHPkcsDeriveParameters) PublicValue() []byte {
	return p.publicValue.Data()
}

func (p *DHPkcsDeriveParameters) SetPublicValue(publicValue []byte) error {
	b := NewBytes(publicValue)
	if err := requirePresent("publicValue", b); err != nil {
		return err
	}
	p.publicValue.Wipe()
	p.publicValue = b
	return nil
}

func (p *DHPkcsDeriveParameters) fields() []field {
	return []field{bufField("publicValue", &p.publicValue)}
}

func (p *DHPkcsDeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*DHPkcsDeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *DHPkcsDeriveParameters) Hash() uint64 {
	return hashFields("DHPkcsDerive", p.fields())
}

func (p *DHPkcsDeriveParameters) Clone() Parameters {
	return &DHPkcsDeriveParameters{publicValue: p.publicValue.Clone()}
}

func (p *DHPkcsDeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *DHPkcsDeriveParameters) validate() error {
	return requirePresent("publicValue", p.publicValue)
}

func (p *DHPkcsDeriveParameters) marshalCK(e *encodeState) error {
	e.EncodeBytes(p.publicValue.ref())
	return e.Err()
}

func (p *DHPkcsDeriveParameters) unmarshalCK(d *decodeState) error {
	p.publicValue = Bytes{data: d.DecodeRest()}
	return d.Err()
}

// ECDH1DeriveParameters are the parameters of CKM_ECDH1_DERIVE and
// CKM_ECDH1_COFACTOR_DERIVE.
type ECDH1DeriveParameters struct {
	dhDerive
	sharedData Bytes
}

// NewECDH1DeriveParameters requires publicData.  sharedData may be nil.
func NewECDH1DeriveParameters(kdf ck.KeyDerivationFunction, sharedData, publicData []byte) (*ECDH1DeriveParameters, error) {
	p := &ECDH1DeriveParameters{
		dhDerive:   dhDerive{kdf: kdf, publicData: NewBytes(publicData)},
		sharedData: NewBytes(sharedData),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ECDH1DeriveParameters) SharedData() []byte {
	return p.sharedData.Data()
}

func (p *ECDH1DeriveParameters) SetKDF(kdf ck.KeyDerivationFunction) error {
	return setKDF(p, &p.dhDerive, kdf)
}

func (p *ECDH1DeriveParameters) SetPublicData(publicData []byte) error {
	return setPublicData(p, &p.dhDerive, publicData)
}

func (p *ECDH1DeriveParameters) fields() []field {
	return append(p.dhDerive.fields(), bufField("sharedData", &p.sharedData))
}

func (p *ECDH1DeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*ECDH1DeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *ECDH1DeriveParameters) Hash() uint64 {
	return hashFields("ECDH1Derive", p.fields())
}

func (p *ECDH1DeriveParameters) Clone() Parameters {
	return &ECDH1DeriveParameters{dhDerive: p.dhDerive.clone(), sharedData: p.sharedData.Clone()}
}

func (p *ECDH1DeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *ECDH1DeriveParameters) validate() error {
	return validateDHDerive(&p.dhDerive)
}

// CK_ECDH1_DERIVE_PARAMS: kdf, ulSharedDataLen, pSharedData, ulPublicDataLen, pPublicData
func (p *ECDH1DeriveParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.kdf))
	e.EncodeLenPtr(p.sharedData.ref())
	e.EncodeLenPtr(p.publicData.ref())
	return e.Err()
}

func (p *ECDH1DeriveParameters) unmarshalCK(d *decodeState) error {
	p.kdf = ck.KeyDerivationFunction(d.DecodeULong())
	p.sharedData = d.lenBytes()
	p.publicData = d.lenBytes()
	return d.Err()
}

// ECMQVDeriveParameters are the parameters of CKM_ECMQV_DERIVE.  The second
// private key and the ephemeral public key are given as bare handles, which the
// token resolves.
type ECMQVDeriveParameters struct {
	dhDerive
	sharedData        Bytes
	privateDataLength uint64
	privateData       ObjectHandle
	publicData2       Bytes
	publicKey         ObjectHandle
}

type ECMQVDeriveOptions struct {
	KDF               ck.KeyDerivationFunction
	SharedData        []byte
	PublicData        []byte
	PrivateDataLength uint64
	PrivateData       ObjectHandle
	PublicData2       []byte
	PublicKey         ObjectHandle
}

// NewECMQVDeriveParameters requires SharedData, PublicData and PublicData2.
func NewECMQVDeriveParameters(opts ECMQVDeriveOptions) (*ECMQVDeriveParameters, error) {
	p := &ECMQVDeriveParameters{
		dhDerive:          dhDerive{kdf: opts.KDF, publicData: NewBytes(opts.PublicData)},
		sharedData:        NewBytes(opts.SharedData),
		privateDataLength: opts.PrivateDataLength,
		privateData:       opts.PrivateData,
		publicData2:       NewBytes(opts.PublicData2),
		publicKey:         opts.PublicKey,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ECMQVDeriveParameters) SharedData() []byte        { return p.sharedData.Data() }
func (p *ECMQVDeriveParameters) PrivateDataLength() uint64 { return p.privateDataLength }
func (p *ECMQVDeriveParameters) PrivateData() ObjectHandle { return p.privateData }
func (p *ECMQVDeriveParameters) PublicData2() []byte       { return p.publicData2.Data() }
func (p *ECMQVDeriveParameters) PublicKey() ObjectHandle   { return p.publicKey }

func (p *ECMQVDeriveParameters) SetKDF(kdf ck.KeyDerivationFunction) error {
	return setKDF(p, &p.dhDerive, kdf)
}

func (p *ECMQVDeriveParameters) SetPublicData(publicData []byte) error {
	return setPublicData(p, &p.dhDerive, publicData)
}

func (p *ECMQVDeriveParameters) fields() []field {
	return append(p.dhDerive.fields(),
		bufField("sharedData", &p.sharedData),
		numField("privateDataLength", p.privateDataLength),
		numField("privateData", uint64(p.privateData)),
		bufField("publicData2", &p.publicData2),
		numField("publicKey", uint64(p.publicKey)),
	)
}

func (p *ECMQVDeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*ECMQVDeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *ECMQVDeriveParameters) Hash() uint64 {
	return hashFields("ECMQVDerive", p.fields())
}

func (p *ECMQVDeriveParameters) Clone() Parameters {
	c := *p
	c.dhDerive = p.dhDerive.clone()
	c.sharedData = p.sharedData.Clone()
	c.publicData2 = p.publicData2.Clone()
	return &c
}

func (p *ECMQVDeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *ECMQVDeriveParameters) validate() error {
	if err := validateDHDerive(&p.dhDerive); err != nil {
		return err
	}
	if err := requirePresent("sharedData", p.sharedData); err != nil {
		return err
	}
	return requirePresent("publicData2", p.publicData2)
}

// CK_ECMQV_DERIVE_PARAMS: kdf, ulSharedDataLen, pSharedData, ulPublicDataLen, pPublicData,
// ulPrivateDataLen, hPrivateData, ulPublicDataLen2, pPublicData2, publicKey
func (p *ECMQVDeriveParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.kdf))
	e.EncodeLenPtr(p.sharedData.ref())
	e.EncodeLenPtr(p.publicData.ref())
	e.EncodeULong(p.privateDataLength)
	e.EncodeULong(uint64(p.privateData))
	e.EncodeLenPtr(p.publicData2.ref())
	e.EncodeULong(uint64(p.publicKey))
	return e.Err()
}

func (p *ECMQVDeriveParameters) unmarshalCK(d *decodeState) error {
	p.kdf = ck.KeyDerivationFunction(d.DecodeULong())
	p.sharedData = d.lenBytes()
	p.publicData = d.lenBytes()
	p.privateDataLength = d.DecodeULong()
	p.privateData = ObjectHandle(d.DecodeULong())
	p.publicData2 = d.lenBytes()
	p.publicKey = ObjectHandle(d.DecodeULong())
	return d.Err()
}

// X942DH1DeriveParameters are the parameters of CKM_X9_42_DH_DERIVE.
type X942DH1DeriveParameters struct {
	dhDerive
	otherInfo Bytes
}

// NewX942DH1DeriveParameters requires publicData.  otherInfo may be nil.
func NewX942DH1DeriveParameters(kdf ck.KeyDerivationFunction, otherInfo, publicData []byte) (*X942DH1DeriveParameters, error) {
	p := &X942DH1DeriveParameters{
		dhDerive:  dhDerive{kdf: kdf, publicData: NewBytes(publicData)},
		otherInfo: NewBytes(otherInfo),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *X942DH1DeriveParameters) OtherInfo() []byte {
	return p.otherInfo.Data()
}

func (p *X942DH1DeriveParameters) SetKDF(kdf ck.KeyDerivationFunction) error {
	return setKDF(p, &p.dhDerive, kdf)
}

func (p *X942DH1DeriveParameters) SetPublicData(publicData []byte) error {
	return setPublicData(p, &p.dhDerive, publicData)
}

func (p *X942DH1DeriveParameters) fields() []field {
	return append(p.dhDerive.fields(), bufField("otherInfo", &p.otherInfo))
}

func (p *X942DH1DeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*X942DH1DeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *X942DH1DeriveParameters) Hash() uint64 {
	return hashFields("X942DH1Derive", p.fields())
}

func (p *X942DH1DeriveParameters) Clone() Parameters {
	return &X942DH1DeriveParameters{dhDerive: p.dhDerive.clone(), otherInfo: p.otherInfo.Clone()}
}

func (p *X942DH1DeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *X942DH1DeriveParameters) validate() error {
	return validateDHDerive(&p.dhDerive)
}

// CK_X9_42_DH1_DERIVE_PARAMS: kdf, ulOtherInfoLen, pOtherInfo, ulPublicDataLen, pPublicData
func (p *X942DH1DeriveParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(uint64(p.kdf))
	e.EncodeLenPtr(p.otherInfo.ref())
	e.EncodeLenPtr(p.publicData.ref())
	return e.Err()
}

func (p *X942DH1DeriveParameters) unmarshalCK(d *decodeState) error {
	p.kdf = ck.KeyDerivationFunction(d.DecodeULong())
	p.otherInfo = d.lenBytes()
	p.publicData = d.lenBytes()
	return d.Err()
}

// x942DH2 holds the fields shared by the two-key X9.42 mechanisms.  Unlike
// EC MQV, the second private key is a live object, checked against the session
// when the parameters are encoded.
type x942DH2 struct {
	dhDerive
	otherInfo         Bytes
	privateDataLength uint64
	privateData       *Object
	publicData2       Bytes
}

func (c *x942DH2) OtherInfo() []byte         { return c.otherInfo.Data() }
func (c *x942DH2) PrivateDataLength() uint64 { return c.privateDataLength }
func (c *x942DH2) PrivateData() *Object      { return c.privateData.clone() }
func (c *x942DH2) PublicData2() []byte       { return c.publicData2.Data() }

func (c *x942DH2) fields() []field {
	return append(c.dhDerive.fields(),
		bufField("otherInfo", &c.otherInfo),
		numField("privateDataLength", c.privateDataLength),
		objField("privateData", c.privateData),
		bufField("publicData2", &c.publicData2),
	)
}

func (c *x942DH2) clone() x942DH2 {
	return x942DH2{
		dhDerive:          c.dhDerive.clone(),
		otherInfo:         c.otherInfo.Clone(),
		privateDataLength: c.privateDataLength,
		privateData:       c.privateData.clone(),
		publicData2:       c.publicData2.Clone(),
	}
}

func validateX942DH2(c *x942DH2) error {
	if err := validateDHDerive(&c.dhDerive); err != nil {
		return err
	}
	if err := requireObject("privateData", c.privateData); err != nil {
		return err
	}
	return requirePresent("publicData2", c.publicData2)
}

// CK_X9_42_DH2_DERIVE_PARAMS: kdf, ulOtherInfoLen, pOtherInfo, ulPublicDataLen, pPublicData,
// ulPrivateDataLen, hPrivateData, ulPublicDataLen2, pPublicData2
func marshalX942DH2(e *encodeState, c *x942DH2) {
	e.EncodeULong(uint64(c.kdf))
	e.EncodeLenPtr(c.otherInfo.ref())
	e.EncodeLenPtr(c.publicData.ref())
	e.EncodeULong(c.privateDataLength)
	e.EncodeULong(e.object("privateData", c.privateData))
	e.EncodeLenPtr(c.publicData2.ref())
}

func unmarshalX942DH2(d *decodeState, c *x942DH2) {
	c.kdf = ck.KeyDerivationFunction(d.DecodeULong())
	c.otherInfo = d.lenBytes()
	c.publicData = d.lenBytes()
	c.privateDataLength = d.DecodeULong()
	c.privateData = d.object("privateData", d.DecodeULong())
	c.publicData2 = d.lenBytes()
}

type X942DH2DeriveOptions struct {
	KDF               ck.KeyDerivationFunction
	OtherInfo         []byte
	PublicData        []byte
	PrivateDataLength uint64
	PrivateData       *Object
	PublicData2       []byte
}

func (opts X942DH2DeriveOptions) build() x942DH2 {
	return x942DH2{
		dhDerive:          dhDerive{kdf: opts.KDF, publicData: NewBytes(opts.PublicData)},
		otherInfo:         NewBytes(opts.OtherInfo),
		privateDataLength: opts.PrivateDataLength,
		privateData:       opts.PrivateData.clone(),
		publicData2:       NewBytes(opts.PublicData2),
	}
}

// X942DH2DeriveParameters are the parameters of CKM_X9_42_DH_HYBRID_DERIVE.
type X942DH2DeriveParameters struct {
	x942DH2
}

// NewX942DH2DeriveParameters requires PublicData, PrivateData and PublicData2.
func NewX942DH2DeriveParameters(opts X942DH2DeriveOptions) (*X942DH2DeriveParameters, error) {
	p := &X942DH2DeriveParameters{opts.build()}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *X942DH2DeriveParameters) SetKDF(kdf ck.KeyDerivationFunction) error {
	return setKDF(p, &p.dhDerive, kdf)
}

func (p *X942DH2DeriveParameters) SetPublicData(publicData []byte) error {
	return setPublicData(p, &p.dhDerive, publicData)
}

func (p *X942DH2DeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*X942DH2DeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *X942DH2DeriveParameters) Hash() uint64 {
	return hashFields("X942DH2Derive", p.fields())
}

func (p *X942DH2DeriveParameters) Clone() Parameters {
	return &X942DH2DeriveParameters{p.x942DH2.clone()}
}

func (p *X942DH2DeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *X942DH2DeriveParameters) validate() error {
	return validateX942DH2(&p.x942DH2)
}

func (p *X942DH2DeriveParameters) marshalCK(e *encodeState) error {
	marshalX942DH2(e, &p.x942DH2)
	return e.Err()
}

func (p *X942DH2DeriveParameters) unmarshalCK(d *decodeState) error {
	unmarshalX942DH2(d, &p.x942DH2)
	return d.Err()
}

// X942MQVDeriveParameters are the parameters of CKM_X9_42_MQV_DERIVE.
type X942MQVDeriveParameters struct {
	x942DH2
	publicKey *Object
}

// NewX942MQVDeriveParameters requires the same fields as NewX942DH2DeriveParameters,
// plus publicKey, the object holding this party's ephemeral public key.
func NewX942MQVDeriveParameters(opts X942DH2DeriveOptions, publicKey *Object) (*X942MQVDeriveParameters, error) {
	p := &X942MQVDeriveParameters{x942DH2: opts.build(), publicKey: publicKey.clone()}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *X942MQVDeriveParameters) PublicKey() *Object {
	return p.publicKey.clone()
}

func (p *X942MQVDeriveParameters) SetKDF(kdf ck.KeyDerivationFunction) error {
	return setKDF(p, &p.dhDerive, kdf)
}

func (p *X942MQVDeriveParameters) SetPublicData(publicData []byte) error {
	return setPublicData(p, &p.dhDerive, publicData)
}

func (p *X942MQVDeriveParameters) fields() []field {
	return append(p.x942DH2.fields(), objField("publicKey", p.publicKey))
}

func (p *X942MQVDeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*X942MQVDeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *X942MQVDeriveParameters) Hash() uint64 {
	return hashFields("X942MQVDerive", p.fields())
}

func (p *X942MQVDeriveParameters) Clone() Parameters {
	return &X942MQVDeriveParameters{x942DH2: p.x942DH2.clone(), publicKey: p.publicKey.clone()}
}

func (p *X942MQVDeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *X942MQVDeriveParameters) validate() error {
	if err := validateX942DH2(&p.x942DH2); err != nil {
		return err
	}
	return requireObject("publicKey", p.publicKey)
}

// CK_X9_42_MQV_DERIVE_PARAMS: the CK_X9_42_DH2_DERIVE_PARAMS fields, then publicKey
func (p *X942MQVDeriveParameters) marshalCK(e *encodeState) error {
	marshalX942DH2(e, &p.x942DH2)
	e.EncodeULong(e.object("publicKey", p.publicKey))
	return e.Err()
}

func (p *X942MQVDeriveParameters) unmarshalCK(d *decodeState) error {
	unmarshalX942DH2(d, &p.x942DH2)
	p.publicKey = d.object("publicKey", d.DecodeULong())
	return d.Err()
}

// KEADeriveParameters are the parameters of CKM_KEA_KEY_DERIVE.
type KEADeriveParameters struct {
	isSender   bool
	randomA    Bytes
	randomB    Bytes
	publicData Bytes
}

// NewKEADeriveParameters requires all three buffers.  randomA and randomB must
// be the same length, since the native structure has a single length for both.
func NewKEADeriveParameters(isSender bool, randomA, randomB, publicData []byte) (*KEADeriveParameters, error) {
	p := &KEADeriveParameters{
		isSender:   isSender,
		randomA:    NewBytes(randomA),
		randomB:    NewBytes(randomB),
		publicData: NewBytes(publicData),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *KEADeriveParameters) IsSender() bool     { return p.isSender }
func (p *KEADeriveParameters) RandomA() []byte    { return p.randomA.Data() }
func (p *KEADeriveParameters) RandomB() []byte    { return p.randomB.Data() }
func (p *KEADeriveParameters) PublicData() []byte { return p.publicData.Data() }

func (p *KEADeriveParameters) fields() []field {
	return []field{
		boolField("isSender", p.isSender),
		bufField("randomA", &p.randomA),
		bufField("randomB", &p.randomB),
		bufField("publicData", &p.publicData),
	}
}

func (p *KEADeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*KEADeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *KEADeriveParameters) Hash() uint64 {
	return hashFields("KEADerive", p.fields())
}

func (p *KEADeriveParameters) Clone() Parameters {
	return &KEADeriveParameters{
		isSender:   p.isSender,
		randomA:    p.randomA.Clone(),
		randomB:    p.randomB.Clone(),
		publicData: p.publicData.Clone(),
	}
}

func (p *KEADeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *KEADeriveParameters) validate() error {
	if err := requirePresent("randomA", p.randomA); err != nil {
		return err
	}
	if err := requirePresent("randomB", p.randomB); err != nil {
		return err
	}
	if p.randomA.Len() != p.randomB.Len() {
		return invalid("randomB", "must be the same length as randomA (%d), was %d", p.randomA.Len(), p.randomB.Len())
	}
	return requirePresent("publicData", p.publicData)
}

// CK_KEA_DERIVE_PARAMS: isSender, ulRandomLen, pRandomA, pRandomB, ulPublicDataLen, pPublicData
func (p *KEADeriveParameters) marshalCK(e *encodeState) error {
	e.EncodeBool(p.isSender)
	e.EncodeULong(uint64(p.randomA.Len()))
	e.EncodePointer(e.AddBuffer(p.randomA.ref()))
	e.EncodePointer(e.AddBuffer(p.randomB.ref()))
	e.EncodeLenPtr(p.publicData.ref())
	return e.Err()
}

func (p *KEADeriveParameters) unmarshalCK(d *decodeState) error {
	p.isSender = d.DecodeBool()
	n := d.DecodeULong()
	a := d.DecodePointer()
	b := d.DecodePointer()
	p.randomA = Bytes{data: d.DecodeBuffer(a, n)}
	p.randomB = Bytes{data: d.DecodeBuffer(b, n)}
	p.publicData = d.lenBytes()
	return d.Err()
}
