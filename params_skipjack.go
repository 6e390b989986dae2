package ckparams

// KeyWrapSetOAEPParameters are the parameters of CKM_KEY_WRAP_SET_OAEP.  X is
// the concatenation of the hash of the plaintext and any extra data.
type KeyWrapSetOAEPParameters struct {
	blockContents byte
	x             Bytes
}

func NewKeyWrapSetOAEPParameters(blockContents byte, x []byte) *KeyWrapSetOAEPParameters {
	return &KeyWrapSetOAEPParameters{blockContents: blockContents, x: NewBytes(x)}
}

func (p *KeyWrapSetOAEPParameters) BlockContents() byte { return p.blockContents }
func (p *KeyWrapSetOAEPParameters) X() []byte           { return p.x.Data() }

func (p *KeyWrapSetOAEPParameters) fields() []field {
	return []field{numField("blockContents", uint64(p.blockContents)), bufField("x", &p.x)}
}

func (p *KeyWrapSetOAEPParameters) Equal(other Parameters) bool {
	o, ok := other.(*KeyWrapSetOAEPParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *KeyWrapSetOAEPParameters) Hash() uint64 {
	return hashFields("KeyWrapSetOAEP", p.fields())
}

func (p *KeyWrapSetOAEPParameters) Clone() Parameters {
	return &KeyWrapSetOAEPParameters{blockContents: p.blockContents, x: p.x.Clone()}
}

func (p *KeyWrapSetOAEPParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *KeyWrapSetOAEPParameters) validate() error {
	return nil
}

// CK_KEY_WRAP_SET_OAEP_PARAMS: bBC, pX, ulXLen
func (p *KeyWrapSetOAEPParameters) marshalCK(e *encodeState) error {
	e.EncodeByte(p.blockContents)
	e.EncodePtrLen(p.x.ref())
	return e.Err()
}

func (p *KeyWrapSetOAEPParameters) unmarshalCK(d *decodeState) error {
	p.blockContents = d.DecodeByte()
	p.x = d.bytes()
	return d.Err()
}

// SkipjackPrivateWrapParameters are the parameters of CKM_SKIPJACK_PRIVATE_WRAP.
type SkipjackPrivateWrapParameters struct {
	password   Bytes
	publicData Bytes
	randomA    Bytes
	primeP     Bytes
	baseG      Bytes
	subprimeQ  Bytes
}

type SkipjackPrivateWrapOptions struct {
	Password   []byte
	PublicData []byte
	RandomA    []byte
	PrimeP     []byte
	BaseG      []byte
	SubprimeQ  []byte
}

// NewSkipjackPrivateWrapParameters requires every field.  PrimeP and BaseG must
// be the same length.
func NewSkipjackPrivateWrapParameters(opts SkipjackPrivateWrapOptions) (*SkipjackPrivateWrapParameters, error) {
	p := &SkipjackPrivateWrapParameters{
		password:   NewBytes(opts.Password),
		publicData: NewBytes(opts.PublicData),
		randomA:    NewBytes(opts.RandomA),
		primeP:     NewBytes(opts.PrimeP),
		baseG:      NewBytes(opts.BaseG),
		subprimeQ:  NewBytes(opts.SubprimeQ),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SkipjackPrivateWrapParameters) Password() []byte   { return p.password.Data() }
func (p *SkipjackPrivateWrapParameters) PublicData() []byte { return p.publicData.Data() }
func (p *SkipjackPrivateWrapParameters) RandomA() []byte    { return p.randomA.Data() }
func (p *SkipjackPrivateWrapParameters) PrimeP() []byte     { return p.primeP.Data() }
func (p *SkipjackPrivateWrapParameters) BaseG() []byte      { return p.baseG.Data() }
func (p *SkipjackPrivateWrapParameters) SubprimeQ() []byte  { return p.subprimeQ.Data() }

func (p *SkipjackPrivateWrapParameters) fields() []field {
	return []field{
		bufField("password", &p.password),
		bufField("publicData", &p.publicData),
		bufField("randomA", &p.randomA),
		bufField("primeP", &p.primeP),
		bufField("baseG", &p.baseG),
		bufField("subprimeQ", &p.subprimeQ),
	}
}

func (p *SkipjackPrivateWrapParameters) Equal(other Parameters) bool {
	o, ok := other.(*SkipjackPrivateWrapParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SkipjackPrivateWrapParameters) Hash() uint64 {
	return hashFields("SkipjackPrivateWrap", p.fields())
}

func (p *SkipjackPrivateWrapParameters) Clone() Parameters {
	return &SkipjackPrivateWrapParameters{
		password:   p.password.Clone(),
		publicData: p.publicData.Clone(),
		randomA:    p.randomA.Clone(),
		primeP:     p.primeP.Clone(),
		baseG:      p.baseG.Clone(),
		subprimeQ:  p.subprimeQ.Clone(),
	}
}

func (p *SkipjackPrivateWrapParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *SkipjackPrivateWrapParameters) validate() error {
	if err := requireAll(p.fields()); err != nil {
		return err
	}
	if p.primeP.Len() != p.baseG.Len() {
		return invalid("baseG", "must be the same length as primeP (%d), was %d", p.primeP.Len(), p.baseG.Len())
	}
	return nil
}

// CK_SKIPJACK_PRIVATE_WRAP_PARAMS: ulPasswordLen, pPassword, ulPublicDataLen, pPublicData,
// ulPAndGLen, ulQLen, ulRandomLen, pRandomA, pPrimeP, pBaseG, pSubprimeQ
func (p *SkipjackPrivateWrapParameters) marshalCK(e *encodeState) error {
	e.EncodeLenPtr(p.password.ref())
	e.EncodeLenPtr(p.publicData.ref())
	e.EncodeULong(uint64(p.primeP.Len()))
	e.EncodeULong(uint64(p.subprimeQ.Len()))
	e.EncodeLenPtr(p.randomA.ref())
	e.EncodePointer(e.AddBuffer(p.primeP.ref()))
	e.EncodePointer(e.AddBuffer(p.baseG.ref()))
	e.EncodePointer(e.AddBuffer(p.subprimeQ.ref()))
	return e.Err()
}

func (p *SkipjackPrivateWrapParameters) unmarshalCK(d *decodeState) error {
	p.password = d.lenBytes()
	p.publicData = d.lenBytes()
	pAndGLen := d.DecodeULong()
	qLen := d.DecodeULong()
	p.randomA = d.lenBytes()
	p.primeP = Bytes{data: d.DecodeBuffer(d.DecodePointer(), pAndGLen)}
	p.baseG = Bytes{data: d.DecodeBuffer(d.DecodePointer(), pAndGLen)}
	p.subprimeQ = Bytes{data: d.DecodeBuffer(d.DecodePointer(), qLen)}
	return d.Err()
}

// SkipjackRelayXParameters are the parameters of CKM_SKIPJACK_RELAYX.
type SkipjackRelayXParameters struct {
	oldWrappedX   Bytes
	oldPassword   Bytes
	oldPublicData Bytes
	oldRandomA    Bytes
	newPassword   Bytes
	newPublicData Bytes
	newRandomA    Bytes
}

type SkipjackRelayXOptions struct {
	OldWrappedX   []byte
	OldPassword   []byte
	OldPublicData []byte
	OldRandomA    []byte
	NewPassword   []byte
	NewPublicData []byte
	NewRandomA    []byte
}

// NewSkipjackRelayXParameters requires every field.
func NewSkipjackRelayXParameters(opts SkipjackRelayXOptions) (*SkipjackRelayXParameters, error) {
	p := &SkipjackRelayXParameters{
		oldWrappedX:   NewBytes(opts.OldWrappedX),
		oldPassword:   NewBytes(opts.OldPassword),
		oldPublicData: NewBytes(opts.OldPublicData),
		oldRandomA:    NewBytes(opts.OldRandomA),
		newPassword:   NewBytes(opts.NewPassword),
		newPublicData: NewBytes(opts.NewPublicData),
		newRandomA:    NewBytes(opts.NewRandomA),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SkipjackRelayXParameters) OldWrappedX() []byte   { return p.oldWrappedX.Data() }
func (p *SkipjackRelayXParameters) OldPassword() []byte   { return p.oldPassword.Data() }
func (p *SkipjackRelayXParameters) OldPublicData() []byte { return p.oldPublicData.Data() }
func (p *SkipjackRelayXParameters) OldRandomA() []byte    { return p.oldRandomA.Data() }
func (p *SkipjackRelayXParameters) NewPassword() []byte   { return p.newPassword.Data() }
func (p *SkipjackRelayXParameters) NewPublicData() []byte { return p.newPublicData.Data() }
func (p *SkipjackRelayXParameters) NewRandomA() []byte    { return p.newRandomA.Data() }

// fields are in native structure order.
func (p *SkipjackRelayXParameters) fields() []field {
	return []field{
		bufField("oldWrappedX", &p.oldWrappedX),
		bufField("oldPassword", &p.oldPassword),
		bufField("oldPublicData", &p.oldPublicData),
		bufField("oldRandomA", &p.oldRandomA),
		bufField("newPassword", &p.newPassword),
		bufField("newPublicData", &p.newPublicData),
		bufField("newRandomA", &p.newRandomA),
	}
}

func (p *SkipjackRelayXParameters) Equal(other Parameters) bool {
	o, ok := other.(*SkipjackRelayXParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SkipjackRelayXParameters) Hash() uint64 {
	return hashFields("SkipjackRelayX", p.fields())
}

func (p *SkipjackRelayXParameters) Clone() Parameters {
	c := &SkipjackRelayXParameters{}
	src, dst := p.fields(), c.fields()
	for i := range src {
		*dst[i].buf = src[i].buf.Clone()
	}
	return c
}

func (p *SkipjackRelayXParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *SkipjackRelayXParameters) validate() error {
	return requireAll(p.fields())
}

// CK_SKIPJACK_RELAYX_PARAMS is seven length and pointer pairs, in field order.
func (p *SkipjackRelayXParameters) marshalCK(e *encodeState) error {
	for _, f := range p.fields() {
		e.EncodeLenPtr(f.buf.ref())
	}
	return e.Err()
}

func (p *SkipjackRelayXParameters) unmarshalCK(d *decodeState) error {
	for _, f := range p.fields() {
		*f.buf = d.lenBytes()
	}
	return d.Err()
}
