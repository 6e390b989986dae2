package ckparams

// ObjectHandleParameters refer to another key, as in CKM_CONCATENATE_BASE_AND_KEY.
// The handle is checked against the session when the encoder has a resolver.
type ObjectHandleParameters struct {
	object *Object
}

func NewObjectHandleParameters(o *Object) (*ObjectHandleParameters, error) {
	p := &ObjectHandleParameters{object: o.clone()}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ObjectHandleParameters) Object() *Object {
	return p.object.clone()
}

func (p *ObjectHandleParameters) fields() []field {
	return []field{objField("object", p.object)}
}

func (p *ObjectHandleParameters) Equal(other Parameters) bool {
	o, ok := other.(*ObjectHandleParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *ObjectHandleParameters) Hash() uint64 {
	return hashFields("ObjectHandle", p.fields())
}

func (p *ObjectHandleParameters) Clone() Parameters {
	return &ObjectHandleParameters{object: p.object.clone()}
}

func (p *ObjectHandleParameters) Wipe() {}

func (p *ObjectHandleParameters) validate() error {
	return requireObject("object", p.object)
}

func (p *ObjectHandleParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(e.object("object", p.object))
	return e.Err()
}

func (p *ObjectHandleParameters) unmarshalCK(d *decodeState) error {
	p.object = d.object("object", d.DecodeULong())
	return d.Err()
}

// KeyDerivationStringDataParameters are the data mixed into the base key by
// CKM_CONCATENATE_BASE_AND_DATA, CKM_CONCATENATE_DATA_AND_BASE,
// CKM_XOR_BASE_AND_DATA, and the ECB encrypt-data mechanisms.
type KeyDerivationStringDataParameters struct {
	data Bytes
}

func NewKeyDerivationStringDataParameters(data []byte) (*KeyDerivationStringDataParameters, error) {
	p := &KeyDerivationStringDataParameters{data: NewBytes(data)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *KeyDerivationStringDataParameters) Data() []byte {
	return p.data.Data()
}

func (p *KeyDerivationStringDataParameters) fields() []field {
	return []field{bufField("data", &p.data)}
}

func (p *KeyDerivationStringDataParameters) Equal(other Parameters) bool {
	o, ok := other.(*KeyDerivationStringDataParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *KeyDerivationStringDataParameters) Hash() uint64 {
	return hashFields("KeyDerivationStringData", p.fields())
}

func (p *KeyDerivationStringDataParameters) Clone() Parameters {
	return &KeyDerivationStringDataParameters{data: p.data.Clone()}
}

func (p *KeyDerivationStringDataParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *KeyDerivationStringDataParameters) validate() error {
	return requirePresent("data", p.data)
}

// CK_KEY_DERIVATION_STRING_DATA: pData, ulLen
func (p *KeyDerivationStringDataParameters) marshalCK(e *encodeState) error {
	e.EncodePtrLen(p.data.ref())
	return e.Err()
}

func (p *KeyDerivationStringDataParameters) unmarshalCK(d *decodeState) error {
	p.data = d.bytes()
	return d.Err()
}

// ExtractParameters is the index of the first bit of the base key to extract,
// the parameter of CKM_EXTRACT_KEY_FROM_KEY.
type ExtractParameters struct {
	bitIndex uint64
}

func NewExtractParameters(bitIndex uint64) *ExtractParameters {
	return &ExtractParameters{bitIndex: bitIndex}
}

func (p *ExtractParameters) BitIndex() uint64 {
	return p.bitIndex
}

func (p *ExtractParameters) fields() []field {
	return []field{numField("bitIndex", p.bitIndex)}
}

func (p *ExtractParameters) Equal(other Parameters) bool {
	o, ok := other.(*ExtractParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *ExtractParameters) Hash() uint64 {
	return hashFields("Extract", p.fields())
}

func (p *ExtractParameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *ExtractParameters) Wipe() {}

func (p *ExtractParameters) validate() error {
	return nil
}

func (p *ExtractParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.bitIndex)
	return e.Err()
}

func (p *ExtractParameters) unmarshalCK(d *decodeState) error {
	p.bitIndex = d.DecodeULong()
	return d.Err()
}
