package ckparams

const (
	DESBlockSize = 8
	AESBlockSize = 16
)

// cbcEncryptData holds the fields shared by the CBC encrypt-data derivation
// mechanisms.  The derived key is the CBC encryption of data under the base
// key.
type cbcEncryptData struct {
	iv   Bytes
	data Bytes
}

func (c *cbcEncryptData) IV() []byte {
	return c.iv.Data()
}

func (c *cbcEncryptData) Data() []byte {
	return c.data.Data()
}

func (c *cbcEncryptData) fields() []field {
	return []field{bufField("iv", &c.iv), bufField("data", &c.data)}
}

func validateCBCEncryptData(c *cbcEncryptData, blockSize int) error {
	if err := requireLen("iv", c.iv, blockSize); err != nil {
		return err
	}
	if err := requirePresent("data", c.data); err != nil {
		return err
	}
	if c.data.Len()%blockSize != 0 {
		return invalid("data", "length must be a multiple of %d, was %d", blockSize, c.data.Len())
	}
	return nil
}

func setCBCIV(c *cbcEncryptData, iv []byte, blockSize int) error {
	next := *c
	next.iv = NewBytes(iv)
	if err := validateCBCEncryptData(&next, blockSize); err != nil {
		return err
	}
	c.iv.Wipe()
	*c = next
	return nil
}

func setCBCData(c *cbcEncryptData, data []byte, blockSize int) error {
	next := *c
	next.data = NewBytes(data)
	if err := validateCBCEncryptData(&next, blockSize); err != nil {
		return err
	}
	c.data.Wipe()
	*c = next
	return nil
}

// CK_{DES,AES}_CBC_ENCRYPT_DATA_PARAMS: iv[blockSize], pData, length
func marshalCBCEncryptData(e *encodeState, c *cbcEncryptData, blockSize int) error {
	e.EncodeFixed(c.iv.ref(), blockSize)
	e.EncodePtrLen(c.data.ref())
	return e.Err()
}

func unmarshalCBCEncryptData(d *decodeState, c *cbcEncryptData, blockSize int) error {
	c.iv = Bytes{data: d.DecodeFixed(blockSize)}
	c.data = d.bytes()
	return d.Err()
}

// DESCBCEncryptDataParameters are the parameters of CKM_DES_CBC_ENCRYPT_DATA
// and CKM_DES3_CBC_ENCRYPT_DATA.
type DESCBCEncryptDataParameters struct {
	cbcEncryptData
}

// NewDESCBCEncryptDataParameters requires an 8 byte iv, and data whose length
// is a multiple of 8.
func NewDESCBCEncryptDataParameters(iv, data []byte) (*DESCBCEncryptDataParameters, error) {
	p := &DESCBCEncryptDataParameters{cbcEncryptData{iv: NewBytes(iv), data: NewBytes(data)}}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetIV replaces the iv.  The parameters are unchanged if the new iv is invalid.
func (p *DESCBCEncryptDataParameters) SetIV(iv []byte) error {
	return setCBCIV(&p.cbcEncryptData, iv, DESBlockSize)
}

// SetData replaces the data.  The parameters are unchanged if the new data is invalid.
func (p *DESCBCEncryptDataParameters) SetData(data []byte) error {
	return setCBCData(&p.cbcEncryptData, data, DESBlockSize)
}

func (p *DESCBCEncryptDataParameters) Equal(other Parameters) bool {
	o, ok := other.(*DESCBCEncryptDataParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *DESCBCEncryptDataParameters) Hash() uint64 {
	return hashFields("DESCBCEncryptData", p.fields())
}

func (p *DESCBCEncryptDataParameters) Clone() Parameters {
	return &DESCBCEncryptDataParameters{cbcEncryptData{iv: p.iv.Clone(), data: p.data.Clone()}}
}

func (p *DESCBCEncryptDataParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *DESCBCEncryptDataParameters) validate() error {
	return validateCBCEncryptData(&p.cbcEncryptData, DESBlockSize)
}

func (p *DESCBCEncryptDataParameters) marshalCK(e *encodeState) error {
	return marshalCBCEncryptData(e, &p.cbcEncryptData, DESBlockSize)
}

func (p *DESCBCEncryptDataParameters) unmarshalCK(d *decodeState) error {
	return unmarshalCBCEncryptData(d, &p.cbcEncryptData, DESBlockSize)
}

// AESCBCEncryptDataParameters are the parameters of CKM_AES_CBC_ENCRYPT_DATA.
type AESCBCEncryptDataParameters struct {
	cbcEncryptData
}

// NewAESCBCEncryptDataParameters requires a 16 byte iv, and data whose length
// is a multiple of 16.
func NewAESCBCEncryptDataParameters(iv, data []byte) (*AESCBCEncryptDataParameters, error) {
	p := &AESCBCEncryptDataParameters{cbcEncryptData{iv: NewBytes(iv), data: NewBytes(data)}}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AESCBCEncryptDataParameters) SetIV(iv []byte) error {
	return setCBCIV(&p.cbcEncryptData, iv, AESBlockSize)
}

func (p *AESCBCEncryptDataParameters) SetData(data []byte) error {
	return setCBCData(&p.cbcEncryptData, data, AESBlockSize)
}

func (p *AESCBCEncryptDataParameters) Equal(other Parameters) bool {
	o, ok := other.(*AESCBCEncryptDataParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *AESCBCEncryptDataParameters) Hash() uint64 {
	return hashFields("AESCBCEncryptData", p.fields())
}

func (p *AESCBCEncryptDataParameters) Clone() Parameters {
	return &AESCBCEncryptDataParameters{cbcEncryptData{iv: p.iv.Clone(), data: p.data.Clone()}}
}

func (p *AESCBCEncryptDataParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *AESCBCEncryptDataParameters) validate() error {
	return validateCBCEncryptData(&p.cbcEncryptData, AESBlockSize)
}

func (p *AESCBCEncryptDataParameters) marshalCK(e *encodeState) error {
	return marshalCBCEncryptData(e, &p.cbcEncryptData, AESBlockSize)
}

func (p *AESCBCEncryptDataParameters) unmarshalCK(d *decodeState) error {
	return unmarshalCBCEncryptData(d, &p.cbcEncryptData, AESBlockSize)
}

// InitializationVectorParameters is the bare iv taken by the CBC and other
// feedback modes of block ciphers, like CKM_AES_CBC_PAD.
type InitializationVectorParameters struct {
	iv Bytes
}

func NewInitializationVectorParameters(iv []byte) (*InitializationVectorParameters, error) {
	p := &InitializationVectorParameters{iv: NewBytes(iv)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *InitializationVectorParameters) IV() []byte {
	return p.iv.Data()
}

func (p *InitializationVectorParameters) fields() []field {
	return []field{bufField("iv", &p.iv)}
}

func (p *InitializationVectorParameters) Equal(other Parameters) bool {
	o, ok := other.(*InitializationVectorParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *InitializationVectorParameters) Hash() uint64 {
	return hashFields("InitializationVector", p.fields())
}

func (p *InitializationVectorParameters) Clone() Parameters {
	return &InitializationVectorParameters{iv: p.iv.Clone()}
}

func (p *InitializationVectorParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *InitializationVectorParameters) validate() error {
	if p.iv.Len() == 0 {
		return invalid("iv", "required")
	}
	return nil
}

func (p *InitializationVectorParameters) marshalCK(e *encodeState) error {
	e.EncodeBytes(p.iv.ref())
	return e.Err()
}

func (p *InitializationVectorParameters) unmarshalCK(d *decodeState) error {
	p.iv = Bytes{data: d.DecodeRest()}
	return d.Err()
}
