package ckparams

const (
	// RC2BlockSize is the size of an RC2 block, and of the IV in CK_RC2_CBC_PARAMS.
	RC2BlockSize = 8

	MinRC2EffectiveBits = 1
	MaxRC2EffectiveBits = 1024
)

func validateEffectiveBits(bits uint64) error {
	if bits < MinRC2EffectiveBits || bits > MaxRC2EffectiveBits {
		return invalid("effectiveBits", "must be between %d and %d, was %d", MinRC2EffectiveBits, MaxRC2EffectiveBits, bits)
	}
	return nil
}

// RC2Parameters is the effective key size in bits, the parameter of CKM_RC2_ECB
// and CKM_RC2_MAC.
type RC2Parameters struct {
	effectiveBits uint64
}

func NewRC2Parameters(effectiveBits uint64) (*RC2Parameters, error) {
	p := &RC2Parameters{effectiveBits: effectiveBits}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RC2Parameters) EffectiveBits() uint64 {
	return p.effectiveBits
}

func (p *RC2Parameters) fields() []field {
	return []field{numField("effectiveBits", p.effectiveBits)}
}

func (p *RC2Parameters) Equal(other Parameters) bool {
	o, ok := other.(*RC2Parameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC2Parameters) Hash() uint64 {
	return hashFields("RC2", p.fields())
}

func (p *RC2Parameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *RC2Parameters) Wipe() {}

func (p *RC2Parameters) validate() error {
	return validateEffectiveBits(p.effectiveBits)
}

func (p *RC2Parameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.effectiveBits)
	return e.Err()
}

func (p *RC2Parameters) unmarshalCK(d *decodeState) error {
	p.effectiveBits = d.DecodeULong()
	return d.Err()
}

// RC2CBCParameters are the parameters of CKM_RC2_CBC and CKM_RC2_CBC_PAD.
type RC2CBCParameters struct {
	effectiveBits uint64
	iv            Bytes
}

func NewRC2CBCParameters(effectiveBits uint64, iv []byte) (*RC2CBCParameters, error) {
	p := &RC2CBCParameters{effectiveBits: effectiveBits, iv: NewBytes(iv)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RC2CBCParameters) EffectiveBits() uint64 { return p.effectiveBits }
func (p *RC2CBCParameters) IV() []byte            { return p.iv.Data() }

func (p *RC2CBCParameters) fields() []field {
	return []field{numField("effectiveBits", p.effectiveBits), bufField("iv", &p.iv)}
}

func (p *RC2CBCParameters) Equal(other Parameters) bool {
	o, ok := other.(*RC2CBCParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC2CBCParameters) Hash() uint64 {
	return hashFields("RC2CBC", p.fields())
}

func (p *RC2CBCParameters) Clone() Parameters {
	return &RC2CBCParameters{effectiveBits: p.effectiveBits, iv: p.iv.Clone()}
}

func (p *RC2CBCParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *RC2CBCParameters) validate() error {
	if err := validateEffectiveBits(p.effectiveBits); err != nil {
		return err
	}
	return requireLen("iv", p.iv, RC2BlockSize)
}

// CK_RC2_CBC_PARAMS: ulEffectiveBits, iv[8]
func (p *RC2CBCParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.effectiveBits)
	e.EncodeFixed(p.iv.ref(), RC2BlockSize)
	return e.Err()
}

func (p *RC2CBCParameters) unmarshalCK(d *decodeState) error {
	p.effectiveBits = d.DecodeULong()
	p.iv = Bytes{data: d.DecodeFixed(RC2BlockSize)}
	return d.Err()
}

// RC2MACGeneralParameters are the parameters of CKM_RC2_MAC_GENERAL.
type RC2MACGeneralParameters struct {
	effectiveBits uint64
	macLength     uint64
}

func NewRC2MACGeneralParameters(effectiveBits, macLength uint64) (*RC2MACGeneralParameters, error) {
	p := &RC2MACGeneralParameters{effectiveBits: effectiveBits, macLength: macLength}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RC2MACGeneralParameters) EffectiveBits() uint64 { return p.effectiveBits }
func (p *RC2MACGeneralParameters) MACLength() uint64     { return p.macLength }

func (p *RC2MACGeneralParameters) fields() []field {
	return []field{numField("effectiveBits", p.effectiveBits), numField("macLength", p.macLength)}
}

func (p *RC2MACGeneralParameters) Equal(other Parameters) bool {
	o, ok := other.(*RC2MACGeneralParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC2MACGeneralParameters) Hash() uint64 {
	return hashFields("RC2MACGeneral", p.fields())
}

func (p *RC2MACGeneralParameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *RC2MACGeneralParameters) Wipe() {}

func (p *RC2MACGeneralParameters) validate() error {
	return validateEffectiveBits(p.effectiveBits)
}

// CK_RC2_MAC_GENERAL_PARAMS: ulEffectiveBits, ulMacLength
func (p *RC2MACGeneralParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.effectiveBits)
	e.EncodeULong(p.macLength)
	return e.Err()
}

func (p *RC2MACGeneralParameters) unmarshalCK(d *decodeState) error {
	p.effectiveBits = d.DecodeULong()
	p.macLength = d.DecodeULong()
	return d.Err()
}

// RC5Parameters are the parameters of CKM_RC5_ECB and CKM_RC5_MAC.
type RC5Parameters struct {
	wordSize uint64
	rounds   uint64
}

func NewRC5Parameters(wordSize, rounds uint64) *RC5Parameters {
	return &RC5Parameters{wordSize: wordSize, rounds: rounds}
}

func (p *RC5Parameters) WordSize() uint64 { return p.wordSize }
func (p *RC5Parameters) Rounds() uint64   { return p.rounds }

func (p *RC5Parameters) fields() []field {
	return []field{numField("wordSize", p.wordSize), numField("rounds", p.rounds)}
}

func (p *RC5Parameters) Equal(other Parameters) bool {
	o, ok := other.(*RC5Parameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC5Parameters) Hash() uint64 {
	return hashFields("RC5", p.fields())
}

func (p *RC5Parameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *RC5Parameters) Wipe() {}

func (p *RC5Parameters) validate() error {
	return nil
}

// CK_RC5_PARAMS: ulWordsize, ulRounds
func (p *RC5Parameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.wordSize)
	e.EncodeULong(p.rounds)
	return e.Err()
}

func (p *RC5Parameters) unmarshalCK(d *decodeState) error {
	p.wordSize = d.DecodeULong()
	p.rounds = d.DecodeULong()
	return d.Err()
}

// RC5CBCParameters are the parameters of CKM_RC5_CBC and CKM_RC5_CBC_PAD.  The
// IV should be twice the word size, but that is left to the token.
type RC5CBCParameters struct {
	wordSize uint64
	rounds   uint64
	iv       Bytes
}

func NewRC5CBCParameters(wordSize, rounds uint64, iv []byte) (*RC5CBCParameters, error) {
	p := &RC5CBCParameters{wordSize: wordSize, rounds: rounds, iv: NewBytes(iv)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RC5CBCParameters) WordSize() uint64 { return p.wordSize }
func (p *RC5CBCParameters) Rounds() uint64   { return p.rounds }
func (p *RC5CBCParameters) IV() []byte       { return p.iv.Data() }

func (p *RC5CBCParameters) fields() []field {
	return []field{numField("wordSize", p.wordSize), numField("rounds", p.rounds), bufField("iv", &p.iv)}
}

func (p *RC5CBCParameters) Equal(other Parameters) bool {
	o, ok := other.(*RC5CBCParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC5CBCParameters) Hash() uint64 {
	return hashFields("RC5CBC", p.fields())
}

func (p *RC5CBCParameters) Clone() Parameters {
	return &RC5CBCParameters{wordSize: p.wordSize, rounds: p.rounds, iv: p.iv.Clone()}
}

func (p *RC5CBCParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *RC5CBCParameters) validate() error {
	return requirePresent("iv", p.iv)
}

// CK_RC5_CBC_PARAMS: ulWordsize, ulRounds, pIv, ulIvLen
func (p *RC5CBCParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.wordSize)
	e.EncodeULong(p.rounds)
	e.EncodePtrLen(p.iv.ref())
	return e.Err()
}

func (p *RC5CBCParameters) unmarshalCK(d *decodeState) error {
	p.wordSize = d.DecodeULong()
	p.rounds = d.DecodeULong()
	p.iv = d.bytes()
	return d.Err()
}

// RC5MACGeneralParameters are the parameters of CKM_RC5_MAC_GENERAL.
type RC5MACGeneralParameters struct {
	wordSize  uint64
	rounds    uint64
	macLength uint64
}

func NewRC5MACGeneralParameters(wordSize, rounds, macLength uint64) *RC5MACGeneralParameters {
	return &RC5MACGeneralParameters{wordSize: wordSize, rounds: rounds, macLength: macLength}
}

func (p *RC5MACGeneralParameters) WordSize() uint64  { return p.wordSize }
func (p *RC5MACGeneralParameters) Rounds() uint64    { return p.rounds }
func (p *RC5MACGeneralParameters) MACLength() uint64 { return p.macLength }

func (p *RC5MACGeneralParameters) fields() []field {
	return []field{numField("wordSize", p.wordSize), numField("rounds", p.rounds), numField("macLength", p.macLength)}
}

func (p *RC5MACGeneralParameters) Equal(other Parameters) bool {
	o, ok := other.(*RC5MACGeneralParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *RC5MACGeneralParameters) Hash() uint64 {
	return hashFields("RC5MACGeneral", p.fields())
}

func (p *RC5MACGeneralParameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *RC5MACGeneralParameters) Wipe() {}

func (p *RC5MACGeneralParameters) validate() error {
	return nil
}

// CK_RC5_MAC_GENERAL_PARAMS: ulWordsize, ulRounds, ulMacLength
func (p *RC5MACGeneralParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.wordSize)
	e.EncodeULong(p.rounds)
	e.EncodeULong(p.macLength)
	return e.Err()
}

func (p *RC5MACGeneralParameters) unmarshalCK(d *decodeState) error {
	p.wordSize = d.DecodeULong()
	p.rounds = d.DecodeULong()
	p.macLength = d.DecodeULong()
	return d.Err()
}

// MACGeneralParameters is the MAC length in bytes, the parameter of the
// *_MAC_GENERAL and *_HMAC_GENERAL mechanisms.
type MACGeneralParameters struct {
	macLength uint64
}

func NewMACGeneralParameters(macLength uint64) *MACGeneralParameters {
	return &MACGeneralParameters{macLength: macLength}
}

func (p *MACGeneralParameters) MACLength() uint64 {
	return p.macLength
}

func (p *MACGeneralParameters) fields() []field {
	return []field{numField("macLength", p.macLength)}
}

func (p *MACGeneralParameters) Equal(other Parameters) bool {
	o, ok := other.(*MACGeneralParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *MACGeneralParameters) Hash() uint64 {
	return hashFields("MACGeneral", p.fields())
}

func (p *MACGeneralParameters) Clone() Parameters {
	c := *p
	return &c
}

func (p *MACGeneralParameters) Wipe() {}

func (p *MACGeneralParameters) validate() error {
	return nil
}

func (p *MACGeneralParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.macLength)
	return e.Err()
}

func (p *MACGeneralParameters) unmarshalCK(d *decodeState) error {
	p.macLength = d.DecodeULong()
	return d.Err()
}
