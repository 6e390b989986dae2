package ckparams

import (
	"fmt"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/ckabi"
)

// SSL3RandomData is the client and server random of an SSL3 or TLS handshake.
// It is nested inside the master key and key material parameters.
type SSL3RandomData struct {
	clientRandom Bytes
	serverRandom Bytes
}

func NewSSL3RandomData(clientRandom, serverRandom []byte) (*SSL3RandomData, error) {
	p := &SSL3RandomData{clientRandom: NewBytes(clientRandom), serverRandom: NewBytes(serverRandom)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SSL3RandomData) ClientRandom() []byte { return p.clientRandom.Data() }
func (p *SSL3RandomData) ServerRandom() []byte { return p.serverRandom.Data() }

func (p *SSL3RandomData) fields() []field {
	return []field{bufField("clientRandom", &p.clientRandom), bufField("serverRandom", &p.serverRandom)}
}

func (p *SSL3RandomData) Equal(other Parameters) bool {
	o, ok := other.(*SSL3RandomData)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SSL3RandomData) Hash() uint64 {
	return hashFields("SSL3RandomData", p.fields())
}

func (p *SSL3RandomData) Clone() Parameters {
	c := p.clone()
	return &c
}

func (p *SSL3RandomData) clone() SSL3RandomData {
	return SSL3RandomData{clientRandom: p.clientRandom.Clone(), serverRandom: p.serverRandom.Clone()}
}

func (p *SSL3RandomData) Wipe() {
	wipeFields(p.fields())
}

func (p *SSL3RandomData) validate() error {
	return requireAll(p.fields())
}

// CK_SSL3_RANDOM_DATA: pClientRandom, ulClientRandomLen, pServerRandom, ulServerRandomLen
func (p *SSL3RandomData) marshalCK(e *encodeState) error {
	e.EncodePtrLen(p.clientRandom.ref())
	e.EncodePtrLen(p.serverRandom.ref())
	return e.Err()
}

func (p *SSL3RandomData) unmarshalCK(d *decodeState) error {
	p.clientRandom = d.bytes()
	p.serverRandom = d.bytes()
	return d.Err()
}

// randomInfoFields prefixes the nested random data fields, so they hash
// differently from the fields of the outer structure.
func randomInfoFields(r *SSL3RandomData) []field {
	fs := r.fields()
	for i := range fs {
		fs[i].name = "randomInfo." + fs[i].name
	}
	return fs
}

func encodeRandomInfo(e *encodeState, r *SSL3RandomData) {
	_ = e.EncodeStructure(func(*ckabi.Encoder) error {
		return r.marshalCK(e)
	})
}

func decodeRandomInfo(d *decodeState, r *SSL3RandomData) {
	_ = d.DecodeStructure(func(*ckabi.Decoder) error {
		return r.unmarshalCK(d)
	})
}

// Version is a CK_VERSION.
type Version struct {
	Major byte
	Minor byte
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// SSL3MasterKeyDeriveParameters are the parameters of CKM_SSL3_MASTER_KEY_DERIVE,
// CKM_TLS_MASTER_KEY_DERIVE and their _DH variants.  The token writes the
// protocol version of the pre-master secret into the version; read it back with
// Decoder.DecodeOutput.
type SSL3MasterKeyDeriveParameters struct {
	randomInfo SSL3RandomData
	version    Version
}

func NewSSL3MasterKeyDeriveParameters(randomInfo *SSL3RandomData, version *Version) (*SSL3MasterKeyDeriveParameters, error) {
	if randomInfo == nil {
		return nil, invalid("randomInfo", "required")
	}
	if version == nil {
		return nil, invalid("version", "required")
	}
	p := &SSL3MasterKeyDeriveParameters{randomInfo: randomInfo.clone(), version: *version}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SSL3MasterKeyDeriveParameters) RandomInfo() *SSL3RandomData {
	r := p.randomInfo.clone()
	return &r
}

func (p *SSL3MasterKeyDeriveParameters) Version() Version {
	return p.version
}

func (p *SSL3MasterKeyDeriveParameters) fields() []field {
	return append(randomInfoFields(&p.randomInfo),
		numField("version.major", uint64(p.version.Major)),
		numField("version.minor", uint64(p.version.Minor)),
	)
}

func (p *SSL3MasterKeyDeriveParameters) Equal(other Parameters) bool {
	o, ok := other.(*SSL3MasterKeyDeriveParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SSL3MasterKeyDeriveParameters) Hash() uint64 {
	return hashFields("SSL3MasterKeyDerive", p.fields())
}

func (p *SSL3MasterKeyDeriveParameters) Clone() Parameters {
	return &SSL3MasterKeyDeriveParameters{randomInfo: p.randomInfo.clone(), version: p.version}
}

func (p *SSL3MasterKeyDeriveParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *SSL3MasterKeyDeriveParameters) validate() error {
	return p.randomInfo.validate()
}

// CK_SSL3_MASTER_KEY_DERIVE_PARAMS: RandomInfo, pVersion
func (p *SSL3MasterKeyDeriveParameters) marshalCK(e *encodeState) error {
	encodeRandomInfo(e, &p.randomInfo)
	n, err := e.EncodeSegment(func(e *ckabi.Encoder) error {
		e.EncodeByte(p.version.Major)
		e.EncodeByte(p.version.Minor)
		return e.Err()
	})
	if err != nil {
		return err
	}
	e.EncodePointer(n)
	return e.Err()
}

func (p *SSL3MasterKeyDeriveParameters) unmarshalCK(d *decodeState) error {
	decodeRandomInfo(d, &p.randomInfo)
	p.version = decodeVersion(d)
	return d.Err()
}

func (p *SSL3MasterKeyDeriveParameters) decodeOutput(d *decodeState) error {
	var r SSL3RandomData
	decodeRandomInfo(d, &r)
	v := decodeVersion(d)
	r.Wipe()
	if err := d.Err(); err != nil {
		return err
	}
	p.version = v
	return nil
}

func decodeVersion(d *decodeState) Version {
	target := d.DecodePointer()
	if target < 0 {
		d.Fail(invalid("version", "required"))
		return Version{}
	}
	var v Version
	_ = d.DecodeSegment(target, func(d *ckabi.Decoder) error {
		v.Major = d.DecodeByte()
		v.Minor = d.DecodeByte()
		return d.Err()
	})
	return v
}

// StoreVersion writes a protocol version into an encoded
// SSL3MasterKeyDeriveParameters block, the way a token does.
func StoreVersion(blk *ckabi.Block, v Version) error {
	d := &decodeState{Decoder: ckabi.NewDecoder(blk)}
	var r SSL3RandomData
	decodeRandomInfo(d, &r)
	target := d.DecodePointer()
	if err := d.Err(); err != nil {
		return err
	}
	if target < 0 {
		return invalid("version", "NULL pointer")
	}
	return blk.ReplaceSegment(target, []byte{v.Major, v.Minor})
}

// SSL3KeyMaterialParameters are the parameters of CKM_SSL3_KEY_AND_MAC_DERIVE
// and CKM_TLS_KEY_AND_MAC_DERIVE.
//
// The returned key material is shared with the caller, not copied: the token
// fills it in, and Decoder.DecodeOutput resolves it after the call.
type SSL3KeyMaterialParameters struct {
	macSizeInBits       uint64
	keySizeInBits       uint64
	ivSizeInBits        uint64
	isExport            bool
	randomInfo          SSL3RandomData
	returnedKeyMaterial *SSL3KeyMaterialOutParameters
}

type SSL3KeyMaterialOptions struct {
	MACSizeInBits uint64
	KeySizeInBits uint64
	IVSizeInBits  uint64
	IsExport      bool
	RandomInfo    *SSL3RandomData
	// ReturnedKeyMaterial must have IV buffers of at least IVSizeInBits/8
	// bytes.
	ReturnedKeyMaterial *SSL3KeyMaterialOutParameters
}

func NewSSL3KeyMaterialParameters(opts SSL3KeyMaterialOptions) (*SSL3KeyMaterialParameters, error) {
	if opts.RandomInfo == nil {
		return nil, invalid("randomInfo", "required")
	}
	p := &SSL3KeyMaterialParameters{
		macSizeInBits:       opts.MACSizeInBits,
		keySizeInBits:       opts.KeySizeInBits,
		ivSizeInBits:        opts.IVSizeInBits,
		isExport:            opts.IsExport,
		randomInfo:          opts.RandomInfo.clone(),
		returnedKeyMaterial: opts.ReturnedKeyMaterial,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SSL3KeyMaterialParameters) MACSizeInBits() uint64 { return p.macSizeInBits }
func (p *SSL3KeyMaterialParameters) KeySizeInBits() uint64 { return p.keySizeInBits }
func (p *SSL3KeyMaterialParameters) IVSizeInBits() uint64  { return p.ivSizeInBits }
func (p *SSL3KeyMaterialParameters) IsExport() bool        { return p.isExport }

func (p *SSL3KeyMaterialParameters) RandomInfo() *SSL3RandomData {
	r := p.randomInfo.clone()
	return &r
}

// ReturnedKeyMaterial returns the output parameters, shared.
func (p *SSL3KeyMaterialParameters) ReturnedKeyMaterial() *SSL3KeyMaterialOutParameters {
	return p.returnedKeyMaterial
}

func (p *SSL3KeyMaterialParameters) fields() []field {
	fs := []field{
		numField("macSizeInBits", p.macSizeInBits),
		numField("keySizeInBits", p.keySizeInBits),
		numField("ivSizeInBits", p.ivSizeInBits),
		boolField("isExport", p.isExport),
	}
	fs = append(fs, randomInfoFields(&p.randomInfo)...)
	if p.returnedKeyMaterial != nil {
		for _, f := range p.returnedKeyMaterial.fields() {
			f.name = "returnedKeyMaterial." + f.name
			fs = append(fs, f)
		}
	}
	return fs
}

func (p *SSL3KeyMaterialParameters) Equal(other Parameters) bool {
	o, ok := other.(*SSL3KeyMaterialParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SSL3KeyMaterialParameters) Hash() uint64 {
	return hashFields("SSL3KeyMaterial", p.fields())
}

func (p *SSL3KeyMaterialParameters) Clone() Parameters {
	c := *p
	c.randomInfo = p.randomInfo.clone()
	if p.returnedKeyMaterial != nil {
		c.returnedKeyMaterial = p.returnedKeyMaterial.clone()
	}
	return &c
}

func (p *SSL3KeyMaterialParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *SSL3KeyMaterialParameters) validate() error {
	if err := p.randomInfo.validate(); err != nil {
		return err
	}
	out := p.returnedKeyMaterial
	if out == nil {
		return invalid("returnedKeyMaterial", "required")
	}
	ivLen := p.ivSizeInBits / 8
	if uint64(out.ivClient.Len()) < ivLen {
		return invalid("returnedKeyMaterial.ivClient", "must hold at least %d bytes, holds %d", ivLen, out.ivClient.Len())
	}
	if uint64(out.ivServer.Len()) < ivLen {
		return invalid("returnedKeyMaterial.ivServer", "must hold at least %d bytes, holds %d", ivLen, out.ivServer.Len())
	}
	return nil
}

// CK_SSL3_KEY_MAT_PARAMS: ulMacSizeInBits, ulKeySizeInBits, ulIVSizeInBits, bIsExport,
// RandomInfo, pReturnedKeyMaterial
func (p *SSL3KeyMaterialParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(p.macSizeInBits)
	e.EncodeULong(p.keySizeInBits)
	e.EncodeULong(p.ivSizeInBits)
	e.EncodeBool(p.isExport)
	encodeRandomInfo(e, &p.randomInfo)
	n, err := e.EncodeSegment(func(*ckabi.Encoder) error {
		return p.returnedKeyMaterial.marshalCK(e)
	})
	if err != nil {
		return err
	}
	e.EncodePointer(n)
	return e.Err()
}

func (p *SSL3KeyMaterialParameters) unmarshalCK(d *decodeState) error {
	p.macSizeInBits = d.DecodeULong()
	p.keySizeInBits = d.DecodeULong()
	p.ivSizeInBits = d.DecodeULong()
	p.isExport = d.DecodeBool()
	decodeRandomInfo(d, &p.randomInfo)
	target := d.DecodePointer()
	if target < 0 {
		if d.Err() == nil {
			d.Fail(invalid("returnedKeyMaterial", "required"))
		}
		return d.Err()
	}
	out := &SSL3KeyMaterialOutParameters{}
	_ = d.DecodeSegment(target, func(*ckabi.Decoder) error {
		return out.unmarshalCK(d)
	})
	p.returnedKeyMaterial = out
	return d.Err()
}

// decodeOutput follows pReturnedKeyMaterial and resolves what the token wrote.
func (p *SSL3KeyMaterialParameters) decodeOutput(d *decodeState) error {
	target := skipToKeyMatOut(d)
	if err := d.Err(); err != nil {
		return err
	}
	if target < 0 {
		return invalid("returnedKeyMaterial", "NULL pointer")
	}
	if p.returnedKeyMaterial == nil {
		p.returnedKeyMaterial = &SSL3KeyMaterialOutParameters{}
	}
	out := p.returnedKeyMaterial
	return d.DecodeSegment(target, func(*ckabi.Decoder) error {
		return out.decodeOutput(d)
	})
}

// skipToKeyMatOut reads a CK_SSL3_KEY_MAT_PARAMS up to pReturnedKeyMaterial,
// and returns its target.
func skipToKeyMatOut(d *decodeState) int {
	d.DecodeULong()
	d.DecodeULong()
	d.DecodeULong()
	d.DecodeBool()
	var r SSL3RandomData
	decodeRandomInfo(d, &r)
	r.Wipe()
	return d.DecodePointer()
}

// SSL3KeyMatOut is the content of a CK_SSL3_KEY_MAT_OUT after the token has
// filled it in.
type SSL3KeyMatOut struct {
	ClientMacSecret ObjectHandle
	ServerMacSecret ObjectHandle
	ClientKey       ObjectHandle
	ServerKey       ObjectHandle
	IVClient        []byte
	IVServer        []byte
}

// SSL3KeyMaterialOutParameters receive the keys and IVs derived by
// CKM_SSL3_KEY_AND_MAC_DERIVE.  Before the call, only the IV buffers are set,
// sized to receive the IVs.  After the call, the keys are resolved objects.
type SSL3KeyMaterialOutParameters struct {
	clientMacSecret *Object
	serverMacSecret *Object
	clientKey       *Object
	serverKey       *Object
	ivClient        Bytes
	ivServer        Bytes
}

// NewSSL3KeyMaterialOutParameters takes the buffers the token writes the IVs
// into.  They are copied.  An IV size of zero takes empty buffers.
func NewSSL3KeyMaterialOutParameters(ivClient, ivServer []byte) *SSL3KeyMaterialOutParameters {
	return &SSL3KeyMaterialOutParameters{ivClient: NewBytes(ivClient), ivServer: NewBytes(ivServer)}
}

func (p *SSL3KeyMaterialOutParameters) ClientMacSecret() *Object { return p.clientMacSecret.clone() }
func (p *SSL3KeyMaterialOutParameters) ServerMacSecret() *Object { return p.serverMacSecret.clone() }
func (p *SSL3KeyMaterialOutParameters) ClientKey() *Object       { return p.clientKey.clone() }
func (p *SSL3KeyMaterialOutParameters) ServerKey() *Object       { return p.serverKey.clone() }
func (p *SSL3KeyMaterialOutParameters) IVClient() []byte         { return p.ivClient.Data() }
func (p *SSL3KeyMaterialOutParameters) IVServer() []byte         { return p.ivServer.Data() }

func (p *SSL3KeyMaterialOutParameters) fields() []field {
	return []field{
		objField("clientMacSecret", p.clientMacSecret),
		objField("serverMacSecret", p.serverMacSecret),
		objField("clientKey", p.clientKey),
		objField("serverKey", p.serverKey),
		bufField("ivClient", &p.ivClient),
		bufField("ivServer", &p.ivServer),
	}
}

func (p *SSL3KeyMaterialOutParameters) Equal(other Parameters) bool {
	o, ok := other.(*SSL3KeyMaterialOutParameters)
	return ok && p != nil && o != nil && equalFields(p.fields(), o.fields())
}

func (p *SSL3KeyMaterialOutParameters) Hash() uint64 {
	return hashFields("SSL3KeyMaterialOut", p.fields())
}

func (p *SSL3KeyMaterialOutParameters) Clone() Parameters {
	return p.clone()
}

func (p *SSL3KeyMaterialOutParameters) clone() *SSL3KeyMaterialOutParameters {
	return &SSL3KeyMaterialOutParameters{
		clientMacSecret: p.clientMacSecret.clone(),
		serverMacSecret: p.serverMacSecret.clone(),
		clientKey:       p.clientKey.clone(),
		serverKey:       p.serverKey.clone(),
		ivClient:        p.ivClient.Clone(),
		ivServer:        p.ivServer.Clone(),
	}
}

func (p *SSL3KeyMaterialOutParameters) Wipe() {
	wipeFields(p.fields())
}

func (p *SSL3KeyMaterialOutParameters) validate() error {
	return nil
}

// Resolve fills in the parameters from the native output of the token,
// looking up each returned handle with r.  Nothing is changed unless all four
// handles resolve.
func (p *SSL3KeyMaterialOutParameters) Resolve(native SSL3KeyMatOut, r ObjectResolver) error {
	handles := []struct {
		name string
		h    ObjectHandle
	}{
		{"clientMacSecret", native.ClientMacSecret},
		{"serverMacSecret", native.ServerMacSecret},
		{"clientKey", native.ClientKey},
		{"serverKey", native.ServerKey},
	}
	var objs [4]*Object
	for i, h := range handles {
		o, err := resolveHandle(r, h.name, h.h)
		if err != nil {
			return err
		}
		objs[i] = o
	}
	p.clientMacSecret, p.serverMacSecret, p.clientKey, p.serverKey = objs[0], objs[1], objs[2], objs[3]
	p.ivClient.Wipe()
	p.ivServer.Wipe()
	p.ivClient = NewBytes(native.IVClient)
	p.ivServer = NewBytes(native.IVServer)
	return nil
}

// resolveHandle looks up a handle the token returned.  Unlike the handles of
// input parameters, returned handles must always resolve.
func resolveHandle(r ObjectResolver, name string, h ObjectHandle) (*Object, error) {
	if h == 0 {
		return nil, notFound(name, "the token returned no handle")
	}
	if r == nil {
		return &Object{Handle: h}, nil
	}
	o, err := r.ResolveObject(h)
	if err != nil {
		return nil, notFound(name, "handle %d: %v", h, err)
	}
	if o == nil {
		return nil, notFound(name, "handle %d", h)
	}
	return o, nil
}

func handleOf(o *Object) uint64 {
	if o == nil {
		return 0
	}
	return uint64(o.Handle)
}

// CK_SSL3_KEY_MAT_OUT: hClientMacSecret, hServerMacSecret, hClientKey, hServerKey,
// pIVClient, pIVServer
//
// The IV buffers have no length field.  The token writes IVSizeInBits/8 bytes
// into each.
func (p *SSL3KeyMaterialOutParameters) marshalCK(e *encodeState) error {
	e.EncodeULong(handleOf(p.clientMacSecret))
	e.EncodeULong(handleOf(p.serverMacSecret))
	e.EncodeULong(handleOf(p.clientKey))
	e.EncodeULong(handleOf(p.serverKey))
	e.EncodePointer(e.AddBuffer(p.ivClient.ref()))
	e.EncodePointer(e.AddBuffer(p.ivServer.ref()))
	return e.Err()
}

func (p *SSL3KeyMaterialOutParameters) unmarshalCK(d *decodeState) error {
	p.clientMacSecret = d.object("clientMacSecret", d.DecodeULong())
	p.serverMacSecret = d.object("serverMacSecret", d.DecodeULong())
	p.clientKey = d.object("clientKey", d.DecodeULong())
	p.serverKey = d.object("serverKey", d.DecodeULong())
	p.ivClient = Bytes{data: d.DecodeSegmentData(d.DecodePointer())}
	p.ivServer = Bytes{data: d.DecodeSegmentData(d.DecodePointer())}
	return d.Err()
}

func (p *SSL3KeyMaterialOutParameters) decodeOutput(d *decodeState) error {
	native := SSL3KeyMatOut{
		ClientMacSecret: ObjectHandle(d.DecodeULong()),
		ServerMacSecret: ObjectHandle(d.DecodeULong()),
		ClientKey:       ObjectHandle(d.DecodeULong()),
		ServerKey:       ObjectHandle(d.DecodeULong()),
		IVClient:        d.DecodeSegmentData(d.DecodePointer()),
		IVServer:        d.DecodeSegmentData(d.DecodePointer()),
	}
	if err := d.Err(); err != nil {
		return err
	}
	return p.Resolve(native, d.resolver)
}

// StoreSSL3KeyMatOut writes derived keys and IVs into an encoded
// SSL3KeyMaterialParameters block, the way a token does.  Each IV must be
// exactly the size of the buffer the caller allocated, or empty to leave the
// buffer alone.
func StoreSSL3KeyMatOut(blk *ckabi.Block, native SSL3KeyMatOut) error {
	d := &decodeState{Decoder: ckabi.NewDecoder(blk)}
	target := skipToKeyMatOut(d)
	var ivClient, ivServer int
	if target >= 0 {
		_ = d.DecodeSegment(target, func(d *ckabi.Decoder) error {
			for i := 0; i < 4; i++ {
				d.DecodeULong()
			}
			ivClient = d.DecodePointer()
			ivServer = d.DecodePointer()
			return d.Err()
		})
	}
	if err := d.Err(); err != nil {
		return err
	}
	if target < 0 {
		return invalid("returnedKeyMaterial", "NULL pointer")
	}

	e := ckabi.NewEncoder(blk.ABI)
	e.EncodeULong(uint64(native.ClientMacSecret))
	e.EncodeULong(uint64(native.ServerMacSecret))
	e.EncodeULong(uint64(native.ClientKey))
	e.EncodeULong(uint64(native.ServerKey))
	e.EncodePointer(-1)
	e.EncodePointer(-1)
	out, err := e.Block()
	if err != nil {
		return err
	}
	if err := blk.ReplaceSegment(target, out.Root()); err != nil {
		return err
	}
	if err := storeIV(blk, "ivClient", ivClient, native.IVClient); err != nil {
		return err
	}
	return storeIV(blk, "ivServer", ivServer, native.IVServer)
}

func storeIV(blk *ckabi.Block, name string, target int, iv []byte) error {
	if len(iv) == 0 {
		return nil
	}
	if target < 0 {
		return merry.Prepend(invalid(name, "no buffer for a %d byte IV", len(iv)), "storing key material")
	}
	return blk.ReplaceSegment(target, iv)
}
