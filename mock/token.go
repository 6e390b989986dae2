// Package mock is an in-memory PKCS#11 token.  It receives mechanisms the way
// a real token does, as native parameter blocks, decodes them, and executes a
// small set of key derivation and generation mechanisms.  Mechanisms with
// output parameters have their output written back into the block.
//
// It is used to test parameter encoding end to end, and by the ckparams
// command's derive demo.
package mock

import (
	"errors"
	"sync"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume"
	"github.com/google/uuid"
)

var tokenLog = flume.New("ckparams_mock")

var (
	// ErrMechanismInvalid is CKR_MECHANISM_INVALID.
	ErrMechanismInvalid = errors.New("mechanism invalid")
	// ErrObjectHandleInvalid is CKR_OBJECT_HANDLE_INVALID.
	ErrObjectHandleInvalid = errors.New("object handle invalid")
	// ErrMechanismParamInvalid is CKR_MECHANISM_PARAM_INVALID.
	ErrMechanismParamInvalid = errors.New("mechanism parameter invalid")
	// ErrKeyTypeInconsistent is CKR_KEY_TYPE_INCONSISTENT.
	ErrKeyTypeInconsistent = errors.New("key type inconsistent")
	// ErrKeySizeRange is CKR_KEY_SIZE_RANGE.
	ErrKeySizeRange = errors.New("key size out of range")
	// ErrSessionClosed is CKR_SESSION_CLOSED.
	ErrSessionClosed = errors.New("session closed")
)

// DefaultBase is the address blocks are packed at when a Token has no Base.
const DefaultBase = 0x10000

// Token holds objects and sessions.  Objects are session objects: they are
// only visible to the session which created them, and are destroyed when
// that session is closed.
//
// A Token may be used from multiple goroutines.  Each Session should be used
// by one goroutine at a time.
type Token struct {
	ID uuid.UUID
	// ABI is the native ABI parameter blocks are encoded for.
	ABI ckabi.ABI
	// Base is the address blocks are packed at.
	Base uint64

	mu          sync.Mutex
	lastSession ckparams.SessionHandle
	lastObject  ckparams.ObjectHandle
	sessions    map[ckparams.SessionHandle]*Session
	objects     map[ckparams.ObjectHandle]*object
}

type object struct {
	ckparams.Object
	value []byte
}

func NewToken(abi ckabi.ABI) *Token {
	return &Token{
		ID:       uuid.New(),
		ABI:      abi,
		Base:     DefaultBase,
		sessions: map[ckparams.SessionHandle]*Session{},
		objects:  map[ckparams.ObjectHandle]*object{},
	}
}

// OpenSession opens a new session on the token.
func (t *Token) OpenSession() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastSession++
	s := &Session{
		ID:     uuid.New(),
		Handle: t.lastSession,
		token:  t,
	}
	s.log = tokenLog.With("token", t.ID, "session", s.ID, "handle", s.Handle)
	t.sessions[s.Handle] = s
	s.log.Debug("opened session")
	return s
}

func (t *Token) closeSession(s *Session) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[s.Handle]; !ok {
		return merry.Here(ErrSessionClosed)
	}
	delete(t.sessions, s.Handle)
	destroyed := 0
	for h, o := range t.objects {
		if o.Session == s.Handle {
			wipe(o.value)
			delete(t.objects, h)
			destroyed++
		}
	}
	s.log.Debug("closed session", "destroyedObjects", destroyed)
	return nil
}

func (t *Token) create(s *Session, class ck.ObjectClass, keyType ck.KeyType, value []byte) (*ckparams.Object, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[s.Handle]; !ok {
		return nil, merry.Here(ErrSessionClosed)
	}
	t.lastObject++
	o := &object{
		Object: ckparams.Object{
			Session: s.Handle,
			Handle:  t.lastObject,
			Class:   class,
			KeyType: keyType,
		},
		value: append([]byte(nil), value...),
	}
	t.objects[o.Handle] = o
	s.log.Debug("created object", "object", o.Object.String(), "len", len(value))
	obj := o.Object
	return &obj, nil
}

// lookup returns the object with handle h, if s can see it.
func (t *Token) lookup(s *Session, h ckparams.ObjectHandle) (*object, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[s.Handle]; !ok {
		return nil, merry.Here(ErrSessionClosed)
	}
	o, ok := t.objects[h]
	if !ok || o.Session != s.Handle {
		return nil, merry.Here(ErrObjectHandleInvalid).Appendf("handle %d", h)
	}
	return o, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
