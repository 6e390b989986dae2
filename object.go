package ckparams

import (
	"fmt"

	"github.com/gemalto/ckparams/ck"
)

// SessionHandle is a CK_SESSION_HANDLE.
type SessionHandle uint64

// ObjectHandle is a CK_OBJECT_HANDLE.  It is only meaningful within the
// session, or at least the token, that issued it.
type ObjectHandle uint64

// Object is a reference to an object on a token, typically a key.
type Object struct {
	Session SessionHandle
	Handle  ObjectHandle
	Class   ck.ObjectClass
	KeyType ck.KeyType
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v/%v(session=%d handle=%d)", o.Class, o.KeyType, o.Session, o.Handle)
}

func (o *Object) clone() *Object {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func objectsEqual(a, b *Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ObjectResolver looks up objects by handle.  Sessions implement it.
type ObjectResolver interface {
	ResolveObject(h ObjectHandle) (*Object, error)
}

// ObjectResolverFunc adapts a function to the ObjectResolver interface.
type ObjectResolverFunc func(h ObjectHandle) (*Object, error)

func (f ObjectResolverFunc) ResolveObject(h ObjectHandle) (*Object, error) {
	return f(h)
}
