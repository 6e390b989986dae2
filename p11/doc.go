// Package p11 runs mechanisms with ckparams parameters on a PKCS#11 module,
// through github.com/miekg/pkcs11.
//
// Parameter blocks are encoded for the native ABI, packed into pinned Go
// memory, and handed to the module.  After the call, anything the module wrote
// into the block is decoded back into the parameters, and returned handles are
// resolved against the session.
//
// Module and Session need cgo, and are only built with the pkcs11 build tag.
// Config is always available.
package p11
