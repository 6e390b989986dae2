// Package ckparams is a library for building the parameters of PKCS#11 mechanisms,
// and converting them to and from the native structures a PKCS#11 token expects.
//
// Features
//
// Parameters: Each CK_*_PARAMS structure has a Go type, like RSAPkcsOAEPParameters or
// SSL3KeyMaterialParameters.  Values are validated when they are constructed, own copies
// of their buffers, and can be compared, hashed, cloned, and wiped.
//
// Encoder/Decoder: These types convert parameter values to and from ckabi.Block, the native
// memory layout of a structure and the buffers it points to, for a given ABI.  The Decoder
// also reads the output a token writes back into parameters, and resolves the returned
// object handles through a session.
//
// Mechanism: pairs a ck.MechanismType with its parameters, and rejects parameters the
// mechanism doesn't take.
//
// Packages ck and ckabi hold the PKCS#11 constants and the ABI model.  Package mock is an
// in-memory token, useful for tests.  Package p11 passes encoded parameters to a real
// PKCS#11 module.  Everything in it except its Config needs the pkcs11 build tag.
package ckparams
