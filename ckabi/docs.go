// Package ckabi encodes and decodes PKCS#11 structures in the native layout
// of a particular platform ABI.
//
// The encoder produces a Block: the parameter structure itself, plus the
// out-of-line buffers and nested structures it points to.  Blocks are
// position independent.  Pack lays a block out at a concrete address,
// patching the pointer slots, so it can be handed to a cryptoki library.
// Unpack reads back whatever the library wrote into the memory.
//
//	e := ckabi.NewEncoder(ckabi.LP64)
//	e.EncodeULong(uint64(ck.MechanismTypeSHA256))
//	e.EncodeULong(uint64(ck.MaskGenerationFunctionMGF1_SHA256))
//	e.EncodeULong(32)
//	blk, err := e.Block()
package ckabi
