package ckparams_test

import (
	"fmt"

	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
)

func Example_encode() {
	p, err := ckparams.NewRSAPkcsPSSParameters(ck.MechanismTypeSHA256, ck.MaskGenerationFunctionMGF1_SHA256, 32)
	if err != nil {
		panic(err)
	}

	blk, err := ckparams.NewEncoder(ckabi.LP64, nil).Encode(p)
	if err != nil {
		panic(err)
	}

	fmt.Print(blk)

	// Output:
	// abi=lp64 size=24 segments=1
	//   [0] @0 len=24 align=8 | 500200000000000002000000000000002000000000000000
}

func Example_buffers() {
	p, err := ckparams.NewRSAPkcsOAEPParameters(ck.MechanismTypeSHA_1, ck.MaskGenerationFunctionMGF1_SHA1, ck.OAEPSourceDATA_SPECIFIED, []byte("label"))
	if err != nil {
		panic(err)
	}

	blk, err := ckparams.NewEncoder(ckabi.ILP32, nil).Encode(p)
	if err != nil {
		panic(err)
	}

	fmt.Print(blk)

	// Output:
	// abi=ilp32 size=25 segments=2
	//   [0] @0 len=20 align=4 | 2002000001000000010000000000000005000000 | +12 -> [1]
	//   [1] @20 len=5 align=1 | 6c6162656c
}

func Example_validation() {
	_, err := ckparams.NewAESCBCEncryptDataParameters(make([]byte, 8), make([]byte, 16))

	fmt.Println(ckparams.Is(err, ckparams.ErrInvalidParameter))
	fmt.Println(ckparams.Field(err) + ": " + ckparams.Reason(err))

	// Output:
	// true
	// iv: must be 16 bytes, was 8
}
