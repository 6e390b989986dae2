package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenCode(t *testing.T) {
	specs := Specifications{
		Package: "ck",
		Enums: []EnumDef{
			{
				Name:    "Key Derivation Function",
				Comment: "KeyDerivationFunction is a KDF.",
				Prefix:  "CKD_",
				Values: map[string]interface{}{
					"CKD_SHA1_KDF": "0x00000002",
					"CKD_NULL":     float64(1),
				},
			},
		},
	}

	src, err := genCode(&specs)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err, src)

	assert.Contains(t, src, "// Code generated by ckgen; DO NOT EDIT.")
	assert.Contains(t, src, "type KeyDerivationFunction uint32")
	assert.Contains(t, src, "KeyDerivationFunctionNULL     KeyDerivationFunction = 0x00000001")
	assert.Contains(t, src, `KeyDerivationFunctionSHA1_KDF: "CKD_SHA1_KDF",`)
	assert.Contains(t, src, `ckabi.RegisterEnum("Key Derivation Function", &KeyDerivationFunctionEnum)`)
	assert.Contains(t, src, "func ParseKeyDerivationFunction(s string) (KeyDerivationFunction, error) {")
	assert.Less(t, strings.Index(src, "KeyDerivationFunctionNULL "), strings.Index(src, "KeyDerivationFunctionSHA1_KDF "))
}

func TestGenCodeErrors(t *testing.T) {
	tests := map[string]EnumDef{
		"no prefix":      {Name: "X", Values: map[string]interface{}{"CKX_A": 1.0}},
		"wrong prefix":   {Name: "X", Prefix: "CKX_", Values: map[string]interface{}{"CKY_A": 1.0}},
		"bad value":      {Name: "X", Prefix: "CKX_", Values: map[string]interface{}{"CKX_A": "0xZZ"}},
		"negative":       {Name: "X", Prefix: "CKX_", Values: map[string]interface{}{"CKX_A": -1.0}},
		"not a number":   {Name: "X", Prefix: "CKX_", Values: map[string]interface{}{"CKX_A": true}},
		"duplicate name": {Name: "X", Prefix: "CKX_", Values: map[string]interface{}{"CKX_A B": 1.0, "CKX_A_B": 2.0}},
	}
	for name, def := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := genCode(&Specifications{Package: "ck", Enums: []EnumDef{def}})
			require.Error(t, err)
		})
	}
}
