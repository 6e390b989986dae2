package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume/flumetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	defer flumetest.Start(t)()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "oaep",
			args: []string{"encode", "oaep", "--abi", "lp64", "--hash", "SHA256", "--mgf", "MGF1_SHA256"},
			want: []string{
				"CKM_RSA_PKCS_OAEP (0x9)",
				"abi=lp64 size=40 segments=1",
				"[0] @0 len=40 align=8 | 50020000000000000200000000000000" + strings.Repeat("00", 24),
			},
		},
		{
			name: "oaep with label",
			args: []string{"encode", "oaep", "--abi", "ilp32", "--source-data", "6c6162656c"},
			want: []string{
				"abi=ilp32 size=25 segments=2",
				"[0] @0 len=20 align=4 | 20020000010000000100000000000000" + "05000000",
				"| +12 -> [1]",
				"[1] @20 len=5 align=1 | 6c6162656c",
			},
		},
		{
			name: "pss",
			args: []string{"encode", "pss", "--abi", "win32", "--salt-length", "32"},
			want: []string{"CKM_RSA_PKCS_PSS", "[0] @0 len=12 align=1 | 200200000100000020000000"},
		},
		{
			name: "des cbc encrypt data",
			args: []string{"encode", "cbc-encrypt-data", "--abi", "lp64", "--mechanism", "DES3_CBC_ENCRYPT_DATA",
				"--iv", "0000000000000000", "--data", strings.Repeat("00", 24)},
			want: []string{"CKM_DES3_CBC_ENCRYPT_DATA", "[1] @24 len=24 align=1"},
		},
		{
			name: "packed",
			args: []string{"encode", "iv", "--abi", "lp64", "--iv", "000102030405060708090a0b0c0d0e0f", "--pack", "--base", "0x1000"},
			want: []string{"CKM_AES_CBC_PAD", "packed @0x1000: 000102030405060708090a0b0c0d0e0f"},
		},
		{
			name: "key material",
			args: []string{"encode", "tls-key-mat", "--abi", "llp64"},
			want: []string{"CKM_TLS_KEY_AND_MAC_DERIVE", "segments=6"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err, out)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	defer flumetest.Start(t)()

	_, err := run(t, "encode", "cbc-encrypt-data", "--iv", "00", "--data", "00")
	assert.True(t, ckparams.Is(err, ckparams.ErrInvalidParameter))

	_, err = run(t, "encode", "iv", "--iv", "0011", "--mechanism", "RSA_PKCS_OAEP")
	assert.True(t, ckparams.Is(err, ckparams.ErrMechanismMismatch))

	_, err = run(t, "encode", "iv", "--iv", "0011", "--abi", "vax")
	assert.True(t, ckparams.Is(err, ckabi.ErrUnknownABI))

	_, err = run(t, "encode", "iv", "--iv", "zz")
	assert.Error(t, err)
}

func TestEncodeFromEnv(t *testing.T) {
	defer flumetest.Start(t)()

	t.Setenv("CKPARAMS_ABI", "win32")
	t.Setenv("CKPARAMS_SALT_LENGTH", "0")
	out, err := run(t, "encode", "pss")
	require.NoError(t, err)
	assert.Contains(t, out, "abi=win32")
	assert.Contains(t, out, "200200000100000000000000")
}

func TestConsts(t *testing.T) {
	defer flumetest.Start(t)()

	out, err := run(t, "consts")
	require.NoError(t, err)
	assert.Contains(t, out, "Mechanism Type")
	assert.Contains(t, out, "CKM_")

	out, err = run(t, "consts", "MaskGenerationFunction")
	require.NoError(t, err)
	assert.Contains(t, out, "0x00000001 CKG_MGF1_SHA1")

	out, err = run(t, "consts", "CKM_", "--parameterized")
	require.NoError(t, err)
	assert.Contains(t, out, "CKM_RSA_PKCS_OAEP")
	assert.NotContains(t, out, "CKM_SHA256\n")

	_, err = run(t, "consts", "nope")
	assert.Error(t, err)
}

func TestABIs(t *testing.T) {
	out, err := run(t, "abis")
	require.NoError(t, err)
	assert.Contains(t, out, "llp64   ulong=4 pointer=8 packed=true")
}

func TestDerive(t *testing.T) {
	defer flumetest.Start(t)()

	for _, abi := range []string{"lp64", "ilp32", "llp64", "win32"} {
		t.Run(abi, func(t *testing.T) {
			out, err := run(t, "derive", "--abi", abi, "--log-level", "debug")
			require.NoError(t, err, out)
			assert.Contains(t, out, "version:           3.3")
			assert.Contains(t, out, "client key:        CKO_SECRET_KEY/CKK_AES")
			assert.Regexp(t, `client IV:\s+[0-9a-f]{32}\n`, out)
		})
	}
}
