package p11

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "libtest.so")
	require.NoError(t, os.WriteFile(lib, []byte("test"), 0o644))
	slot := uint(3)

	tests := []struct {
		name   string
		config *Config
		valid  bool
	}{
		{"nil", nil, false},
		{"by label", &Config{Library: lib, TokenLabel: "ckparams"}, true},
		{"by slot", &Config{Library: lib, Slot: &slot}, true},
		{"no library", &Config{TokenLabel: "ckparams"}, false},
		{"missing library", &Config{Library: "/nonexistent/lib.so", TokenLabel: "ckparams"}, false},
		{"no token", &Config{Library: lib}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, merry.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestConfigString(t *testing.T) {
	slot := uint(0)
	c := &Config{Library: "/lib/p11.so", Slot: &slot, PIN: "1234"}
	assert.Equal(t, "Config{Library: /lib/p11.so, TokenLabel: , Slot: 0, PIN: ****}", c.String())
	assert.NotContains(t, c.String(), "1234")

	c = &Config{Library: "/lib/p11.so", TokenLabel: "ckparams"}
	assert.Equal(t, "Config{Library: /lib/p11.so, TokenLabel: ckparams, Slot: <not set>, PIN: <not set>}", c.String())
}
