package p11

import (
	"errors"
	"fmt"
	"os"

	"github.com/ansel1/merry"
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid PKCS#11 config")
	// ErrTokenNotFound is returned when no slot holds the configured token.
	ErrTokenNotFound = errors.New("token not found")
)

// Config selects a PKCS#11 module and token.  The token is selected by label
// if TokenLabel is set, otherwise by slot id.
type Config struct {
	// Library is the path of the PKCS#11 module, like
	// /usr/lib/softhsm/libsofthsm2.so.
	Library    string `yaml:"library" json:"library" mapstructure:"library"`
	TokenLabel string `yaml:"label,omitempty" json:"label,omitempty" mapstructure:"label"`
	Slot       *uint  `yaml:"slot,omitempty" json:"slot,omitempty" mapstructure:"slot"`
	// PIN is the user PIN.  Sessions aren't logged in if it is empty.
	PIN string `yaml:"pin,omitempty" json:"pin,omitempty" mapstructure:"pin"`
}

func (c *Config) Validate() error {
	if c == nil {
		return merry.Here(ErrInvalidConfig).Append("nil config")
	}
	if c.Library == "" {
		return merry.Here(ErrInvalidConfig).Append("library path is required")
	}
	if _, err := os.Stat(c.Library); err != nil {
		return merry.Here(ErrInvalidConfig).Appendf("library: %v", err)
	}
	if c.TokenLabel == "" && c.Slot == nil {
		return merry.Here(ErrInvalidConfig).Append("token label or slot is required")
	}
	return nil
}

// String masks the PIN.
func (c *Config) String() string {
	pin := "<not set>"
	if c.PIN != "" {
		pin = "****"
	}
	slot := "<not set>"
	if c.Slot != nil {
		slot = fmt.Sprint(*c.Slot)
	}
	return fmt.Sprintf("Config{Library: %s, TokenLabel: %s, Slot: %s, PIN: %s}", c.Library, c.TokenLabel, slot, pin)
}
