//go:build pkcs11

package p11

import (
	"errors"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/flume"
	"github.com/google/uuid"
	"github.com/miekg/pkcs11"
)

var moduleLog = flume.New("ckparams_p11")

// Module is a loaded and initialized PKCS#11 module, bound to one token.
type Module struct {
	ctx  *pkcs11.Ctx
	slot uint
	pin  string
	log  flume.Logger
}

// Open loads the module and finds the configured token.
func Open(cfg *Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := pkcs11.New(cfg.Library)
	if ctx == nil {
		return nil, merry.Errorf("failed to load PKCS#11 library %s", cfg.Library)
	}
	if err := ctx.Initialize(); err != nil && !isCKR(err, pkcs11.CKR_CRYPTOKI_ALREADY_INITIALIZED) {
		ctx.Destroy()
		return nil, merry.Prepend(err, "initializing PKCS#11 module")
	}
	m := &Module{ctx: ctx, pin: cfg.PIN}
	slot, err := m.findSlot(cfg)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	m.slot = slot
	m.log = moduleLog.With("library", cfg.Library, "slot", slot)
	m.log.Debug("opened module", "config", cfg.String())
	return m, nil
}

func (m *Module) findSlot(cfg *Config) (uint, error) {
	slots, err := m.ctx.GetSlotList(true)
	if err != nil {
		return 0, merry.Prepend(err, "listing slots")
	}
	for _, slot := range slots {
		if cfg.TokenLabel == "" {
			if slot == *cfg.Slot {
				return slot, nil
			}
			continue
		}
		info, err := m.ctx.GetTokenInfo(slot)
		if err != nil {
			continue
		}
		if strings.TrimRight(info.Label, " \x00") == cfg.TokenLabel {
			return slot, nil
		}
	}
	if cfg.TokenLabel != "" {
		return 0, merry.Here(ErrTokenNotFound).Appendf("no token labeled %q", cfg.TokenLabel)
	}
	return 0, merry.Here(ErrTokenNotFound).Appendf("no token in slot %d", *cfg.Slot)
}

// Close finalizes and unloads the module.  Sessions must be closed first.
func (m *Module) Close() error {
	err := m.ctx.Finalize()
	m.ctx.Destroy()
	if err != nil {
		return merry.Prepend(err, "finalizing PKCS#11 module")
	}
	return nil
}

// OpenSession opens a read/write session, and logs in if the config had a
// PIN.
func (m *Module) OpenSession() (*Session, error) {
	h, err := m.ctx.OpenSession(m.slot, pkcs11.CKF_SERIAL_SESSION|pkcs11.CKF_RW_SESSION)
	if err != nil {
		return nil, merry.Prepend(err, "opening session")
	}
	if m.pin != "" {
		if err := m.ctx.Login(h, pkcs11.CKU_USER, m.pin); err != nil && !isCKR(err, pkcs11.CKR_USER_ALREADY_LOGGED_IN) {
			_ = m.ctx.CloseSession(h)
			return nil, merry.Prepend(err, "logging in")
		}
	}
	s := &Session{
		ID:     uuid.New(),
		Handle: ckparams.SessionHandle(h),
		module: m,
		handle: h,
	}
	s.log = m.log.With("session", s.ID, "handle", h)
	s.log.Debug("opened session")
	return s, nil
}

func isCKR(err error, code uint) bool {
	var e pkcs11.Error
	return errors.As(err, &e) && e == pkcs11.Error(code)
}
