// Package storage persists one serialized portfolio snapshot and the admin
// session flag under a fixed pair of slots. A slot is a file inside a single
// data directory, addressed through a billy filesystem so tests can run
// against an in-memory medium.
package storage

import (
	"encoding/json"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Slot names mirror the browser build's localStorage keys so an exported
// snapshot stays recognizable.
const (
	snapshotSlot  = "portfolioData.json"
	adminFlagSlot = "isAdmin"
)

// adminFlagTrue is the only value the flag slot may hold to count as admin.
const adminFlagTrue = "true"

// Adapter reads and writes the two slots. Every Save is a full-document
// replace; there is no diffing, versioning, or migration handling.
type Adapter struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// New creates an Adapter on top of the given filesystem. A nil logger is
// replaced with a no-op logger.
func New(fs billy.Filesystem, logger *zap.Logger) (adapter *Adapter) {
	if logger == nil {
		logger = zap.NewNop()
	}
	adapter = &Adapter{
		fs:     fs,
		logger: logger,
	}
	return adapter
}

// Load reads the snapshot slot. An absent slot yields (nil, false). A slot
// that cannot be read, parsed, or that fails the structural schema is logged
// and also yields (nil, false) so the caller falls back to defaults. Load
// never returns an error.
func (a *Adapter) Load() (data *portfolio.Data, ok bool) {
	raw, err := util.ReadFile(a.fs, snapshotSlot)
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Warn("failed to read snapshot slot, falling back to defaults",
				zap.String("slot", snapshotSlot),
				zap.Error(err))
		}
		return nil, false
	}

	err = portfolio.ValidateSnapshot(raw)
	if err != nil {
		a.logger.Warn("persisted snapshot is corrupt, falling back to defaults",
			zap.String("slot", snapshotSlot),
			zap.Error(err))
		return nil, false
	}

	var loaded portfolio.Data
	err = json.Unmarshal(raw, &loaded)
	if err != nil {
		a.logger.Warn("persisted snapshot failed to parse, falling back to defaults",
			zap.String("slot", snapshotSlot),
			zap.Error(err))
		return nil, false
	}

	return &loaded, true
}

// Save serializes the full snapshot and overwrites the slot. The error is
// returned so callers can surface a "changes may not be saved" notice, but
// in-memory state is never rolled back on failure.
func (a *Adapter) Save(data portfolio.Data) (err error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize snapshot")
		return err
	}

	err = util.WriteFile(a.fs, snapshotSlot, raw, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write snapshot slot: %s", snapshotSlot)
		return err
	}

	return err
}

// LoadAdminFlag reads the flag slot. Any value other than the literal "true"
// (including an absent or unreadable slot) yields false.
func (a *Adapter) LoadAdminFlag() (isAdmin bool) {
	raw, err := util.ReadFile(a.fs, adminFlagSlot)
	if err != nil {
		return false
	}
	isAdmin = string(raw) == adminFlagTrue
	return isAdmin
}

// SaveAdminFlag persists the flag slot.
func (a *Adapter) SaveAdminFlag(isAdmin bool) (err error) {
	value := "false"
	if isAdmin {
		value = adminFlagTrue
	}
	err = util.WriteFile(a.fs, adminFlagSlot, []byte(value), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write admin flag slot: %s", adminFlagSlot)
		return err
	}
	return err
}

// ClearAdminFlag removes the flag slot. Clearing an absent slot is not an
// error.
func (a *Adapter) ClearAdminFlag() (err error) {
	err = a.fs.Remove(adminFlagSlot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		err = errors.Wrapf(err, "failed to clear admin flag slot: %s", adminFlagSlot)
		return err
	}
	return err
}
