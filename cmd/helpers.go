package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/huutaile/portfolio-admin/pkg/config"
	"github.com/huutaile/portfolio-admin/pkg/storage"
	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// openStore loads the configuration and builds the adapter and store every
// command works against.
func openStore() (cfg config.Config, s *store.Store, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, s, err
	}

	// Flag overrides config
	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}

	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create data directory: %s", dir)
		return cfg, s, err
	}

	logger := buildLogger()
	adapter := storage.New(osfs.New(dir), logger)

	s, err = store.New(adapter, logger)
	if err != nil {
		err = errors.Wrap(err, "failed to initialize store")
		return cfg, s, err
	}

	if getVerbose() {
		fmt.Printf("Data directory: %s\n", dir)
	}

	return cfg, s, err
}

// buildLogger returns a development logger when --verbose is set, otherwise
// a no-op logger so normal output stays clean.
func buildLogger() (logger *zap.Logger) {
	if !getVerbose() {
		logger = zap.NewNop()
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

// requireAdmin enforces the view-layer gate: editing commands refuse to run
// without an active admin session. The store itself does not check the flag.
func requireAdmin(s *store.Store) (err error) {
	if !s.IsAdmin() {
		err = errors.New("admin session required: run 'portfolio-admin login' first")
		return err
	}
	return err
}

// warnIfUnsaved tells the admin when the last persistence write failed.
// Edits stay live in memory for the rest of the invocation either way.
func warnIfUnsaved(s *store.Store) {
	if s.Unsaved() {
		fmt.Println("Warning: changes may not be saved (failed to write snapshot)")
	}
}
