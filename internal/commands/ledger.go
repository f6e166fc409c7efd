package commands

import (
	"fmt"
	"path/filepath"

	"github.com/finstat-dev/finstat/internal/config"
	"github.com/finstat-dev/finstat/internal/ledger"
)

// openLedger loads the config and ledger store for a finstat directory.
func openLedger(dir string) (*config.Config, *ledger.Store, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config (run 'finstat init' first?): %w", err)
	}

	store := ledger.NewStore(filepath.Join(absDir, cfg.Ledger.File))
	return cfg, store, nil
}
