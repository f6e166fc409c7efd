package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finstat-dev/finstat/internal/model"
)

// ErrStorageUnavailable reports a ledger file that exists but cannot be
// read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store persists the full ledger as a single CSV snapshot. Every save
// rewrites the whole file; at the expected data scale (personal use,
// thousands of rows) this is cheaper than maintaining an append-only log.
type Store struct {
	path string
}

// NewStore creates a Store backed by the CSV file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full ledger. A missing file is an empty ledger, not an
// error; an unreadable or malformed file wraps ErrStorageUnavailable.
func (s *Store) Load() ([]model.Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w: %w", s.path, ErrStorageUnavailable, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w: %w", s.path, ErrStorageUnavailable, err)
	}
	return records, nil
}

// Save writes the complete ledger, replacing any previous snapshot.
// There is no partial-write guarantee; a failed save leaves whatever was
// on disk before.
func (s *Store) Save(records []model.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w: %w", ErrStorageUnavailable, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w: %w", s.path, ErrStorageUnavailable, err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("writing ledger %s: %w: %w", s.path, ErrStorageUnavailable, err)
	}
	return nil
}

// Append validates rec, loads the current ledger, and rewrites the full
// snapshot with rec added. Returns the new ledger value so callers can
// recompute derived views without a second load.
func (s *Store) Append(rec model.Record) ([]model.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	records = append(records, rec)
	if err := s.Save(records); err != nil {
		return nil, err
	}
	return records, nil
}
