package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstat-dev/finstat/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "ledger.csv"))
}

func TestLoad_MissingFileIsEmptyLedger(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_MalformedFile(t *testing.T) {
	store := newTestStore(t)
	err := os.WriteFile(store.Path(), []byte("Date,Type,Category,Description,Amount,Source\nnot,a,valid\n"), 0o644)
	require.NoError(t, err)

	_, err = store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	records := []model.Record{
		{Date: date(2024, 1, 5), Kind: model.KindIncome, Category: "Salary", Amount: dec("1000.00"), Source: "Checking"},
		{Date: date(2024, 1, 10), Kind: model.KindExpense, Category: "Rent", Amount: dec("400.00"), Source: "Checking"},
	}
	require.NoError(t, store.Save(records))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.KindIncome, got[0].Kind)
	assert.True(t, got[1].Amount.Equal(dec("400.00")))
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Append(model.Record{
		Date:   date(2024, 2, 1),
		Kind:   model.KindAsset,
		Amount: dec("5000.00"),
		Source: "Savings",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))
}

func TestAppend_PreservesExistingRecords(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Append(model.Record{Date: date(2024, 1, 5), Kind: model.KindIncome, Category: "Salary", Amount: dec("1000.00")})
	require.NoError(t, err)

	records, err := store.Append(model.Record{Date: date(2024, 1, 10), Kind: model.KindExpense, Category: "Rent", Amount: dec("400.00")})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Salary", records[0].Category)
	assert.Equal(t, "Rent", records[1].Category)
}

func TestAppend_InvalidRecordLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Append(model.Record{Date: date(2024, 1, 5), Kind: model.KindIncome, Amount: dec("1000.00")})
	require.NoError(t, err)

	_, err = store.Append(model.Record{Date: date(2024, 1, 6), Kind: model.Kind("Investment"), Amount: dec("50.00")})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRecord)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1, "rejected record must not be persisted")
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A directory at the ledger path makes os.Create fail.
	path := filepath.Join(dir, "ledger.csv")
	require.NoError(t, os.Mkdir(path, 0o755))

	store := NewStore(path)
	err := store.Save(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
