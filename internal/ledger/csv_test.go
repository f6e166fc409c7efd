package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstat-dev/finstat/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	records := []model.Record{
		{
			Date:        date(2024, 1, 5),
			Kind:        model.KindIncome,
			Category:    "Salary",
			Description: "January paycheck",
			Amount:      dec("1000.00"),
			Source:      "Checking",
		},
		{
			Date:     date(2024, 1, 10),
			Kind:     model.KindExpense,
			Category: "Rent",
			Amount:   dec("400.00"),
			Source:   "Checking",
		},
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, records)
	require.NoError(t, err)

	// Verify header is present.
	assert.True(t, strings.HasPrefix(buf.String(), "Date,Type,"))

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range records {
		assert.True(t, records[i].Date.Equal(got[i].Date))
		assert.Equal(t, records[i].Kind, got[i].Kind)
		assert.Equal(t, records[i].Category, got[i].Category)
		assert.Equal(t, records[i].Description, got[i].Description)
		assert.True(t, records[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
		assert.Equal(t, records[i].Source, got[i].Source)
	}
}

func TestAmountRendering(t *testing.T) {
	rec := model.Record{
		Date:   date(2024, 3, 1),
		Kind:   model.KindAsset,
		Amount: dec("5000.5"),
		Source: "Savings",
	}

	row := MarshalRecord(rec)
	assert.Equal(t, "5000.50", row[colAmount], "StringFixed(2) should pad fractional digits")

	got, err := UnmarshalRecord(row)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("5000.50")), "amount: got %s", got.Amount)
}

func TestSpecialCharactersInDescription(t *testing.T) {
	rec := model.Record{
		Date:        date(2024, 2, 14),
		Kind:        model.KindExpense,
		Category:    "Food",
		Description: `Dinner at "La Bodega", tip included`,
		Amount:      dec("87.30"),
		Source:      "Credit Card",
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, []model.Record{rec})
	require.NoError(t, err)

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.Description, got[0].Description)
}

func TestUnmarshal_UnknownType(t *testing.T) {
	_, err := UnmarshalRecord([]string{"2024-01-05", "Investment", "Stocks", "", "100.00", "Brokerage"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
}

func TestUnmarshal_NegativeAmount(t *testing.T) {
	_, err := UnmarshalRecord([]string{"2024-01-05", "Expense", "Rent", "", "-400.00", "Checking"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
}

func TestUnmarshal_BadDate(t *testing.T) {
	_, err := UnmarshalRecord([]string{"01/05/2024", "Expense", "Rent", "", "400.00", "Checking"})
	require.Error(t, err)
}

func TestUnmarshal_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalRecord([]string{"2024-01-05", "Expense", "Rent"})
	require.Error(t, err)
}

func TestRead_MalformedRowReportsLine(t *testing.T) {
	csvData := Header + "\n" +
		"2024-01-05,Income,Salary,,1000.00,Checking\n" +
		"2024-01-10,Bogus,Rent,,400.00,Checking\n"

	_, err := ReadRecords(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
}

func TestRead_Empty(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
