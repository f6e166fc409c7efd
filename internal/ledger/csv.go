package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finstat-dev/finstat/internal/model"
)

// Header is the CSV header for ledger.csv.
const Header = "Date,Type,Category,Description,Amount,Source"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colDate     = 0
	colType     = 1
	colCategory = 2
	colDesc     = 3
	colAmount   = 4
	colSource   = 5
)

// ReadRecords reads all records from a ledger.csv reader.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records to a ledger.csv writer (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colType] = string(rec.Kind)
	row[colCategory] = rec.Category
	row[colDesc] = rec.Description
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colSource] = rec.Source
	return row
}

// UnmarshalRecord converts a CSV row to a Record. The type and amount
// invariants are enforced here so a malformed row never enters an
// aggregation.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	kind, err := model.ParseKind(row[colType])
	if err != nil {
		return model.Record{}, err
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	rec := model.Record{
		Date:        date,
		Kind:        kind,
		Category:    row[colCategory],
		Description: row[colDesc],
		Amount:      amount,
		Source:      row[colSource],
	}
	if err := rec.Validate(); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}
