package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finstat-dev/finstat/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
	chaseColType    = 4
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns ledger records. The bank's
// transaction type (ACH_DEBIT, etc.) lands in Category so imported rows
// stay groupable until the user recategorizes them.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := parseChaseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseChaseRow(row []string) (model.Record, error) {
	date, err := time.Parse(chaseDateFormat, row[chaseColDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(row[chaseColAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[chaseColAmount], err)
	}

	// Sign carries the direction in bank exports; the ledger stores the
	// direction in Kind and keeps amounts non-negative.
	kind := model.KindIncome
	if amount.IsNegative() {
		kind = model.KindExpense
		amount = amount.Neg()
	}

	return model.Record{
		Date:        date,
		Kind:        kind,
		Category:    row[chaseColType],
		Description: row[chaseColDesc],
		Amount:      amount,
	}, nil
}
