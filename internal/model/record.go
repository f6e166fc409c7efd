package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRecord reports a record whose kind is outside the closed
// enumeration or whose amount is negative.
var ErrInvalidRecord = errors.New("invalid record")

// Kind classifies a record's role in net-worth vs. net-income calculations.
type Kind string

const (
	KindIncome    Kind = "Income"
	KindExpense   Kind = "Expense"
	KindAsset     Kind = "Asset"
	KindLiability Kind = "Liability"
)

// Kinds lists the closed enumeration in display order.
var Kinds = []Kind{KindIncome, KindExpense, KindAsset, KindLiability}

// ParseKind matches s against the closed enumeration. Matching is exact
// and case-sensitive.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense, KindAsset, KindLiability:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, s)
}

// Record is one row in ledger.csv.
type Record struct {
	Date        time.Time
	Kind        Kind
	Category    string          // free-form grouping label, never validated against a master list
	Description string          //nolint:revive // plain field name is clearest
	Amount      decimal.Decimal // sign implied by Kind, never stored negative
	Source      string          // account/instrument label, informational only
}

// Validate enforces the closed-enumeration and non-negative-amount
// invariants. Category, Description, and Source are free-form and may
// be empty.
func (r Record) Validate() error {
	if _, err := ParseKind(string(r.Kind)); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrInvalidRecord, r.Amount)
	}
	return nil
}
