// Package report computes derived financial metrics from a ledger
// snapshot. Every function is a stateless pure function of its input:
// nothing is retained between calls, and the same snapshot always
// yields the same result.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finstat-dev/finstat/internal/model"
)

// monthFormat keys monthly buckets; the layout sorts chronologically
// as a plain string.
const monthFormat = "2006-01"

// Range is an inclusive date range at day granularity.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range. A range whose
// start is after its end contains nothing.
func (r Range) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// CashSummary totals income and expenses over a period (flow measure).
type CashSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// MonthFlow is one calendar-month bucket of income and expenses. A kind
// with no records in the month reads as zero, not absent.
type MonthFlow struct {
	Month   string // "2006-01"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// validate rejects the whole snapshot if any record is malformed.
// Aggregating around a bad row would present misleadingly complete
// totals, so the error propagates instead.
func validate(records []model.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}

// NetWorth returns total assets minus total liabilities (stock
// measure). The result may be negative. An empty ledger yields zero.
func NetWorth(records []model.Record) (decimal.Decimal, error) {
	if err := validate(records); err != nil {
		return decimal.Decimal{}, err
	}

	net := decimal.Zero
	for _, rec := range records {
		switch rec.Kind {
		case model.KindAsset:
			net = net.Add(rec.Amount)
		case model.KindLiability:
			net = net.Sub(rec.Amount)
		}
	}
	return net, nil
}

// NetIncome totals income and expenses, optionally restricted to an
// inclusive date range. A nil period means all time. An inverted range
// (start after end) matches no records rather than failing.
func NetIncome(records []model.Record, period *Range) (CashSummary, error) {
	if err := validate(records); err != nil {
		return CashSummary{}, err
	}

	sum := CashSummary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, rec := range records {
		if rec.Kind != model.KindIncome && rec.Kind != model.KindExpense {
			continue
		}
		if period != nil && !period.Contains(rec.Date) {
			continue
		}
		if rec.Kind == model.KindIncome {
			sum.TotalIncome = sum.TotalIncome.Add(rec.Amount)
		} else {
			sum.TotalExpense = sum.TotalExpense.Add(rec.Amount)
		}
	}
	sum.Net = sum.TotalIncome.Sub(sum.TotalExpense)
	return sum, nil
}

// MonthlyCashFlow buckets income and expense records by calendar month
// and returns the buckets sorted chronologically ascending. Storage
// order never affects the output.
func MonthlyCashFlow(records []model.Record) ([]MonthFlow, error) {
	if err := validate(records); err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthFlow)
	for _, rec := range records {
		if rec.Kind != model.KindIncome && rec.Kind != model.KindExpense {
			continue
		}
		key := rec.Date.Format(monthFormat)
		b, ok := buckets[key]
		if !ok {
			b = &MonthFlow{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = b
		}
		if rec.Kind == model.KindIncome {
			b.Income = b.Income.Add(rec.Amount)
		} else {
			b.Expense = b.Expense.Add(rec.Amount)
		}
	}

	flows := make([]MonthFlow, 0, len(buckets))
	for _, b := range buckets {
		flows = append(flows, *b)
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Month < flows[j].Month })
	return flows, nil
}

// ExpenseBreakdown sums expense amounts by category. Grouping is exact
// and case-sensitive; an empty-string category is its own group.
func ExpenseBreakdown(records []model.Record) (map[string]decimal.Decimal, error) {
	if err := validate(records); err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		if rec.Kind != model.KindExpense {
			continue
		}
		totals[rec.Category] = totals[rec.Category].Add(rec.Amount)
	}
	return totals, nil
}

// PositionBreakdown sums asset and liability amounts by kind. A kind
// with no records is omitted from the result, never reported as zero,
// so callers can distinguish "no data" from "zero balance".
func PositionBreakdown(records []model.Record) (map[model.Kind]decimal.Decimal, error) {
	if err := validate(records); err != nil {
		return nil, err
	}

	totals := make(map[model.Kind]decimal.Decimal)
	for _, rec := range records {
		if rec.Kind != model.KindAsset && rec.Kind != model.KindLiability {
			continue
		}
		totals[rec.Kind] = totals[rec.Kind].Add(rec.Amount)
	}
	return totals, nil
}
