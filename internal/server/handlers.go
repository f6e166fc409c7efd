package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finstat-dev/finstat/internal/model"
	"github.com/finstat-dev/finstat/internal/report"
)

const dateFormat = "2006-01-02"

// recentLimit caps the transaction history shown on the dashboard.
const recentLimit = 10

type amountView struct {
	Text     string
	Negative bool
}

type monthRow struct {
	Month   string
	Income  string
	Expense string
	Net     amountView
}

type categoryRow struct {
	Category string
	Total    string
}

type positionRow struct {
	Kind  string
	Total string
}

type entryRow struct {
	Date        string
	Kind        string
	Category    string
	Description string
	Amount      string
	Source      string
}

type dashboardView struct {
	HasRecords   bool
	NetWorth     amountView
	TotalIncome  string
	TotalExpense string
	NetIncome    amountView
	Months       []monthRow
	Categories   []categoryRow
	Positions    []positionRow
	Recent       []entryRow
	Kinds        []model.Kind
	Sources      []string
	Today        string
}

func (s *Server) amount(d decimal.Decimal) string {
	symbol := s.cfg.Display.CurrencySymbol
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

func (s *Server) signedAmount(d decimal.Decimal) amountView {
	return amountView{Text: s.amount(d), Negative: d.IsNegative()}
}

// handleDashboard renders the full dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	records, err := s.store.Load()
	if err != nil {
		slog.ErrorContext(r.Context(), "Loading ledger failed", "error", err)
		http.Error(w, "ledger unavailable", http.StatusInternalServerError)
		return
	}

	view, err := s.buildDashboard(records)
	if err != nil {
		slog.ErrorContext(r.Context(), "Computing metrics failed", "error", err)
		http.Error(w, "metrics unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) buildDashboard(records []model.Record) (*dashboardView, error) {
	netWorth, err := report.NetWorth(records)
	if err != nil {
		return nil, err
	}
	cash, err := report.NetIncome(records, nil)
	if err != nil {
		return nil, err
	}
	flows, err := report.MonthlyCashFlow(records)
	if err != nil {
		return nil, err
	}
	byCategory, err := report.ExpenseBreakdown(records)
	if err != nil {
		return nil, err
	}
	byKind, err := report.PositionBreakdown(records)
	if err != nil {
		return nil, err
	}

	view := &dashboardView{
		HasRecords:   len(records) > 0,
		NetWorth:     s.signedAmount(netWorth),
		TotalIncome:  s.amount(cash.TotalIncome),
		TotalExpense: s.amount(cash.TotalExpense),
		NetIncome:    s.signedAmount(cash.Net),
		Kinds:        model.Kinds,
		Sources:      s.cfg.Sources,
		Today:        time.Now().Format(dateFormat),
	}

	for _, f := range flows {
		view.Months = append(view.Months, monthRow{
			Month:   f.Month,
			Income:  s.amount(f.Income),
			Expense: s.amount(f.Expense),
			Net:     s.signedAmount(f.Income.Sub(f.Expense)),
		})
	}

	// Largest categories first, name as tiebreaker for a stable page.
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := byCategory[categories[i]], byCategory[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})
	for _, c := range categories {
		label := c
		if label == "" {
			label = "(uncategorized)"
		}
		view.Categories = append(view.Categories, categoryRow{Category: label, Total: s.amount(byCategory[c])})
	}

	for _, kind := range []model.Kind{model.KindAsset, model.KindLiability} {
		if total, ok := byKind[kind]; ok {
			view.Positions = append(view.Positions, positionRow{Kind: string(kind), Total: s.amount(total)})
		}
	}

	// Newest entries first.
	for i := len(records) - 1; i >= 0 && len(view.Recent) < recentLimit; i-- {
		rec := records[i]
		view.Recent = append(view.Recent, entryRow{
			Date:        rec.Date.Format(dateFormat),
			Kind:        string(rec.Kind),
			Category:    rec.Category,
			Description: rec.Description,
			Amount:      s.amount(rec.Amount),
			Source:      rec.Source,
		})
	}

	return view, nil
}

// handleAddEntry is the entry form handler: it appends one record and
// redirects back to the dashboard.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if v := r.PostFormValue("date"); v != "" {
		var err error
		date, err = time.Parse(dateFormat, v)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
	}

	kind, err := model.ParseKind(r.PostFormValue("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(r.PostFormValue("amount"))
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	rec := model.Record{
		Date:        date,
		Kind:        kind,
		Category:    r.PostFormValue("category"),
		Description: r.PostFormValue("description"),
		Amount:      amount,
		Source:      r.PostFormValue("source"),
	}

	if _, err := s.store.Append(rec); err != nil {
		if errors.Is(err, model.ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.ErrorContext(r.Context(), "Appending record failed", "error", err)
		http.Error(w, "saving entry failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
