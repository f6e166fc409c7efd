package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/model"
)

const dateFlagFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var (
		dir         string
		dateStr     string
		kindStr     string
		category    string
		description string
		amountStr   string
		source      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if dateStr != "" {
				var err error
				date, err = time.Parse(dateFlagFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
			}

			kind, err := model.ParseKind(kindStr)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amountStr, err)
			}

			return runAdd(dir, model.Record{
				Date:        date,
				Kind:        kind,
				Category:    category,
				Description: description,
				Amount:      amount,
				Source:      source,
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&kindStr, "type", "", "entry type: Income | Expense | Asset | Liability (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&category, "category", "", "grouping label, e.g. Salary, Rent, Food")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&amountStr, "amount", "", "non-negative amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&source, "source", "", "account/instrument label, e.g. Checking")

	return cmd
}

func runAdd(dir string, rec model.Record) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}

	records, err := store.Append(rec)
	if err != nil {
		return err
	}

	label := rec.Category
	if label == "" {
		label = "uncategorized"
	}
	fmt.Printf("Added %s of %s (%s), %d records total\n",
		rec.Kind, formatAmount(cfg.Display.CurrencySymbol, rec.Amount), label, len(records))
	return nil
}
