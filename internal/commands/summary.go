package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var (
		dir     string
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show key financial metrics",
		Long:  "Shows current net worth plus income, expenses, and net income, optionally restricted to an inclusive date range.",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			return runSummary(dir, period)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date as YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date as YYYY-MM-DD (inclusive)")

	return cmd
}

// parsePeriod builds an optional date range from flag values; both
// bounds must be given together.
func parsePeriod(fromStr, toStr string) (*report.Range, error) {
	if fromStr == "" && toStr == "" {
		return nil, nil
	}
	if fromStr == "" || toStr == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}

	from, err := time.Parse(dateFlagFormat, fromStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --from %q: %w", fromStr, err)
	}
	to, err := time.Parse(dateFlagFormat, toStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --to %q: %w", toStr, err)
	}
	return &report.Range{Start: from, End: to}, nil
}

func runSummary(dir string, period *report.Range) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}

	records, err := store.Load()
	if err != nil {
		return err
	}

	netWorth, err := report.NetWorth(records)
	if err != nil {
		return err
	}
	cash, err := report.NetIncome(records, period)
	if err != nil {
		return err
	}

	symbol := cfg.Display.CurrencySymbol
	periodLabel := "all time"
	if period != nil {
		periodLabel = fmt.Sprintf("%s to %s", period.Start.Format(dateFlagFormat), period.End.Format(dateFlagFormat))
	}

	bold := color.New(color.Bold)
	bold.Println("Key Financial Metrics")
	fmt.Printf("  Net worth:      %s\n", signedAmount(symbol, netWorth))
	fmt.Printf("  Income (%s):  %s\n", periodLabel, formatAmount(symbol, cash.TotalIncome))
	fmt.Printf("  Expenses (%s): %s\n", periodLabel, formatAmount(symbol, cash.TotalExpense))
	fmt.Printf("  Net income:     %s\n", signedAmount(symbol, cash.Net))
	return nil
}
