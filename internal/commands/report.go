package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/model"
	"github.com/finstat-dev/finstat/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Tabular reports over the ledger",
	}
	reportCmd.AddCommand(newReportMonthlyCommand())
	reportCmd.AddCommand(newReportCategoriesCommand())
	reportCmd.AddCommand(newReportPositionsCommand())
	return reportCmd
}

func newReportMonthlyCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Monthly cash flow (income vs. expenses per month)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportMonthly(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	return cmd
}

func newReportCategoriesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Expense totals grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportCategories(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	return cmd
}

func newReportPositionsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Asset and liability totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportPositions(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	return cmd
}

func runReportMonthly(dir string) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return err
	}

	flows, err := report.MonthlyCashFlow(records)
	if err != nil {
		return err
	}
	if len(flows) == 0 {
		fmt.Println("No income or expense records yet.")
		return nil
	}

	symbol := cfg.Display.CurrencySymbol
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET")
	for _, f := range flows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			f.Month,
			formatAmount(symbol, f.Income),
			formatAmount(symbol, f.Expense),
			formatAmount(symbol, f.Income.Sub(f.Expense)))
	}
	return w.Flush()
}

func runReportCategories(dir string) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return err
	}

	totals, err := report.ExpenseBreakdown(records)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Println("No expense records yet.")
		return nil
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	symbol := cfg.Display.CurrencySymbol
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	for _, c := range categories {
		label := c
		if label == "" {
			label = "(uncategorized)"
		}
		fmt.Fprintf(w, "%s\t%s\n", label, formatAmount(symbol, totals[c]))
	}
	return w.Flush()
}

func runReportPositions(dir string) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return err
	}

	totals, err := report.PositionBreakdown(records)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Println("No asset or liability records yet.")
		return nil
	}

	symbol := cfg.Display.CurrencySymbol
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tTOTAL")
	for _, kind := range []model.Kind{model.KindAsset, model.KindLiability} {
		if total, ok := totals[kind]; ok {
			fmt.Fprintf(w, "%s\t%s\n", kind, formatAmount(symbol, total))
		}
	}
	return w.Flush()
}
