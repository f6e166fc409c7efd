package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/model"
)

func newHistoryCommand() *cobra.Command {
	var (
		dir     string
		kindStr string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List all ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind model.Kind
			if kindStr != "" {
				var err error
				kind, err = model.ParseKind(kindStr)
				if err != nil {
					return err
				}
			}
			return runHistory(dir, kind)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	cmd.Flags().StringVar(&kindStr, "type", "", "only show entries of this type")

	return cmd
}

func runHistory(dir string, kind model.Kind) error {
	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return err
	}

	symbol := cfg.Display.CurrencySymbol
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tDESCRIPTION\tAMOUNT\tSOURCE")

	shown := 0
	for _, rec := range records {
		if kind != "" && rec.Kind != kind {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Date.Format(dateFlagFormat),
			rec.Kind,
			rec.Category,
			rec.Description,
			formatAmount(symbol, rec.Amount),
			rec.Source)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%d entries\n", shown)
	return nil
}
