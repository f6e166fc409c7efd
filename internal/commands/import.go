package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/importer"
	"github.com/finstat-dev/finstat/internal/model"
)

func newImportCommand() *cobra.Command {
	var (
		dir    string
		format string
		source string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank CSV exports from the import/ directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, format, source, dryRun)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	cmd.Flags().StringVar(&format, "format", "chase", "bank export format")
	cmd.Flags().StringVar(&source, "source", "Checking", "source label for imported entries")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing the ledger")

	return cmd
}

func runImport(dir, format, source string, dryRun bool) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	_, store, err := openLedger(dir)
	if err != nil {
		return err
	}

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No CSV files in import/.")
		return nil
	}

	var imported []model.Record
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		records, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		for i := range records {
			records[i].Source = source
		}
		imported = append(imported, records...)
		fmt.Printf("%s: %d entries\n", file.Name, len(records))
	}

	if dryRun {
		fmt.Printf("Dry run: %d entries not written\n", len(imported))
		return nil
	}

	// One snapshot rewrite for the whole batch.
	records, err := store.Load()
	if err != nil {
		return err
	}
	for _, rec := range imported {
		if err := rec.Validate(); err != nil {
			return err
		}
	}
	records = append(records, imported...)
	if err := store.Save(records); err != nil {
		return err
	}

	for _, file := range files {
		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d entries, %d records total\n", len(imported), len(records))
	return nil
}
