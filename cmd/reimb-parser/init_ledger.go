package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pta-tools/reimb-parser/internal/ledger"
)

var initLedgerCmd = &cobra.Command{
	Use:   "init-ledger",
	Short: "Create an empty ledger workbook at the configured path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Ledger.Path
		if path == "" {
			return fmt.Errorf("ledger.path is not configured")
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("ledger already exists: %s", path)
		}

		book, err := ledger.Create(path, cfg.Ledger.SheetName, logger)
		if err != nil {
			return err
		}
		defer book.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s with sheet %q\n", path, cfg.Ledger.SheetName)
		return nil
	},
}
