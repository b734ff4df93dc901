package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pta-tools/reimb-parser/internal/common"
)

var (
	cfgFile string
	dryRun  bool
	verbose bool

	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reimb-parser",
	Short: "Turn PTA reimbursement request emails into ledger rows",
	Long: `reimb-parser reads saved reimbursement request emails (.eml), OCRs the
attached forms, extracts the request fields, walks you through an
interactive review, and appends the result to the treasurer's XLSX
ledger. Processed attachments are archived into month folders.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile, "config", "c", "", "config file (default: ./config.yaml or ~/.reimb-parser/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&dryRun, "dry-run", "n", false, "do everything except write the ledger and archive",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = common.LoadConfig(cfgFile)
		return err
	}

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(processFolderCmd)
	rootCmd.AddCommand(initLedgerCmd)
	rootCmd.AddCommand(versionCmd)
}
