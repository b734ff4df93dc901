package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pta-tools/reimb-parser/internal/common"
	"github.com/pta-tools/reimb-parser/internal/pipeline"
	"github.com/pta-tools/reimb-parser/internal/review"
)

var processCmd = &cobra.Command{
	Use:   "process <file.eml>",
	Short: "Process a single saved email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("file not found: %s", args[0])
		}

		session := review.NewSession(os.Stdin, os.Stdout)
		p := pipeline.NewProcessor(cfg, session, logger, dryRun)

		err := p.ProcessFile(cmd.Context(), args[0])
		if errors.Is(err, common.ErrUserCancelled) {
			session.Info("Cancelled.")
			return nil
		}
		return err
	},
}

var processFolderCmd = &cobra.Command{
	Use:   "process-folder <dir>",
	Short: "Process every .eml file in a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := review.NewSession(os.Stdin, os.Stdout)
		p := pipeline.NewProcessor(cfg, session, logger, dryRun)

		stats, err := p.ProcessFolder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if stats.Failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed", stats.Failed, stats.Processed)
		}
		return nil
	},
}
