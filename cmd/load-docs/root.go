package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/josinaldojr/docchat/internal/config"
	"github.com/josinaldojr/docchat/internal/docs"
	"github.com/josinaldojr/docchat/internal/logging"
)

// newRootCmd extracts the PDFs of a directory and prints the same
// filename -> text object that GET /load_documents returns.
func newRootCmd() *cobra.Command {
	var (
		dir      string
		pretty   bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "load-docs",
		Short:        "Extract text from every PDF in a directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			result, err := docs.NewLoader(dir, logger).Load(cmd.Context())
			if err != nil {
				logger.Error("load failed", zap.String("dir", dir), zap.Error(err))
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(result)
		},
	}

	cfg := config.Load()
	cmd.Flags().StringVarP(&dir, "dir", "d", cfg.DocumentsDir, "directory containing the PDF files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	return cmd
}
