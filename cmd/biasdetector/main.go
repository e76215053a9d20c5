package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"BiasDetector/internal/app"
	"BiasDetector/internal/config"
	"BiasDetector/internal/logging"
	"BiasDetector/pkg/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "biasdetector",
		Short:         "Estimate the bias/objectivity of a news article",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd(), newServeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze the political bias of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level)

			application, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			fmt.Printf("Fetching article from: %s\n", args[0])
			report, err := application.AnalyzeURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			render.Write(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level)

			application, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			return application.Serve(cmd.Context())
		},
	}
}
