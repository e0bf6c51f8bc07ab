// Package cmd implements the headscan CLI using Cobra.
// The root command runs the whole pipeline once:
// fetch → extract → aggregate → report → (optional) write.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/headscan/core"
	"github.com/gaurav-prasanna/headscan/core/config"
	"github.com/gaurav-prasanna/headscan/core/extract"
	"github.com/gaurav-prasanna/headscan/core/fetch"
	"github.com/gaurav-prasanna/headscan/core/logging"
	"github.com/gaurav-prasanna/headscan/core/output"
	"github.com/gaurav-prasanna/headscan/core/render"
	"github.com/gaurav-prasanna/headscan/core/stats"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

type options struct {
	url    string
	output string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "headscan",
		Short: "Analyze the headings of a web page",
		Long: `headscan fetches a web page, extracts its h1–h6 headings, counts them
per level and prints a report. With --output the heading list is also saved
to a text file.

Examples:
  headscan --url https://example.com
  headscan -u https://example.com -o headings.txt`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return logging.Setup(cfg, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, fetch.New(), extract.New(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "URL of the web page to analyze (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "File path to save the headings to (optional)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

// run executes the pipeline for a single URL and writes the report to out.
func run(
	ctx context.Context,
	opts *options,
	fetcher core.Fetcher,
	extractor core.Extractor,
	out io.Writer,
) error {
	fmt.Fprintf(out, "Analyzing website: %s\n", opts.url)

	// 1. Fetch
	result, err := fetcher.Fetch(ctx, opts.url)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract headings
	headings, err := extractor.Extract(result.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	log.Debug().Int("headings", len(headings)).Msg("extracted headings")

	if len(headings) == 0 {
		fmt.Fprintln(out, "No headings found on the website!")
		return nil
	}

	// 3. Aggregate
	counts := stats.Aggregate(headings)

	// 4. Report
	fmt.Fprintln(out)
	if err := render.Console(out, headings, counts); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	// 5. Save
	if opts.output == "" {
		return nil
	}
	if err := output.New(opts.output).Save(headings); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	fmt.Fprintf(out, "Headings saved to %s.\n", opts.output)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
