package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	s.mode = config.mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayReports prints reports in the requested form.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report, form m.ReportForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := FormatReports(reports, form)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplayValidationErrors prints one line per overlay mismatch.
func (s *SimpleUI) DisplayValidationErrors(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs := joined.Unwrap()
		s.printf("overlay rejected, %d mismatch(es):\n", len(errs))

		for _, e := range errs {
			s.printf("  %v\n", e)
		}

		return
	}

	s.printf("overlay rejected: %v\n", err)
}

// DisplayDiff prints a unified diff of the configuration file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("no changes\n")
		return
	}

	s.printf("%s", diff)
}

// DisplayApplied prints where the edited configuration went.
func (s *SimpleUI) DisplayApplied(ctx context.Context, summary m.ApplySummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if summary.DryRun {
		s.printf("dry run: %d register(s) would change, %s not written\n", summary.Changed, summary.Output)
		return
	}

	s.printf("wrote %s (%d register(s) changed)\n", summary.Output, summary.Changed)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
