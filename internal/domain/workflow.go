// Package domain provides the core logic of the GPIF descriptor editor.
package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"gpifab.dev/pkg/gpifab/internal/adapter"
	"gpifab.dev/pkg/gpifab/internal/controller"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// DefaultSuffix is appended to the input path to name the edited file.
const DefaultSuffix = ".new"

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// ApplyArgs contains the arguments for applying an overlay to a
// configuration file.
type ApplyArgs struct {
	Config m.Path
	// Output overrides the derived output path when set.
	Output  m.Path
	Overlay io.Reader
	// Suffix derives the output path from Config; DefaultSuffix when empty.
	Suffix    string
	Strict    bool
	Aggregate bool
	DryRun    bool
	ShowDiff  bool
}

// InspectArgs contains the arguments for printing configuration files.
type InspectArgs struct {
	Configs []m.Path
	Form    m.ReportForm
	Strict  bool
	Threads int
}

// Workflow defines the operations offered by the command line.
type Workflow interface {
	Apply(ctx context.Context, args ApplyArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OverlayAdapter
	controller.UI
	Loader
	Rewriter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	overlayAdapter adapter.OverlayAdapter,
	ui controller.UI,
	loader Loader,
	rewriter Rewriter,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		OverlayAdapter:  overlayAdapter,
		UI:              ui,
		Loader:          loader,
		Rewriter:        rewriter,
	}
}

// OutputPath returns the path the edited configuration is written to.
func OutputPath(args ApplyArgs) m.Path {
	if args.Output != "" {
		return args.Output
	}

	suffix := args.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return args.Config + m.Path(suffix)
}

// Apply validates the overlay against the configuration file and writes the
// edited copy. Nothing is written unless every step succeeds.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	if err := w.Start(ctx, controller.WithApplyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	output := OutputPath(args)
	if output == args.Config {
		return ErrOutputIsInput
	}

	file, mutated, err := w.prepare(ctx, args)
	if err != nil {
		return err
	}

	// The file is read again so that the rewrite works on exactly the bytes
	// that were validated.
	current, err := w.ReadSource(ctx, args.Config)
	if err != nil {
		return fmt.Errorf("reread %s: %w", args.Config, err)
	}

	if current.Hash != file.Hash {
		slog.Error("Configuration changed during apply", "path", args.Config, "before", file.Hash, "after", current.Hash)
		return fmt.Errorf("%s: %w", args.Config, ErrSourceChanged)
	}

	rewritten, err := w.Rewrite(ctx, current.Content, mutated.after)
	if err != nil {
		slog.Error("Failed to rewrite configuration", "path", args.Config, "error", err)
		return fmt.Errorf("rewrite %s: %w", args.Config, err)
	}

	if args.ShowDiff {
		diff, err := unifiedDiff(args.Config, output, current.Content, rewritten)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}

		w.DisplayDiff(ctx, diff)
	}

	summary := m.ApplySummary{
		Source:  args.Config,
		Output:  output,
		Changed: ChangedRegisters(mutated.before, mutated.after),
		DryRun:  args.DryRun,
	}

	if !args.DryRun {
		summary.Hash, err = w.write(ctx, args.Config, output, rewritten)
		if err != nil {
			return err
		}
	}

	slog.Info("Applied overlay", "source", summary.Source, "output", summary.Output,
		"changed", summary.Changed, "dry_run", summary.DryRun, "hash", summary.Hash)
	w.DisplayApplied(ctx, summary)

	return nil
}

type mutation struct {
	before []m.Slot
	after  []m.Slot
}

// prepare runs the first phase of Apply: load, parse, validate and mutate.
func (w *workflow) prepare(ctx context.Context, args ApplyArgs) (m.File, mutation, error) {
	file, err := w.ReadSource(ctx, args.Config)
	if err != nil {
		return m.File{}, mutation{}, fmt.Errorf("read %s: %w", args.Config, err)
	}

	model, err := w.Load(ctx, file.Content, args.Strict)
	if err != nil {
		slog.Error("Failed to load configuration", "path", args.Config, "error", err)
		return m.File{}, mutation{}, fmt.Errorf("load %s: %w", args.Config, err)
	}

	rows, err := w.Parse(ctx, args.Overlay)
	if err != nil {
		slog.Error("Failed to parse overlay", "error", err)
		return m.File{}, mutation{}, fmt.Errorf("parse overlay: %w", err)
	}

	if err := Validate(&model, rows, args.Aggregate); err != nil {
		slog.Error("Overlay does not match configuration", "path", args.Config, "error", err)
		w.DisplayValidationErrors(ctx, err)

		return m.File{}, mutation{}, fmt.Errorf("validate overlay: %w", err)
	}

	after, err := Mutate(rows, model.Wavedata)
	if err != nil {
		return m.File{}, mutation{}, fmt.Errorf("mutate: %w", err)
	}

	return file, mutation{before: model.Wavedata, after: after}, nil
}

func (w *workflow) write(ctx context.Context, source, output m.Path, content []byte) (string, error) {
	info, err := w.FileInfo(ctx, source)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", source, err)
	}

	if err := w.WriteFile(ctx, output, content, info.Mode().Perm()); err != nil {
		slog.Error("Failed to write configuration", "path", output, "error", err)
		return "", fmt.Errorf("write %s: %w", output, err)
	}

	hash, err := w.HashFile(ctx, output)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", output, err)
	}

	return hash, nil
}

func unifiedDiff(from, to m.Path, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: string(from),
		ToFile:   string(to),
		Context:  diffContext,
	})
}

// Inspect loads every configuration file and displays their reports in
// argument order.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	reports := make([]m.Report, len(args.Configs))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, path := range args.Configs {
		group.Go(func() error {
			file, err := w.ReadSource(groupCtx, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			model, err := w.Load(groupCtx, file.Content, args.Strict)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			reports[i] = BuildReport(path, model)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return err
	}

	if err := w.DisplayReports(ctx, reports, args.Form); err != nil {
		slog.Error("Failed to display reports", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
