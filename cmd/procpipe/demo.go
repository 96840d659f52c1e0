package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/nao1215/procpipe/internal/log"
	"github.com/nao1215/procpipe/internal/model"
	"github.com/nao1215/procpipe/internal/processor"
	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a guided tour of the processing pipeline",
		Long: `Demo exercises every part of the pipeline with sample payloads:
text and data processing, feature flag overrides, asynchronous and
batch processing, error handling, and the status lifecycle.

No flags are required; output goes to stdout.`,
		RunE: runDemoCmd,
	}
}

// runDemoCmd executes the demo command.
func runDemoCmd(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	demos := []struct {
		title string
		run   func(context.Context, io.Writer, *slog.Logger) error
	}{
		{"Text Processing", demoText},
		{"Feature Override", demoFeatureOverride},
		{"Data Processing", demoData},
		{"Asynchronous Processing", demoAsync},
		{"Batch Processing", demoBatch},
		{"Error Handling", demoErrors},
		{"Status Lifecycle", demoStatuses},
	}

	for _, d := range demos {
		fmt.Fprintf(out, "=== %s ===\n", d.title)
		if err := d.run(ctx, out, logger); err != nil {
			return fmt.Errorf("%s demo failed: %w", d.title, err)
		}
		fmt.Fprintln(out)
	}

	return nil
}

// demoText shows text processing with configured default features.
func demoText(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	defaults := model.NewFeatureSet()
	defaults.Enable(processor.FeatureWordCount)

	factory := processor.NewFactory(nil,
		processor.WithFactoryLogger(logger),
		processor.WithFactoryDefaults(defaults),
	)

	proc, err := factory.New(processor.KindText)
	if err != nil {
		return err
	}
	defer proc.Close()

	input := "  Hello   World   from   procpipe  "
	result, err := proc.Process(ctx, &input, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Input:  %q\n", input)
	fmt.Fprintf(out, "Output: %q\n", result.Value)
	fmt.Fprintf(out, "State:  %s\n", proc.Statistics())
	return nil
}

// demoFeatureOverride shows that a per-call feature set replaces the
// defaults entirely rather than merging with them.
func demoFeatureOverride(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	defaults := model.NewFeatureSet()
	defaults.Enable(processor.FeatureWordCount)

	factory := processor.NewFactory(nil,
		processor.WithFactoryLogger(logger),
		processor.WithFactoryDefaults(defaults),
	)

	proc, err := factory.New(processor.KindText)
	if err != nil {
		return err
	}
	defer proc.Close()

	input := "feature flags replace defaults"

	withDefaults, err := proc.Process(ctx, &input, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Defaults (word_count): %q\n", withDefaults.Value)

	override := model.NewFeatureSet()
	override.Enable(processor.FeatureUppercase)
	overridden, err := proc.Process(ctx, &input, override)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Override (uppercase):  %q\n", overridden.Value)
	return nil
}

// demoData shows the data processor with the statistics feature.
func demoData(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	factory := processor.NewFactory(nil, processor.WithFactoryLogger(logger))

	proc, err := factory.New(processor.KindData)
	if err != nil {
		return err
	}
	defer proc.Close()

	feats := model.NewFeatureSet()
	feats.Enable(processor.FeatureStatistics)

	input := "payload"
	result, err := proc.Process(ctx, &input, feats)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Input:  %q\n", input)
	fmt.Fprintf(out, "Output: %q\n", result.Value)
	return nil
}

// demoAsync shows asynchronous processing through the worker pool.
func demoAsync(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	factory := processor.NewFactory(nil, processor.WithFactoryLogger(logger))

	proc, err := factory.New(processor.KindText)
	if err != nil {
		return err
	}
	defer proc.Close()

	inputs := []string{"first payload", "second payload", "third payload"}
	futures := make([]*processor.Future[string], len(inputs))
	for i := range inputs {
		futures[i] = proc.ProcessAsync(ctx, &inputs[i], nil)
	}

	for i, f := range futures {
		result, err := f.Wait(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Future %d: %q\n", i, result.Value)
	}

	fmt.Fprintf(out, "Processed: %d\n", proc.ProcessedCount())
	return nil
}

// demoBatch shows batch processing with an absent payload in the middle.
func demoBatch(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	factory := processor.NewFactory(nil, processor.WithFactoryLogger(logger))

	proc, err := factory.New(processor.KindText)
	if err != nil {
		return err
	}
	defer proc.Close()

	first, third := "first", "third"
	items := []*string{&first, nil, &third}

	results := proc.ProcessBatch(ctx, items, nil)
	for i, r := range results {
		if r.OK {
			fmt.Fprintf(out, "Item %d: %q\n", i, r.Value)
		} else {
			fmt.Fprintf(out, "Item %d: (empty)\n", i)
		}
	}

	fmt.Fprintf(out, "Processed: %d of %d\n", proc.ProcessedCount(), len(items))
	return nil
}

// demoErrors shows the failure path and the typed processing error.
func demoErrors(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	factory := processor.NewFactory(nil, processor.WithFactoryLogger(logger))

	proc, err := factory.New(processor.KindText)
	if err != nil {
		return err
	}
	defer proc.Close()

	empty := ""
	_, err = proc.Process(ctx, &empty, nil)
	if err == nil {
		return errors.New("expected empty payload to fail")
	}

	var procErr *processor.ProcessingError
	if errors.As(err, &procErr) {
		fmt.Fprintf(out, "Typed error: %s\n", procErr.Error())
	}
	fmt.Fprintf(out, "Status after failure: %s\n", proc.Status())

	// Unknown kinds fail at creation, not at processing time.
	if _, err := factory.New("image"); err != nil {
		fmt.Fprintf(out, "Factory error: %v\n", err)
	}
	return nil
}

// demoStatuses prints the status table with labels and priorities.
func demoStatuses(_ context.Context, out io.Writer, _ *slog.Logger) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tDESCRIPTION\tPRIORITY\tTERMINAL\tSUCCESSFUL")

	for _, s := range model.Statuses() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%t\n",
			s, s.Description(), s.Priority(), s.IsTerminal(), s.IsSuccessful())
	}

	return w.Flush()
}
