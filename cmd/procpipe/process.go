package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/nao1215/procpipe/internal/config"
	"github.com/nao1215/procpipe/internal/log"
	"github.com/nao1215/procpipe/internal/model"
	"github.com/nao1215/procpipe/internal/processor"
	"github.com/nao1215/procpipe/internal/report"
	"github.com/spf13/cobra"
)

// NewProcessCmd creates the process command.
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [payloads...]",
		Short: "Process payloads through a configurable pipeline",
		Long: `Process transforms payloads through the selected processor variant.

The text variant applies a fixed transform order (trim, strip special
characters, lowercase) followed by the enabled feature flags:
- uppercase: convert the result to upper case
- word_count: append a " [Words: N]" suffix
- statistics: data variant only, append a length suffix

Feature flags passed with --feature replace the configured defaults
entirely; flags are never merged with the configuration file.

Examples:
  # Process a single payload with the text processor
  procpipe process "  Hello   World  "

  # Process several payloads concurrently
  procpipe process --batch 8 payload1 payload2 payload3

  # Process asynchronously on a two-worker pool
  procpipe process --workers 2 payload1 payload2 payload3

  # Use the data processor with statistics
  procpipe process --kind data --feature statistics payload

  # Read payloads from a file, one per line
  procpipe process --file payloads.txt

  # Output a JSON report to a file
  procpipe process --json -o report.json payload

Configuration file (.procpipe) example:
  features:
    uppercase: true
    word_count: true
  text:
    trim_whitespace: true
    lowercase: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runProcessCmd,
	}

	// Processor selection flags
	cmd.Flags().StringP("kind", "k", config.DefaultKind,
		"Processor variant: text or data (case-insensitive)")
	cmd.Flags().BoolP("uuid", "u", false,
		"Use UUID processor identifiers instead of sequential ones")

	// Concurrency flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrently processed payloads")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Process payloads asynchronously on a worker pool of this size (0 = synchronous)")

	// Input flags
	cmd.Flags().StringP("file", "f", "",
		"Read payloads from a file, one per line")

	// Feature flags
	cmd.Flags().StringArray("feature", nil,
		"Enable a feature flag (repeatable; replaces configured defaults)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .procpipe in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runProcessCmd executes the process command.
func runProcessCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	cfg.Verbose = getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runProcess(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Kind, err = cmd.Flags().GetString("kind")
	if err != nil {
		return nil, err
	}

	cfg.UUIDIdentity, err = cmd.Flags().GetBool("uuid")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.InputFile, err = cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	cfg.Features, err = cmd.Flags().GetStringArray("feature")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load run defaults from the configuration file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.File, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Gather payloads from positional arguments and the input file
	cfg.Inputs = args
	if cfg.InputFile != "" {
		fileInputs, err := readInputFile(cfg.InputFile)
		if err != nil {
			return nil, err
		}
		cfg.Inputs = append(cfg.Inputs, fileInputs...)
	}

	return cfg, nil
}

// readInputFile reads payloads from a file, one per line.
// Blank lines are skipped.
func readInputFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return inputs, nil
}

// buildFeatures returns the feature set for the run.
// Flags from the command line replace the configured defaults entirely;
// a nil return means the processor's own defaults apply.
func buildFeatures(cfg *config.Config) *model.FeatureSet {
	if len(cfg.Features) == 0 {
		return nil
	}

	feats := model.NewFeatureSet()
	for _, name := range cfg.Features {
		feats.Enable(name)
	}
	return feats
}

// newFactory creates the processor factory from the run configuration.
// A non-nil pool is shared by all processors the factory creates; the
// caller owns it and must close it.
func newFactory(cfg *config.Config, pool *processor.Pool, logger *slog.Logger) *processor.Factory {
	var alloc processor.IDAllocator
	if cfg.UUIDIdentity {
		alloc = processor.UUIDAllocator{}
	}

	opts := []processor.FactoryOption{
		processor.WithFactoryLogger(logger),
		processor.WithTextOptions(
			processor.WithTrimWhitespace(cfg.File.Text.TrimWhitespace),
			processor.WithRemoveSpecialChars(cfg.File.Text.RemoveSpecialChars),
			processor.WithLowercase(cfg.File.Text.Lowercase),
		),
	}

	if len(cfg.File.Features) > 0 {
		opts = append(opts, processor.WithFactoryDefaults(model.NewFeatureSetFrom(cfg.File.Features)))
	}

	if pool != nil {
		opts = append(opts, processor.WithFactoryPool(pool))
	}

	return processor.NewFactory(alloc, opts...)
}

// runProcess executes the processing run.
func runProcess(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting run",
		"kind", cfg.Kind,
		"items", len(cfg.Inputs),
		"batchSize", cfg.BatchSize,
	)

	// --workers switches the run onto the asynchronous path: payloads are
	// scheduled on a shared worker pool and collected through futures.
	var pool *processor.Pool
	if cfg.Workers > 0 {
		pool = processor.NewPool(cfg.Workers, 2*cfg.Workers, processor.WithPoolLogger(logger))
		defer pool.Close()
	}

	factory := newFactory(cfg, pool, logger)
	proc, err := factory.New(cfg.Kind)
	if err != nil {
		return err
	}
	defer proc.Close()

	feats := buildFeatures(cfg)

	runReport := model.NewRunReport(strings.ToLower(cfg.Kind))
	startTime := time.Now()

	switch {
	case pool != nil:
		runReport.Items, err = runAsync(ctx, cfg, proc, feats)
	case len(cfg.Inputs) > 1 && cfg.BatchSize > 1:
		runReport.Items, err = runConcurrent(ctx, cfg, proc, feats)
	default:
		runReport.Items, err = runSequential(ctx, cfg, proc, feats)
	}
	if err != nil {
		return err
	}

	runReport.Elapsed = time.Since(startTime).Round(time.Microsecond)
	runReport.Processor = proc.Snapshot()

	logger.Info("run finished",
		"succeeded", runReport.Succeeded(),
		"failed", runReport.Failed(),
		"elapsed", runReport.Elapsed,
	)

	return outputReport(cfg, runReport)
}

// runSequential processes payloads one at a time.
func runSequential(ctx context.Context, cfg *config.Config, proc *processor.Processor[string], feats *model.FeatureSet) ([]model.ItemResult, error) {
	items := make([]model.ItemResult, len(cfg.Inputs))

	for i, input := range cfg.Inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := proc.Process(ctx, &input, feats)
		items[i] = toItemResult(i, input, result, err)
	}

	return items, nil
}

// runAsync schedules every payload on the shared worker pool and collects
// the futures in input order.
func runAsync(ctx context.Context, cfg *config.Config, proc *processor.Processor[string], feats *model.FeatureSet) ([]model.ItemResult, error) {
	futures := make([]*processor.Future[string], len(cfg.Inputs))
	for i := range cfg.Inputs {
		futures[i] = proc.ProcessAsync(ctx, &cfg.Inputs[i], feats)
	}

	items := make([]model.ItemResult, len(futures))
	for i, f := range futures {
		result, err := f.Wait(ctx)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		items[i] = toItemResult(i, cfg.Inputs[i], result, err)
	}

	return items, nil
}

// runConcurrent processes payloads concurrently through a Runner.
func runConcurrent(ctx context.Context, cfg *config.Config, proc *processor.Processor[string], feats *model.FeatureSet) ([]model.ItemResult, error) {
	runner := processor.NewRunner(proc,
		processor.WithConcurrency[string](cfg.BatchSize),
	)

	inputs := make([]*string, len(cfg.Inputs))
	for i := range cfg.Inputs {
		inputs[i] = &cfg.Inputs[i]
	}

	items := make([]model.ItemResult, len(inputs))
	var mu sync.Mutex

	err := runner.RunWithCallback(ctx, inputs, feats, func(index int, result processor.Result[string], err error) {
		mu.Lock()
		defer mu.Unlock()
		items[index] = toItemResult(index, cfg.Inputs[index], result, err)
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// toItemResult converts a single processing outcome into a report item.
func toItemResult(index int, input string, result processor.Result[string], err error) model.ItemResult {
	item := model.ItemResult{
		Index: index,
		Input: input,
	}

	switch {
	case err != nil:
		item.Error = err.Error()
	case result.OK:
		item.OK = true
		item.Output = result.Value
	}

	return item
}

// outputReport outputs the run report in the requested format.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report wrapped with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(runReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(runReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(runReport)
	return err
}
