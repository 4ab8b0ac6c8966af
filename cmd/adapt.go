package cmd

import (
	"fmt"

	"csv-adapter/core/config"
	"csv-adapter/core/logger"
	"csv-adapter/core/schema"
	"csv-adapter/core/storage"
	"csv-adapter/feature/adapt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the adapt command
	inputDirFlag   string
	outputDirFlag  string
	schemaFileFlag string
	dryRunFlag     bool
)

// adaptCmd runs the full batch adaptation.
var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt every CSV file in the input directory to the reference schema",
	Long: `Adapt scans the input directory for CSV files and rewrites each one to
match the reference schema: unwanted columns are dropped, aliased
columns are renamed, the survivors are reordered, and the file is
re-emitted with the reference separator.

Files that cannot be adapted (unparseable, missing reference columns,
duplicate columns) are skipped, copied to the invalid-files directory,
and reported; they never abort the run.

Examples:
  # Adapt with defaults (input_files/ -> valid_files/, schema.yaml)
  csv-adapter adapt

  # Explicit directories and schema
  csv-adapter adapt --input /data/in --output /data/out --schema tenant-a.yaml

  # Plan and report without writing anything
  csv-adapter adapt --dry-run`,
	RunE: runAdapt,
}

func init() {
	adaptCmd.Flags().StringVar(&inputDirFlag, "input", "", "Input directory (overrides configuration)")
	adaptCmd.Flags().StringVar(&outputDirFlag, "output", "", "Output directory (overrides configuration)")
	adaptCmd.Flags().StringVar(&schemaFileFlag, "schema", "", "Schema file (overrides configuration)")
	adaptCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Plan and log actions without writing output")

	RootCmd.AddCommand(adaptCmd)
}

func runAdapt(cmd *cobra.Command, args []string) error {
	svc, l, err := buildService(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	report, err := svc.Run(cmd.Context(), adapt.RunOptions{DryRun: dryRunFlag})
	if err != nil {
		return err
	}

	printReport(l, report)
	return nil
}

// buildService loads configuration, applies flag overrides, and wires
// the schema, sink, and logger into a ready batch service.
func buildService(cmd *cobra.Command) (*adapt.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if inputDirFlag != "" {
		cfg.Adapt.InputDir = inputDirFlag
	}
	if outputDirFlag != "" {
		cfg.Adapt.OutputDir = outputDirFlag
	}
	if schemaFileFlag != "" {
		cfg.Schema.File = schemaFileFlag
	}
	if !cfg.Adapt.IsValidSink() {
		return nil, nil, fmt.Errorf("invalid sink %q", cfg.Adapt.Sink)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s, err := schema.Load(cfg.Schema.File)
	if err != nil {
		return nil, nil, err
	}

	sink, err := buildSink(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	return adapt.NewService(cfg.Adapt, s, sink, l), l, nil
}

func buildSink(cmd *cobra.Command, cfg *config.Config) (adapt.Sink, error) {
	switch cfg.Adapt.Sink {
	case adapt.SinkStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return adapt.NewObjectSink(cmd.Context(), client, cfg.Storage)
	default:
		return &adapt.DirSink{Dir: cfg.Adapt.OutputDir}, nil
	}
}

// printReport prints the per-file outcomes and run summary using logger.
func printReport(l *zap.Logger, report *adapt.Report) {
	l = logger.WithRun(l, report.RunID)

	for _, res := range report.Results {
		if res.Status == adapt.StatusFailed {
			l.Warn("file failed",
				zap.String("file", res.Name),
				zap.String("reason", res.Err),
			)
			continue
		}
		l.Info("file processed",
			zap.String("file", res.Name),
			zap.String("status", string(res.Status)),
			zap.Strings("actions", res.Actions),
		)
	}

	l.Info("run summary",
		zap.Int("total", len(report.Results)),
		zap.Strings("valid_files", report.Valid()),
		zap.Int("failed", len(report.Results)-len(report.Valid())),
		zap.Duration("elapsed", report.Elapsed),
	)
}
