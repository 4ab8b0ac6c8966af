package adapt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"csv-adapter/core/logger"
	"csv-adapter/core/reconcile"
	"csv-adapter/core/schema"
	"csv-adapter/core/table"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status is the terminal or intermediate state of one file in a run.
type Status string

const (
	StatusPending    Status = "pending"
	StatusParsed     Status = "parsed"
	StatusReconciled Status = "reconciled"
	StatusAdapted    Status = "adapted"
	StatusWritten    Status = "written"
	StatusFailed     Status = "failed"
)

// FileResult records the outcome for one input file.
type FileResult struct {
	// Name is the file name, without directory.
	Name string `json:"name"`

	// Status is the state the file ended the run in. Written and
	// Failed are the terminal states; a dry run stops at Adapted.
	Status Status `json:"status"`

	// Actions lists what the adapter changed, in order.
	Actions ActionLog `json:"actions,omitempty"`

	// Err is the failure reason for failed files.
	Err string `json:"error,omitempty"`
}

// Report is the aggregate outcome of a batch run. Results keep the
// discovery order of the input files.
type Report struct {
	RunID   string        `json:"run_id"`
	Results []FileResult  `json:"results"`
	Elapsed time.Duration `json:"elapsed"`
}

// Valid returns the names of successfully written files, in discovery
// order.
func (r *Report) Valid() []string {
	var names []string
	for _, res := range r.Results {
		if res.Status == StatusWritten {
			names = append(names, res.Name)
		}
	}
	return names
}

// RunOptions controls a single batch run.
type RunOptions struct {
	// DryRun plans and logs every file but writes nothing, and skips
	// the invalid-files copy.
	DryRun bool
}

// Service drives a batch run: it discovers input files and takes each
// one through parse, reconcile, adapt, and write. Files are processed
// one at a time; they share nothing but the read-only schema.
type Service struct {
	cfg    Config
	schema *schema.Schema
	sink   Sink
	logger *zap.Logger
}

// NewService creates a new batch adapter service.
func NewService(cfg Config, s *schema.Schema, sink Sink, l *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		schema: s,
		sink:   sink,
		logger: l,
	}
}

// Run processes every CSV file in the input directory. Per-file errors
// (unparseable, schema mismatch, duplicate columns) skip that file and
// continue; sink failures and an unreadable input directory abort the
// run. The returned report lists every file in discovery order.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	l := logger.WithRun(s.logger, report.RunID)

	names, err := s.discover()
	if err != nil {
		return nil, err
	}

	l.Info("run started",
		zap.Int("files", len(names)),
		zap.String("sink", s.sink.Name()),
		zap.Bool("dry_run", opts.DryRun),
	)

	for _, name := range names {
		// An interrupt stops before the next file; the current file
		// always runs to completion.
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		res, err := s.processFile(ctx, l, name, opts)
		report.Results = append(report.Results, res)
		if err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}
	}

	report.Elapsed = time.Since(start)
	l.Info("adapter tasks completed",
		zap.Duration("elapsed", report.Elapsed),
		zap.Strings("valid_files", report.Valid()),
		zap.Int("failed", len(report.Results)-len(report.Valid())),
	)

	return report, nil
}

// discover lists the input CSV files, sorted by name so runs are
// deterministic regardless of filesystem enumeration order.
func (s *Service) discover() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %s: %w", s.cfg.InputDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// processFile takes one file through the full pipeline. The returned
// error is non-nil only for fatal conditions; per-file failures are
// recorded in the result and the run moves on.
func (s *Service) processFile(ctx context.Context, l *zap.Logger, name string, opts RunOptions) (FileResult, error) {
	fl := logger.WithFile(l, name)
	res := FileResult{Name: name, Status: StatusPending}

	tbl, inSep, err := table.ReadFile(filepath.Join(s.cfg.InputDir, name))
	if err != nil {
		s.fail(fl, &res, err, opts)
		return res, nil
	}
	res.Status = StatusParsed

	plan, err := reconcile.Reconcile(tbl.Header, s.schema)
	if err != nil {
		s.fail(fl, &res, err, opts)
		return res, nil
	}
	res.Status = StatusReconciled

	out, actions := Apply(tbl, plan, inSep, s.schema.DelimiterRune())
	res.Status = StatusAdapted
	res.Actions = actions
	for _, action := range actions {
		fl.Info(action)
	}

	if opts.DryRun {
		return res, nil
	}

	data, err := out.Bytes(s.schema.DelimiterRune())
	if err != nil {
		return res, &WriteError{Name: name, Err: err}
	}
	if err := s.sink.Put(ctx, name, data); err != nil {
		return res, &WriteError{Name: name, Err: err}
	}
	res.Status = StatusWritten

	return res, nil
}

// fail marks a file as skipped and, outside dry runs, copies it to the
// invalid-files directory so it can be inspected later. The input file
// itself is never touched.
func (s *Service) fail(fl *zap.Logger, res *FileResult, err error, opts RunOptions) {
	res.Status = StatusFailed
	res.Err = err.Error()
	fl.Warn("file skipped", zap.Error(err))

	if opts.DryRun || s.cfg.InvalidDir == "" {
		return
	}
	if err := s.copyToInvalid(res.Name); err != nil {
		fl.Warn("could not copy file to invalid directory", zap.Error(err))
	}
}

func (s *Service) copyToInvalid(name string) error {
	data, err := os.ReadFile(filepath.Join(s.cfg.InputDir, name))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.cfg.InvalidDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.cfg.InvalidDir, name), data, 0o644)
}
