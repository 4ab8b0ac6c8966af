package adapt_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"csv-adapter/core/schema"
	"csv-adapter/feature/adapt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testRun wires a service around temp directories, writes the given
// input files, and returns the service together with its directories.
func testRun(t *testing.T, s *schema.Schema, files map[string]string) (*adapt.Service, adapt.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := adapt.Config{
		InputDir:   filepath.Join(root, "input_files"),
		OutputDir:  filepath.Join(root, "valid_files"),
		InvalidDir: filepath.Join(root, "invalid_files"),
		Sink:       adapt.SinkDirectory,
	}
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, name), []byte(content), 0o644))
	}

	sink := &adapt.DirSink{Dir: cfg.OutputDir}
	return adapt.NewService(cfg, s, sink, zap.NewNop()), cfg
}

func TestService_Run(t *testing.T) {
	s := mustSchema(t, []string{"mac", "hostname"},
		schema.Rename{From: "Host name", To: "hostname"},
		schema.Rename{From: "MAC", To: "mac"})

	svc, cfg := testRun(t, s, map[string]string{
		// Needs rename, drop, reorder, and a separator change.
		"messy.csv": "Host name,MAC,extra\nweb-1,aa:bb,x\n",
		// Already in the canonical format.
		"clean.csv": "mac;hostname\ncc:dd;web-2\n",
		// Missing the mac column entirely.
		"broken.csv": "hostname;extra\nweb-3;x\n",
		// Not examined at all.
		"notes.txt": "not a csv",
	})

	report, err := svc.Run(context.Background(), adapt.RunOptions{})
	require.NoError(t, err)

	// Discovery order is sorted by file name.
	require.Len(t, report.Results, 3)
	assert.Equal(t, "broken.csv", report.Results[0].Name)
	assert.Equal(t, "clean.csv", report.Results[1].Name)
	assert.Equal(t, "messy.csv", report.Results[2].Name)

	assert.Equal(t, adapt.StatusFailed, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Err, "mac")
	assert.Equal(t, adapt.StatusWritten, report.Results[1].Status)
	assert.Equal(t, adapt.StatusWritten, report.Results[2].Status)

	assert.Equal(t, []string{"clean.csv", "messy.csv"}, report.Valid())
	assert.NotEmpty(t, report.RunID)

	// The adapted file is canonical: renamed, dropped, reordered,
	// re-emitted with the reference separator.
	out, err := os.ReadFile(filepath.Join(cfg.OutputDir, "messy.csv"))
	require.NoError(t, err)
	assert.Equal(t, "mac;hostname\naa:bb;web-1\n", string(out))

	// The failed file is copied for inspection, input untouched.
	invalid, err := os.ReadFile(filepath.Join(cfg.InvalidDir, "broken.csv"))
	require.NoError(t, err)
	assert.Equal(t, "hostname;extra\nweb-3;x\n", string(invalid))

	in, err := os.ReadFile(filepath.Join(cfg.InputDir, "broken.csv"))
	require.NoError(t, err)
	assert.Equal(t, "hostname;extra\nweb-3;x\n", string(in))
}

func TestService_Run_AlreadyCorrectIsByteIdentical(t *testing.T) {
	s := mustSchema(t, []string{"mac", "hostname"})

	input := "mac;hostname\naa:bb;web-1\ncc:dd;web-2\n"
	svc, cfg := testRun(t, s, map[string]string{"clean.csv": input})

	report, err := svc.Run(context.Background(), adapt.RunOptions{})
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, adapt.StatusWritten, report.Results[0].Status)
	assert.Equal(t, adapt.ActionLog{"file already has the correct format"}, report.Results[0].Actions)

	out, err := os.ReadFile(filepath.Join(cfg.OutputDir, "clean.csv"))
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestService_Run_Deterministic(t *testing.T) {
	s := mustSchema(t, []string{"mac", "hostname"},
		schema.Rename{From: "MAC", To: "mac"})

	files := map[string]string{
		"a.csv": "MAC,hostname,extra\naa:bb,web-1,x\n",
	}

	svc1, _ := testRun(t, s, files)
	svc2, _ := testRun(t, s, files)

	r1, err := svc1.Run(context.Background(), adapt.RunOptions{})
	require.NoError(t, err)
	r2, err := svc2.Run(context.Background(), adapt.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, r1.Results[0].Actions, r2.Results[0].Actions)
}

func TestService_Run_DryRun(t *testing.T) {
	s := mustSchema(t, []string{"mac", "hostname"})

	svc, cfg := testRun(t, s, map[string]string{
		"clean.csv":  "mac;hostname\naa:bb;web-1\n",
		"broken.csv": "hostname;extra\nweb-3;x\n",
	})

	report, err := svc.Run(context.Background(), adapt.RunOptions{DryRun: true})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, adapt.StatusFailed, report.Results[0].Status)
	assert.Equal(t, adapt.StatusAdapted, report.Results[1].Status)
	assert.Empty(t, report.Valid())

	// Nothing is written or copied in a dry run.
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "clean.csv"))
	assert.NoFileExists(t, filepath.Join(cfg.InvalidDir, "broken.csv"))
}

func TestService_Run_MissingInputDir(t *testing.T) {
	s := mustSchema(t, []string{"mac"})
	cfg := adapt.Config{InputDir: filepath.Join(t.TempDir(), "nope")}
	svc := adapt.NewService(cfg, s, &adapt.DirSink{Dir: t.TempDir()}, zap.NewNop())

	_, err := svc.Run(context.Background(), adapt.RunOptions{})
	assert.Error(t, err)
}

type failingSink struct{}

func (failingSink) Name() string { return "failing" }

func (failingSink) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestService_Run_SinkFailureIsFatal(t *testing.T) {
	s := mustSchema(t, []string{"mac", "hostname"})

	root := t.TempDir()
	cfg := adapt.Config{
		InputDir:   filepath.Join(root, "input_files"),
		InvalidDir: filepath.Join(root, "invalid_files"),
	}
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0o755))
	for _, name := range []string{"a.csv", "b.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, name),
			[]byte("mac;hostname\naa:bb;web-1\n"), 0o644))
	}

	svc := adapt.NewService(cfg, s, failingSink{}, zap.NewNop())
	report, err := svc.Run(context.Background(), adapt.RunOptions{})
	require.Error(t, err)

	var werr *adapt.WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "a.csv", werr.Name)

	// The run aborts at the first write failure; b.csv is never tried.
	require.Len(t, report.Results, 1)
}

func TestService_Run_CanceledContext(t *testing.T) {
	s := mustSchema(t, []string{"mac"})
	svc, _ := testRun(t, s, map[string]string{"a.csv": "mac\naa:bb\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, adapt.RunOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
