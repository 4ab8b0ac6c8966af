// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Run Awareness
//
// Every batch run gets a run ID. The WithRun helper attaches it to the
// log entry, ensuring that all logs related to a specific run can be
// correlated. WithFile does the same for the file currently processed.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Run started")
//
//	// Inside the batch loop:
//	l := logger.WithFile(logger.WithRun(log, runID), name)
//	l.Warn("File skipped", zap.Error(err))
package logger
