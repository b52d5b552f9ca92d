// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and both console and JSON encodings.
//
// # Run Correlation
//
// Each CLI invocation gets a run ID. The WithRunID helper attaches it to the
// logger so that all entries belonging to one combine or publish run can be
// correlated, e.g. when the job runs inside a larger build pipeline.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Combining icons")
package logger
