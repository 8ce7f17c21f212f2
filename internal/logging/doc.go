// Package logging provides shinkoku-navi's logging infrastructure built on
// charmbracelet/log.
//
// It wraps charmbracelet/log to provide a centralized logger factory with
// component prefixes, level configuration, and stderr-only output. All log
// output goes to stderr; stdout is reserved for the rendered checklist and
// other user-facing output, and the TUI owns the terminal while it runs.
//
// Usage:
//
//	// During CLI initialization (PersistentPreRun):
//	logging.Setup(verbose, quiet, jsonFormat)
//
//	// In each package:
//	var logger = logging.New("table")
//	logger.Info("loading file", "path", "shinkoku.toml")
//
// Setup must be called before New so child loggers inherit the configured
// level and formatter. charmbracelet/log copies state into child loggers at
// creation time; later changes to the default logger do not propagate.
package logging
