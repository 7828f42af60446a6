// Package logging provides a structured logging system for sysforge with
// subsystem-tagged entries and level filtering.
//
// The package is a thin layer over Go's standard slog package. Every entry
// carries a subsystem identifier (for example "Compiler", "Reconciler",
// "ArtifactWriter") so that log output from the different pipeline stages can
// be filtered and correlated.
//
// Usage:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Compiler", "Loaded configuration from %s", path)
//	logging.Error("Reconciler", err, "Reload of %s failed", name)
//
// Init must be called once at startup before any other function in this
// package; entries logged before initialization are dropped.
package logging
