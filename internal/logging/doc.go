// Package logging builds the slog loggers used by the validatedinput CLI and
// its tests.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//	})
//
// Tests should use ForTest so records show up through t.Log.
package logging
