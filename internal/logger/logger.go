// Package logger provides structured logging functionality
// using the Uber zap logging library. Diagnostics go to stderr so that
// stdout stays reserved for program output.
package logger

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// Log is a global SugaredLogger instance from the zap logging library.
// It is a no-op logger until Init is called.
var Log = zap.NewNop().Sugar()

// Init replaces Log with a development logger writing to stderr at the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries to the output.
// Sync errors caused by stderr being a terminal or pipe are ignored.
func Sync() error {
	err := Log.Sync()
	if err == nil || errors.Is(err, os.ErrInvalid) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}
