// Package logging builds the zap logger shared by the CLI and its packages.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. Verbose enables debug
// output; otherwise only warnings and errors are shown.
func New(verbose bool) (logger *zap.Logger, err error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(Level(verbose))
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = !verbose

	logger, err = config.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to initialize logger")
		return logger, err
	}

	return logger, err
}

// Level maps the verbose flag to a zap level.
func Level(verbose bool) (level zapcore.Level) {
	level = zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return level
}

// RedactToken masks a bearer token for diagnostics, keeping only the last
// four characters of long tokens.
func RedactToken(token string) (masked string) {
	switch {
	case token == "":
		masked = "<empty>"
	case len(token) <= 8:
		masked = strings.Repeat("*", len(token))
	default:
		masked = strings.Repeat("*", 8) + token[len(token)-4:]
	}
	return masked
}
