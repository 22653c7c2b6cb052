package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to w and returns it as a logr.Logger.
//
// Verbose runs use the console encoder and enable logr V(1) and V(2), which
// the solver uses for per-step tracing. Quiet runs emit JSON warnings and
// errors only.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	var (
		enc   zapcore.Encoder
		level zapcore.Level
	)
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.Level(-2)
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.WarnLevel
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zapr.NewLogger(zap.New(core))
}
