// Package logger builds the zap loggers shared by awskit components.
//
// Quiet mode keeps warnings and errors only, verbose mode adds debug output.
// Errors are never suppressed.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Verbose bool
	Quiet   bool
	Output  io.Writer
}

func New(opts Options) *zap.SugaredLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.NameKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(out), Level(opts))
	return zap.New(core).Sugar()
}

// Level maps the verbose/quiet switches to a zap level. Quiet wins.
func Level(opts Options) zapcore.Level {
	switch {
	case opts.Quiet:
		return zapcore.WarnLevel
	case opts.Verbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log != nil {
		return log
	}
	return Nop()
}
