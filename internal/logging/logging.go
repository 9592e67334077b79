// Package logging constructs the process-wide debug logger. Commands run
// silent by default; --verbose turns on console output to stderr.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing to stderr when verbose is set,
// and a nop logger otherwise
func New(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar()
}
