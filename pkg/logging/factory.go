package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
	"time"
)

//
// Builder.
// Builds the real (logr) logger.
type Builder interface {
	New() logr.Logger
	V(int, logr.Logger) logr.Logger
}

//
// Zap builder factory.
type ZapBuilder struct {
	// Output.
	// Defaults to stderr.
	Output io.Writer
}

//
// Build new logger.
func (b *ZapBuilder) New() (l logr.Logger) {
	var encoder zapcore.Encoder
	var options []zap.Option
	var output io.Writer = os.Stderr
	if b.Output != nil {
		output = b.Output
	}
	sinker := zapcore.AddSync(output)
	if Settings.Development {
		cfg := zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(cfg)
		options = append(
			options,
			zap.Development(),
			zap.AddStacktrace(zap.ErrorLevel))
	} else {
		cfg := zap.NewProductionEncoderConfig()
		encoder = zapcore.NewJSONEncoder(cfg)
		options = append(
			options,
			zap.WrapCore(
				func(core zapcore.Core) zapcore.Core {
					return zapcore.NewSampler(
						core,
						time.Second,
						100,
						100)
				}))
	}
	// V(1) maps to debug; anything deeper is dropped by the core.
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	options = append(
		options,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.ErrorOutput(sinker))
	log := zap.New(
		zapcore.NewCore(
			encoder,
			sinker,
			level))
	log = log.WithOptions(options...)
	l = zapr.NewLogger(log)

	return
}

//
// Debug logger.
// Levels at or below the threshold log at debug and
// the rest fall below the core level.
func (b *ZapBuilder) V(level int, in logr.Logger) (l logr.Logger) {
	if level == 0 {
		l = in
		return
	}
	if Settings.atDebug(level) {
		l = in.V(1)
	} else {
		l = in.V(2)
	}

	return
}

//
// Set the builder used by the Factory.
func SetBuilder(b Builder) {
	builder = b
}
