// Package log builds zap loggers for the wallet components and provides the
// field helpers used across the repository.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ConsoleEncoder writes human readable lines.
	ConsoleEncoder = "console"
	// JSONEncoder writes one json object per line.
	JSONEncoder = "json"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

// NewNop creates silent logger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// Encoder returns the zap encoder for the configured encoder kind.
func Encoder(kind string) (zapcore.Encoder, error) {
	switch kind {
	case "", ConsoleEncoder:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unknown log encoder %q", kind)
	}
}

func newWithWriter(w io.Writer,
	module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
}

// Levels keeps one dynamic level per module so that verbosity can be changed at runtime.
type Levels struct {
	root    *zap.Logger
	levels  map[string]zap.AtomicLevel
	encoder zapcore.Encoder
	w       io.Writer
}

// NewLevels creates the root logger named app using the encoder kind.
func NewLevels(app, encoder string, level zapcore.Level) (*Levels, error) {
	enc, err := Encoder(encoder)
	if err != nil {
		return nil, err
	}
	lvl := zap.NewAtomicLevelAt(level)
	return &Levels{
		root:    newWithWriter(logWriter, app, lvl, enc),
		levels:  map[string]zap.AtomicLevel{app: lvl},
		encoder: enc,
		w:       logWriter,
	}, nil
}

// Root returns the application logger.
func (l *Levels) Root() *zap.Logger {
	return l.root
}

// Module returns a named logger for module with its own level.
// An empty or unparsable level falls back to info.
func (l *Levels) Module(module, level string) *zap.Logger {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			l.root.Warn("invalid log level, using info",
				zap.String("module", module),
				zap.String("level", level),
				zap.Error(err),
			)
		}
	}
	l.levels[module] = lvl
	core := zapcore.NewCore(l.encoder, zapcore.AddSync(l.w), lvl)
	return l.root.WithOptions(zap.WrapCore(func(zapcore.Core) zapcore.Core {
		return core
	})).Named(module)
}

// SetLevel changes the level of a module created with Module.
func (l *Levels) SetLevel(module string, level zapcore.Level) error {
	lvl, ok := l.levels[module]
	if !ok {
		return fmt.Errorf("unknown log module %q", module)
	}
	lvl.SetLevel(level)
	return nil
}
