package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"

	ModeAppend    = "append"
	ModeOverwrite = "overwrite"
)

const appName = "flex"

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	File    LoggerConfig `yaml:"file"`
	Console LoggerConfig `yaml:"console"`
}

func (lc LoggerConfig) validate(name string) (err error) {
	switch lc.Level {
	case LevelNone, LevelNormal, LevelDebug:
	default:
		err = multierr.Append(err, fmt.Errorf("logging.%s: unknown level %q", name, lc.Level))
	}
	switch lc.Mode {
	case "", ModeAppend, ModeOverwrite:
	default:
		err = multierr.Append(err, fmt.Errorf("logging.%s: unknown mode %q", name, lc.Mode))
	}
	return err
}

func (lc LoggerConfig) enabler() (zapcore.LevelEnabler, bool) {
	switch lc.Level {
	case LevelNormal:
		return zapcore.InfoLevel, true
	case LevelDebug:
		return zapcore.DebugLevel, true
	default:
		return nil, false
	}
}

// Prepare returns the program logger. Console output always goes to
// stderr so that stdout carries only command results. When debug is set the
// console level is raised to debug regardless of configuration.
func (conf *LoggingConfig) Prepare(debug bool) (*zap.Logger, io.Closer, error) {
	return conf.prepare(os.Stderr, debug)
}

func (conf *LoggingConfig) prepare(console *os.File, debug bool) (*zap.Logger, io.Closer, error) {
	consoleConf := conf.Console
	if debug {
		consoleConf.Level = LevelDebug
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(console) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	consoleCore := zapcore.NewNopCore()
	if level, ok := consoleConf.enabler(); ok {
		consoleCore = zapcore.NewCore(newEncoder(ec), zapcore.Lock(console), level)
	}

	fileCore := zapcore.NewNopCore()
	var closer io.Closer = nopCloser{}
	if level, ok := conf.File.enabler(); ok {
		f, err := openLog(conf.File.Destination, conf.File.Mode)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.File.Destination, err)
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level)
		closer = f
	}

	log := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller())
	return log.Named(appName), closer, nil
}

func openLog(name, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(name, flags, 0644)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// consoleEnc keeps console output to one line per entry by dropping the
// verbose form of error fields.
type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			if e, ok := f.Interface.(error); ok {
				f.Interface = errors.New(e.Error())
			}
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
