// Package logger provides structured key/value logging for the pipeline and
// CLI. Debug messages are only emitted in verbose mode.
package logger

import (
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is the logging surface used across the module.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// Config configures New.
type Config struct {
	Output  io.Writer // defaults to os.Stderr so stdout stays free for corpus output
	JSON    bool
	Verbose bool
}

// New creates a Logger backed by github.com/baditaflorin/l.
func New(cfg Config) (Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	inner, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      out,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  false,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  1,
		AddSource:   cfg.Verbose,
		Metrics:     false,
	})
	if err != nil {
		return nil, err
	}
	return &stdLogger{logger: inner, verbose: cfg.Verbose}, nil
}

// stdLogger adapts l.Logger and drops debug output unless verbose.
type stdLogger struct {
	logger  l.Logger
	verbose bool
}

func (s *stdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.verbose {
		s.logger.Debug(msg, keysAndValues...)
	}
}

func (s *stdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

func (s *stdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

func (s *stdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

func (s *stdLogger) Close() error {
	return s.logger.Close()
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}
func (nop) Close() error                 { return nil }
