// Package logging builds the structured logger used by the rover CLI and
// provides the observer that reports rejected moves.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/san-kum/rover/internal/config"
	"github.com/san-kum/rover/internal/rover"
)

const Prefix = "rover"

// New returns a logger writing to w with the level, format and timestamp
// settings from cfg. Writes are serialized across the logger and every
// child derived from it with With, so w need not be safe for concurrent use.
func New(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	case "text", "":
		formatter = log.TextFormatter
	default:
		return nil, fmt.Errorf("unknown log format: %s", cfg.Format)
	}

	return log.NewWithOptions(&syncWriter{w: w}, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          Prefix,
		ReportTimestamp: cfg.Timestamps,
	}), nil
}

// syncWriter guards a writer shared by loggers that each hold their own lock.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type rejectedMoves struct {
	logger *log.Logger
	bounds rover.Bounds
}

// RejectedMoves returns an observer that logs every move dropped at the
// grid edge. Other steps are logged at debug level.
func RejectedMoves(logger *log.Logger, bounds rover.Bounds) rover.Observer {
	return &rejectedMoves{logger: logger, bounds: bounds}
}

func (o *rejectedMoves) OnStep(s rover.Step) {
	if !s.Rejected {
		o.logger.Debug("step", "index", s.Index, "cmd", string(s.Command), "pose", s.To.String())
		return
	}
	o.logger.Info("move rejected",
		"index", s.Index,
		"cmd", string(s.Command),
		"pose", s.From.String(),
		"bounds", o.bounds.String(),
	)
}
