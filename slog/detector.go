package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/birdtab"
)

// Ensure LoggingDetector implements birdtab.ModeDetector.
var _ birdtab.ModeDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a ModeDetector with debug logging.
type LoggingDetector struct {
	next   birdtab.ModeDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next birdtab.ModeDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the detected mode.
func (d *LoggingDetector) Detect(html string) birdtab.Mode {
	begin := time.Now()
	mode := d.next.Detect(html)
	d.logger.Info("mode detection",
		"mode", string(mode),
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return mode
}
