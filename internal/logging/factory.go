// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, attached to every entry
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "text" or "json" (default: text)
	Format string

	// Destination, stderr if nil
	Output io.Writer

	// RunID identifies one invocation; generated if empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration.
// Stdout belongs to command output, so logs go to stderr and stay quiet.
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a logger entry carrying service and run_id fields
func NewLogger(cfg LoggerConfig) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	return logger.WithFields(logrus.Fields{
		"service": cfg.ServiceName,
		"run_id":  runID,
	})
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *logrus.Entry {
	return NewLogger(LoggerConfig{Output: io.Discard, Level: "error", RunID: "nop"})
}

// parseLevel converts a string level to a logrus level, info if unknown
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
