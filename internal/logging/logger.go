// Package logging wires the engine's structured logger, grounded on the
// teacher's internal/logger singleton (same library, same level mapping,
// same stdout+file writer fan-out), adapted from a rocket-flight app name
// to the engine's own log directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zerodha/logf"
)

var (
	globalLogger logf.Logger
	once         sync.Once
	logFile      *os.File

	defaultOpts = logf.Opts{
		EnableCaller:    true,
		TimestampFormat: "15:04:05",
		EnableColor:     false,
		Level:           logf.InfoLevel,
	}

	// UserCurrentFunc is overridable for tests.
	UserCurrentFunc = user.Current
)

// GetDefaultOpts returns a copy of the default logger options.
func GetDefaultOpts() logf.Opts {
	return defaultOpts
}

// InitFileLogger sets up the global logger with file output under
// ~/.flightcore/logs, mirroring the teacher's per-run timestamped log
// file convention.
func InitFileLogger(level string, appName string) (*logf.Logger, error) {
	usr, err := UserCurrentFunc()
	if err != nil {
		return nil, fmt.Errorf("logging: resolve home directory: %w", err)
	}
	logsDir := filepath.Join(usr.HomeDir, ".flightcore", "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log directory %q: %w", logsDir, err)
	}

	name := fmt.Sprintf("%s-%s.log", appName, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(logsDir, name)

	lg := GetLogger(level, path)
	lg.Info("logger initialized", "app", appName, "path", path, "level", level)
	return lg, nil
}

// GetLogger returns the process-wide logger singleton, initializing it on
// first call. filePath, if given, adds a file writer alongside stdout.
func GetLogger(level string, filePath ...string) *logf.Logger {
	once.Do(func() {
		opts := GetDefaultOpts()
		opts.Level = parseLevel(level, opts.Level)

		writers := []io.Writer{os.Stdout}
		if len(filePath) > 0 && filePath[0] != "" {
			f, err := os.OpenFile(filePath[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				logFile = f
				writers = append(writers, f)
			}
		}
		opts.Writer = io.MultiWriter(writers...)
		globalLogger = logf.New(opts)
	})
	return &globalLogger
}

func parseLevel(level string, fallback logf.Level) logf.Level {
	switch level {
	case "debug":
		return logf.DebugLevel
	case "info":
		return logf.InfoLevel
	case "warn":
		return logf.WarnLevel
	case "error":
		return logf.ErrorLevel
	case "fatal":
		return logf.FatalLevel
	default:
		return fallback
	}
}

// HTTPMiddleware logs every request handled by the telemetry server
// (spec.md §6.6).
func HTTPMiddleware(log *logf.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("http request",
			"status", c.Writer.Status(),
			"method", method,
			"path", path,
			"latency", time.Since(start).String(),
		)
	}
}

// Reset clears the singleton; used by tests only.
func Reset() {
	once = sync.Once{}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	globalLogger = logf.Logger{}
}
