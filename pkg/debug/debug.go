// Package debug provides the process-wide diagnostic logger.
//
// Nothing is written until Init (or FromEnv with SHADOW_DEBUG set) opens a
// log file. Files rotate with lumberjack.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable FromEnv reads the log path from.
const EnvVar = "SHADOW_DEBUG"

var (
	mu      sync.Mutex
	logger  = zap.NewNop()
	rotator *lumberjack.Logger
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
// Calling Init again closes the previous file first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	closeLocked()

	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // Megabytes
		MaxBackups: 3,
		MaxAge:     7, // Days
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.DebugLevel,
	)
	logger = zap.New(core, zap.AddCaller())
	return nil
}

// FromEnv calls Init with the path in SHADOW_DEBUG. It does nothing and
// returns nil when the variable is unset or empty.
func FromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// Close flushes and closes the debug log file. Later calls log nothing
// until Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked does the actual close work. Caller must hold mu.
func closeLocked() error {
	if rotator == nil {
		return nil
	}
	_ = logger.Sync()
	err := rotator.Close()
	rotator = nil
	logger = zap.NewNop()
	return err
}

// Logger returns the current logger. It is a no-op logger until Init.
// The returned logger stays bound to the file open at the time of the call.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Sugar().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Sugar().Debugf(format, args...)
}
