package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GRID_DEBUG"

var (
	logger  *slog.Logger
	logFile *os.File
	envOnce sync.Once
	envErr  error
	mu      sync.Mutex

	// errOutput receives the one-time report of a failed GRID_DEBUG setup.
	errOutput io.Writer = os.Stderr
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
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

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput sends debug records to w. A nil w disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Enabled reports whether debug records are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return logger != nil
}

// loadEnvLocked opens the GRID_DEBUG file the first time logging is used.
func loadEnvLocked() {
	envOnce.Do(func() {
		if logger != nil {
			return
		}
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		if err := initLocked(path); err != nil {
			envErr = fmt.Errorf("%s=%s: %w", EnvVar, path, err)
			fmt.Fprintf(errOutput, "debug logging disabled: %v\n", envErr)
		}
	})
}

// Err returns the error that prevented logging to the GRID_DEBUG file,
// or nil when the variable is unset or the file opened.
func Err() error {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return envErr
}

// Log writes a structured debug record: a message followed by
// alternating keys and values, as with slog.
func Log(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnvLocked()
	if logger == nil {
		return
	}
	logger.Debug(msg, args...)
}
