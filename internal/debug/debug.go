package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "DESK_DEBUG"

var (
	out    io.Writer
	file   *os.File
	opened bool
	mu     sync.Mutex
)

// Init opens path for appending and routes all subsequent messages there.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	opened = true
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	closeLocked()
	file = f
	out = f
	return nil
}

// SetOutput routes messages to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	opened = true
	out = w
}

// Enabled reports whether messages currently go anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return out != nil
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	out = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// ensureLocked consults DESK_DEBUG once. Caller must hold mu.
func ensureLocked() {
	if opened {
		return
	}
	opened = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

// Log writes a timestamped message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	if file != nil {
		file.Sync()
	}
}
