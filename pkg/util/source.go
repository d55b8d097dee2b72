package util

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadSource returns the content of a component source file.
//
// The file is memory-mapped read-only, copied into a string and unmapped
// before returning, so no mapping outlives the call. If mapping fails the
// file is read with os.ReadFile instead. Empty files yield "".
func ReadSource(path string, logger *slog.Logger) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file %q: %w", path, err)
	}

	// Can't mmap zero bytes.
	if stat.Size() == 0 {
		return "", nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		if logger != nil {
			logger.Warn("mmap failed, using fallback",
				"file", path,
				"size", stat.Size(),
				"error", err)
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return "", fmt.Errorf("mmap failed and fallback failed for %q: mmap error: %v, read error: %w",
				path, err, readErr)
		}
		return string(raw), nil
	}

	content := string(data)
	if err := data.Unmap(); err != nil && logger != nil {
		logger.Warn("failed to unmap file", "file", path, "error", err)
	}
	return content, nil
}
