// Package mcplog records one JSON line per MCP tool call.
package mcplog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// argLimits lists the tool arguments compdoc accepts and the longest value
// of each that is recorded verbatim.
var argLimits = map[string]int{
	"componentName": 128,
	"query":         256,
}

// UnknownArgsKey holds the sorted names of arguments no compdoc tool accepts.
const UnknownArgsKey = "unknown_args"

// LogEntry is one recorded tool call.
type LogEntry struct {
	ID            string         `json:"id"`
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	// IsError mirrors the tool result's error flag; Error holds a Go error
	// returned by the handler, which compdoc handlers never do.
	IsError bool    `json:"is_error"`
	Error   *string `json:"error"`
}

// NewEntry starts an entry for a call to tool made at start.
func NewEntry(tool string, args map[string]any, start time.Time) LogEntry {
	return LogEntry{
		ID:     NewID(),
		Ts:     start.UTC().Format(time.RFC3339),
		Tool:   tool,
		Params: SanitizeParams(args),
	}
}

// Finish records the outcome of the call on e.
func (e *LogEntry) Finish(result *mcp.CallToolResult, err error, elapsed time.Duration) {
	e.DurationMs = elapsed.Milliseconds()
	e.ResponseBytes = ResponseBytes(result)
	e.IsError = result != nil && result.IsError
	if err != nil {
		msg := err.Error()
		e.Error = &msg
	}
}

// Logger appends entries to a call log. It is safe for concurrent use, and
// a nil *Logger discards everything.
type Logger struct {
	mu  sync.Mutex
	w   io.WriteCloser
	enc *json.Encoder
}

// Open appends to the call log at path, creating it and its parent
// directories as needed. An empty path disables the log: Open returns nil.
func Open(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create call log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open call log %s: %w", path, err)
	}
	return newLogger(f), nil
}

func newLogger(w io.WriteCloser) *Logger {
	return &Logger{w: w, enc: json.NewEncoder(w)}
}

// Record writes entry as a single line.
func (l *Logger) Record(entry LogEntry) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry)
}

// Close closes the call log.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}

// SanitizeParams reduces tool arguments to what the call log keeps.
//
// Known string arguments are trimmed and kept when within their limit;
// longer ones are replaced by a "<key>_len" byte count. A known argument
// of the wrong type is logged as "<key>_type". Unknown argument names are
// collected under UnknownArgsKey and their values dropped.
func SanitizeParams(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	var unknown []string
	for k, v := range args {
		limit, known := argLimits[k]
		if !known {
			unknown = append(unknown, k)
			continue
		}
		s, ok := v.(string)
		switch {
		case !ok:
			out[k+"_type"] = fmt.Sprintf("%T", v)
		case len(s) > limit:
			out[k+"_len"] = len(s)
		default:
			out[k] = strings.TrimSpace(s)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		out[UnknownArgsKey] = unknown
	}
	return out
}

// ResponseBytes is the size of a result's text: the byte length of every
// text item, plus the JSON size of any other content. A nil result is 0.
func ResponseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	n := 0
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			n += len(tc.Text)
			continue
		}
		if b, err := json.Marshal(c); err == nil {
			n += len(b)
		}
	}
	return n
}

// Now is the clock used to time calls.
var Now = func() time.Time { return time.Now() }

// NewID returns the id for a new entry.
var NewID = func() string { return uuid.NewString() }
