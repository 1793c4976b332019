package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/saas-template-companion/internal/utils"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry. Secret values are never recorded.
type Entry struct {
	ID        string `json:"id"`    // Unique entry identifier.
	Timestamp string `json:"ts"`    // RFC3339 with microseconds.
	Actor     string `json:"actor"` // user@host running the command.
	Operation string `json:"op"`    // Operation name.

	// Optional fields depending on operation.
	EnvFile      string   `json:"env_file,omitempty"`      // For make-keys.
	Patched      []string `json:"patched,omitempty"`       // For make-keys.
	Appended     []string `json:"appended,omitempty"`      // For make-keys.
	Files        []string `json:"files,omitempty"`         // For cleanup.
	RemovedCount int      `json:"removed_count,omitempty"` // For cleanup.
}

// Log appends an entry to the audit log at path. An empty path disables the
// audit trail. Failures are swallowed: operations never fail because the
// audit log could not be written.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	// #nosec G304 -- the audit path comes from the user's own config.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry returns an entry for op with the actor filled in.
func NewEntry(op string) Entry {
	return Entry{Operation: op, Actor: utils.Actor()}
}

// ReadEntries reads all entries from the audit log at path.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
