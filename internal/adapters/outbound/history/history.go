package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/textgate/textgate/internal/domain"
)

const historyFile = ".textgate/history/submissions.json"

// FileHistory implements domain.SubmissionHistory using JSON file storage.
// Save and Load may be called from concurrent requests.
type FileHistory struct {
	mu  sync.Mutex
	dir string
}

// New creates a FileHistory rooted at dir.
func New(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

// Save appends entry to the history file, creating it if needed.
func (h *FileHistory) Save(entry domain.SubmissionEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(h.dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns all entries, oldest first. A missing file yields no entries.
func (h *FileHistory) Load() ([]domain.SubmissionEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *FileHistory) load() ([]domain.SubmissionEntry, error) {
	fp := filepath.Join(h.dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SubmissionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
