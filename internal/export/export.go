// Package export writes point-in-time snapshots of the knowledge base to a
// local file or an S3 bucket.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Paintersrp/focusnest/internal/graph"
	"github.com/Paintersrp/focusnest/internal/note"
)

// Snapshot is the exported document.
type Snapshot struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Notes       []note.Note `json:"notes"`
	Graph       graph.Data  `json:"graph"`
}

// New assembles a snapshot taken at the given time.
func New(notes []note.Note, data graph.Data, at time.Time) Snapshot {
	if notes == nil {
		notes = []note.Note{}
	}
	return Snapshot{GeneratedAt: at.UTC(), Notes: notes, Graph: data}
}

// Encode writes the snapshot as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Key returns the object name for a snapshot generated at t.
func Key(prefix string, t time.Time) string {
	name := "focusnest-" + t.UTC().Format("20060102T150405Z") + ".json"
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// WriteFile writes the snapshot to dest. When dest is a directory the file is
// named by Key without a prefix.
func WriteFile(dest string, s Snapshot) (string, error) {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, Key("", s.GeneratedAt))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := s.Encode(f); err != nil {
		return "", err
	}
	return dest, f.Close()
}
