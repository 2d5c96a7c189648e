package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer dumps raw upstream response bodies to disk for debugging. Payloads
// land at {basePath}/{kind}/{label}.json, pretty-printed when the body is
// valid JSON and verbatim otherwise.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath. A nil writer is safe to
// call and writes nothing.
func NewWriter(basePath string) *Writer {
	if basePath == "" {
		return nil
	}
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteResponse persists one response body under kind/label. Writes are
// atomic (tmp file + rename) so a crash never leaves a torn dump.
func (w *Writer) WriteResponse(kind, label string, body []byte) error {
	if w == nil {
		return nil
	}
	if kind == "" || label == "" {
		return fmt.Errorf("snapshot kind and label required")
	}

	target := filepath.Join(w.basePath, kind, sanitizeLabel(label)+".json")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data := body
	var indented bytes.Buffer
	if err := json.Indent(&indented, body, "", "  "); err == nil {
		data = indented.Bytes()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// sanitizeLabel keeps labels filesystem-safe; match keys contain spaces.
func sanitizeLabel(label string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", string(filepath.Separator), "-")
	return replacer.Replace(label)
}
