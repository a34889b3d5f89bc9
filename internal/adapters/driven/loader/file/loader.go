// Package file provides the filesystem record loader: JSON decoding of
// admission documents, recursive directory scanning, and change watching.
package file

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.RecordLoader = (*Loader)(nil)

// Loader reads admission record documents from the filesystem.
type Loader struct{}

// NewLoader creates a new filesystem record loader.
func NewLoader() *Loader {
	return &Loader{}
}

// recordDoc mirrors the on-disk JSON shape. Identifier fields may be a
// JSON string or number, so they are kept raw and normalised afterwards.
type recordDoc struct {
	HadmID json.RawMessage `json:"hadm_id"`
	Notes  *[]noteDoc      `json:"notes"`
}

type noteDoc struct {
	NoteID      json.RawMessage `json:"note_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Text        string          `json:"text"`
	Annotations []annotationDoc `json:"annotations"`
}

type annotationDoc struct {
	Code        string `json:"code"`
	CodeSystem  string `json:"code_system"`
	Description string `json:"description"`
	Begin       int    `json:"begin"`
	End         int    `json:"end"`
	CoveredText string `json:"covered_text"`
}

// Load decodes one record document.
//
// A document without a "notes" field is rejected with
// domain.ErrMissingNotes; this is the only structural requirement.
// Every other missing field defaults to its empty value, so the core
// never sees a partially-failed decode.
func (l *Loader) Load(path string) (*domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}

	var doc recordDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing record file %s: %w", path, err)
	}

	if doc.Notes == nil {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrMissingNotes)
	}

	rec := &domain.Record{
		HadmID: flexString(doc.HadmID),
		Path:   path,
		Notes:  make([]domain.Note, 0, len(*doc.Notes)),
	}

	for _, n := range *doc.Notes {
		note := domain.Note{
			NoteID:      flexString(n.NoteID),
			Category:    n.Category,
			Description: n.Description,
			Text:        n.Text,
			Annotations: make([]domain.Annotation, 0, len(n.Annotations)),
		}
		for _, a := range n.Annotations {
			note.Annotations = append(note.Annotations, domain.Annotation{
				Code:        a.Code,
				CodeSystem:  a.CodeSystem,
				Description: a.Description,
				Begin:       a.Begin,
				End:         a.End,
				CoveredText: a.CoveredText,
			})
		}
		rec.Notes = append(rec.Notes, note)
	}

	logger.Debug("loaded record %s: %d notes, %d annotations",
		path, len(rec.Notes), rec.AnnotationCount())

	return rec, nil
}

// Scan recursively finds record documents (*.json) under dir.
// Entries are sorted by display name (the path relative to dir).
func (l *Loader) Scan(dir string) ([]domain.RecordFile, error) {
	var files []domain.RecordFile

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}

		var size int64
		if info, infoErr := d.Info(); infoErr == nil {
			size = info.Size()
		}

		files = append(files, domain.RecordFile{
			Path: path,
			Name: rel,
			Size: size,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// flexString normalises a raw JSON value that may be a string or a
// number into its string form. Absent values become the empty string.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return strings.Trim(string(raw), `"`)
}
