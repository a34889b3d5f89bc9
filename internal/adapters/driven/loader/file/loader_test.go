package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "record.json", `{
		"hadm_id": 100012,
		"notes": [
			{
				"note_id": "n-1",
				"category": "Discharge summary",
				"description": "Report",
				"text": "The patient has diabetes.",
				"annotations": [
					{"code": "E11.9", "code_system": "ICD-10-CM",
					 "description": "Type 2 diabetes", "begin": 16, "end": 24,
					 "covered_text": "diabetes"}
				]
			}
		]
	}`)

	loader := NewLoader()
	rec, err := loader.Load(path)
	require.NoError(t, err)

	// Numeric hadm_id is normalised to its string form.
	assert.Equal(t, "100012", rec.HadmID)
	assert.Equal(t, path, rec.Path)
	require.Len(t, rec.Notes, 1)

	note := rec.Notes[0]
	assert.Equal(t, "n-1", note.NoteID)
	assert.Equal(t, "Discharge summary", note.Category)
	require.Len(t, note.Annotations, 1)
	assert.Equal(t, "E11.9", note.Annotations[0].Code)
	assert.Equal(t, 16, note.Annotations[0].Begin)
	assert.Equal(t, 24, note.Annotations[0].End)
}

func TestLoader_Load_MissingNotesRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"hadm_id": "1"}`)

	loader := NewLoader()
	_, err := loader.Load(path)
	assert.ErrorIs(t, err, domain.ErrMissingNotes)
}

func TestLoader_Load_TolerantDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sparse.json", `{
		"notes": [
			{"annotations": [{"begin": 1, "end": 2}]},
			{}
		]
	}`)

	loader := NewLoader()
	rec, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "", rec.HadmID)
	require.Len(t, rec.Notes, 2)
	assert.Equal(t, "", rec.Notes[0].NoteID)
	assert.Equal(t, "", rec.Notes[0].Text)
	require.Len(t, rec.Notes[0].Annotations, 1)
	assert.Equal(t, "", rec.Notes[0].Annotations[0].Code)
	assert.Empty(t, rec.Notes[1].Annotations)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", `{not json`)

	loader := NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoader_Scan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{}`)
	writeFile(t, dir, filepath.Join("nested", "a.json"), `{}`)
	writeFile(t, dir, "notes.txt", `ignored`)

	loader := NewLoader()
	files, err := loader.Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sorted by display name.
	assert.Equal(t, "b.json", files[0].Name)
	assert.Equal(t, filepath.Join("nested", "a.json"), files[1].Name)
	assert.Equal(t, int64(2), files[0].Size)
}

func TestLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := loader.Watch(ctx, dir)
	require.NoError(t, err)

	writeFile(t, dir, "new.json", `{"notes": []}`)

	select {
	case path := <-changes:
		assert.Equal(t, filepath.Join(dir, "new.json"), path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	cancel()
	// Channel closes after cancellation.
	for range changes {
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"abc"`, "abc"},
		{"integer", `42`, "42"},
		{"float", `4.5`, "4.5"},
		{"null", `null`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flexString([]byte(tt.raw)))
		})
	}
}
