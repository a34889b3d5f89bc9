package cli

import (
	"os"
	"path/filepath"
	"testing"

	loaderfile "github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/loader/file"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/storage/memory"
	"github.com/chartlens-labs/chartlens-cli/internal/core/services"
)

const sampleRecordJSON = `{
	"hadm_id": 100012,
	"notes": [
		{
			"note_id": "n-1",
			"category": "Discharge summary",
			"description": "Report",
			"text": "The patient has diabetes and hypertension.",
			"annotations": [
				{"code": "E11.9", "code_system": "ICD-10-CM", "description": "Type 2 diabetes mellitus without complications", "begin": 16, "end": 24, "covered_text": "diabetes"},
				{"code": "I10", "code_system": "ICD-10-CM", "description": "Essential (primary) hypertension", "begin": 29, "end": 41, "covered_text": "hypertension"}
			]
		},
		{
			"note_id": "n-2",
			"category": "Radiology",
			"text": "No acute findings.",
			"annotations": []
		}
	]
}`

// setupTestServices wires the commands to real services over a memory
// store and returns a cleanup that detaches them again.
func setupTestServices() func() {
	svc := services.NewRecordService(loaderfile.NewLoader(), memory.NewRecordStore())
	SetServices(Services{
		Record:      svc,
		Indexer:     services.NewIndexer(),
		Highlighter: services.NewHighlighter(),
	})

	return func() {
		recordService = nil
		annotationIndexer = nil
		spanHighlighter = nil
		configStore = nil
	}
}

// writeSampleRecord writes the sample record file into a temp dir and
// returns its path.
func writeSampleRecord(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "100012.json")
	if err := os.WriteFile(path, []byte(sampleRecordJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
