package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

func TestIndexer_Build_GroupsByCode(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		HadmID: "100012",
		Notes: []domain.Note{
			{
				Text: "Fell from ladder, fracture of vault of skull.",
				Annotations: []domain.Annotation{
					{Code: "S02.0XXB", CodeSystem: domain.CodeSystemDiagnosis, Description: "Fracture of vault of skull", Begin: 18, End: 44},
				},
			},
			{
				Text: "Skull fracture noted again on follow-up.",
				Annotations: []domain.Annotation{
					{Code: "S02.0XXB", CodeSystem: domain.CodeSystemDiagnosis, Description: "Fracture of vault of skull", Begin: 0, End: 14},
					{Code: "W11.XXXA", CodeSystem: domain.CodeSystemDiagnosis, Description: "Fall on and from ladder", Begin: 30, End: 39},
				},
			},
		},
	}

	groups, index := ix.Build(rec)
	require.Len(t, groups, 2)

	// Sorted lexicographically by code.
	assert.Equal(t, "S02.0XXB", groups[0].Code)
	assert.Equal(t, "W11.XXXA", groups[1].Code)

	// One group for the repeated code, instances in document order.
	assert.Equal(t, 2, groups[0].Count())
	assert.Equal(t, 0, groups[0].Instances[0].NoteIndex)
	assert.Equal(t, 1, groups[0].Instances[1].NoteIndex)

	// Index maps codes to sorted positions.
	assert.Equal(t, 0, index["S02.0XXB"])
	assert.Equal(t, 1, index["W11.XXXA"])
}

func TestIndexer_Build_CountMatchesTotalAnnotations(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		Notes: []domain.Note{
			{Annotations: []domain.Annotation{{Code: "A"}, {Code: "B"}, {Code: "A"}}},
			{Annotations: []domain.Annotation{{Code: "C"}, {Code: "B"}}},
			{},
		},
	}

	groups, _ := ix.Build(rec)

	total := 0
	for _, g := range groups {
		total += g.Count()
	}
	assert.Equal(t, rec.AnnotationCount(), total)
}

func TestIndexer_Build_FirstSeenMetadataWins(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		Notes: []domain.Note{
			{Annotations: []domain.Annotation{
				{Code: "E11.9", CodeSystem: domain.CodeSystemDiagnosis, Description: "Type 2 diabetes"},
				{Code: "E11.9", CodeSystem: "ICD-10", Description: "Diabetes mellitus"},
			}},
		},
	}

	groups, _ := ix.Build(rec)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.CodeSystemDiagnosis, groups[0].CodeSystem)
	assert.Equal(t, "Type 2 diabetes", groups[0].Description)
	assert.Equal(t, 2, groups[0].Count())
}

func TestIndexer_Build_EmptyCodeIsAGroup(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		Notes: []domain.Note{
			{Annotations: []domain.Annotation{
				{Code: "", Description: "uncoded"},
				{Code: "A00"},
				{Code: ""},
			}},
		},
	}

	groups, index := ix.Build(rec)
	require.Len(t, groups, 2)

	// Empty string sorts before any non-empty code.
	assert.Equal(t, "", groups[0].Code)
	assert.Equal(t, 2, groups[0].Count())
	assert.Equal(t, 0, index[""])
	assert.Equal(t, 1, index["A00"])
}

func TestIndexer_Build_InvalidOffsetsStillCounted(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		Notes: []domain.Note{
			{Text: "short", Annotations: []domain.Annotation{
				{Code: "A", Begin: 5, End: 3},
				{Code: "A", Begin: 0, End: 400},
			}},
		},
	}

	// Grouping never validates offsets.
	groups, _ := ix.Build(rec)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count())
}

func TestIndexer_Build_EmptyRecord(t *testing.T) {
	ix := NewIndexer()

	groups, index := ix.Build(domain.Record{})
	assert.Empty(t, groups)
	assert.Empty(t, index)
}

func TestIndexer_Build_PureTransform(t *testing.T) {
	ix := NewIndexer()
	rec := domain.Record{
		Notes: []domain.Note{
			{Annotations: []domain.Annotation{{Code: "B"}, {Code: "A"}}},
		},
	}

	first, _ := ix.Build(rec)
	second, _ := ix.Build(rec)
	assert.Equal(t, first, second)

	// Mutating the input and rebuilding reflects the new input.
	rec.Notes[0].Annotations = append(rec.Notes[0].Annotations, domain.Annotation{Code: "C"})
	third, _ := ix.Build(rec)
	assert.Len(t, third, 3)
	// The earlier result is untouched.
	assert.Len(t, first, 2)
}
