package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

func TestRecordStore_SaveAndGet(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec := &domain.Record{
		ID:     "rec-1",
		HadmID: "100012",
		Notes: []domain.Note{
			{NoteID: "n1", Text: "text", Annotations: []domain.Annotation{{Code: "A00"}}},
		},
	}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "100012", got.HadmID)
	assert.Len(t, got.Notes, 1)
}

func TestRecordStore_GetNotFound(t *testing.T) {
	store := NewRecordStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_ListSortedSummaries(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Record{ID: "b", Notes: []domain.Note{{}, {}}})
	_ = store.Save(ctx, &domain.Record{ID: "a", Notes: []domain.Note{
		{Annotations: []domain.Annotation{{Code: "X"}, {Code: "Y"}}},
	}})

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "a", summaries[0].ID)
	assert.Equal(t, 2, summaries[0].AnnotationCount)
	assert.Equal(t, "b", summaries[1].ID)
	assert.Equal(t, 2, summaries[1].NoteCount)
	assert.False(t, summaries[0].ImportedAt.IsZero())
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Record{ID: "rec-1"})
	require.NoError(t, store.Delete(ctx, "rec-1"))

	_, err := store.Get(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
