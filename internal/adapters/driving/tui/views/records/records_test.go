package records

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// mockRecordService implements driving.RecordService for list tests.
type mockRecordService struct {
	files   []domain.RecordFile
	listErr error
}

func (m *mockRecordService) Load(string) (*domain.Record, error) { return nil, nil }

func (m *mockRecordService) ListFiles(string) ([]domain.RecordFile, error) {
	return m.files, m.listErr
}

func (m *mockRecordService) Watch(context.Context, string) (<-chan string, error) {
	return nil, errors.New("not watching")
}

func (m *mockRecordService) Import(context.Context, string) (*domain.Record, error) {
	return nil, nil
}

func (m *mockRecordService) List(context.Context) ([]domain.RecordSummary, error) {
	return nil, nil
}

func (m *mockRecordService) Get(context.Context, string) (*domain.Record, error) {
	return nil, nil
}

func (m *mockRecordService) Delete(context.Context, string) error { return nil }

func newTestView(files ...domain.RecordFile) *View {
	v := NewView(nil, &mockRecordService{files: files}, "/data")
	v.SetDimensions(80, 24)
	return v
}

func TestInit_LoadsFiles(t *testing.T) {
	v := newTestView(domain.RecordFile{Name: "100012.json", Path: "/data/100012.json", Size: 128})

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.FilesLoaded)
	require.True(t, ok)
	require.Len(t, loaded.Files, 1)
	assert.Equal(t, "100012.json", loaded.Files[0].Name)
}

func TestUpdate_FilesLoaded(t *testing.T) {
	v := newTestView()

	v.Update(messages.FilesLoaded{Files: []domain.RecordFile{
		{Name: "a.json"}, {Name: "b.json"},
	}})

	assert.Len(t, v.Files(), 2)
	assert.NoError(t, v.Err())
}

func TestUpdate_FilesLoadedError(t *testing.T) {
	v := newTestView()

	v.Update(messages.FilesLoaded{Err: errors.New("scan failed")})

	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "scan failed")
}

func TestEnter_SelectsFile(t *testing.T) {
	v := newTestView()
	v.Update(messages.FilesLoaded{Files: []domain.RecordFile{
		{Name: "a.json", Path: "/data/a.json"},
		{Name: "b.json", Path: "/data/b.json"},
	}})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.FileSelected)
	require.True(t, ok)
	assert.Equal(t, "/data/b.json", selected.File.Path)
}

func TestFileChanged_Rescans(t *testing.T) {
	v := newTestView(domain.RecordFile{Name: "a.json"})

	_, cmd := v.Update(messages.FileChanged{Path: "/data/a.json"})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.FilesLoaded)
	assert.True(t, ok)
}

func TestEsc_ReturnsToMenu(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_EmptyState(t *testing.T) {
	v := newTestView()
	v.Update(messages.FilesLoaded{})

	assert.Contains(t, v.View(), "No record files found")
}

func TestView_ShowsSizes(t *testing.T) {
	v := newTestView()
	v.Update(messages.FilesLoaded{Files: []domain.RecordFile{
		{Name: "100012.json", Size: 2048},
	}})

	out := v.View()

	assert.Contains(t, out, "100012.json")
	assert.Contains(t, out, "2.0 kB")
}
