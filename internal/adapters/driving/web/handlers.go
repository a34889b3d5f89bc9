package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// indexData feeds the record list template.
type indexData struct {
	Records []domain.RecordSummary
}

// groupView is one checkbox row in the code panel.
type groupView struct {
	Code    string
	Label   string
	Class   string
	Checked bool
}

// segmentView is one run of note text, highlighted or plain.
type segmentView struct {
	Content     string
	Highlighted bool
	Class       string
}

// noteView is one rendered note.
type noteView struct {
	Index       int
	Category    string
	Description string
	Segments    []segmentView
}

// recordData feeds the record template.
type recordData struct {
	ID          string
	HadmID      string
	Groups      []groupView
	Notes       []noteView
	Total       int
	Diagnoses   int
	Procedures  int
	UniqueCodes int
}

// handleIndex lists the imported records.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.ports.Record.List(r.Context())
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, err)
		return
	}

	s.render(w, "index", indexData{Records: summaries})
}

// handleRecord renders one record with the selected codes highlighted.
// Codes are selected via repeated ?code= query parameters, one per
// checked checkbox.
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := s.ports.Record.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		s.renderError(w, http.StatusInternalServerError, err)
		return
	}

	groups, _ := s.ports.Indexer.Build(*rec)

	active := make(map[string]bool)
	for _, code := range r.URL.Query()["code"] {
		active[code] = true
	}

	data := recordData{
		ID:          rec.ID,
		HadmID:      rec.HadmID,
		UniqueCodes: len(groups),
	}

	for _, g := range groups {
		n := g.Count()
		data.Total += n
		switch g.CodeSystem {
		case domain.CodeSystemDiagnosis:
			data.Diagnoses += n
		case domain.CodeSystemProcedure:
			data.Procedures += n
		}

		desc := g.Description
		if r := []rune(desc); len(r) > 40 {
			desc = string(r[:40]) + "..."
		}
		data.Groups = append(data.Groups, groupView{
			Code:    g.Code,
			Label:   fmt.Sprintf("%s (%s): %s (%d)", g.Code, g.CodeSystem, desc, n),
			Class:   spanClass(g.CodeSystem),
			Checked: active[g.Code],
		})
	}

	for i := range rec.Notes {
		note := &rec.Notes[i]
		nv := noteView{
			Index:       i + 1,
			Category:    note.Category,
			Description: note.Description,
		}
		for _, seg := range s.ports.Highlighter.Render(note.Text, note.Annotations, active) {
			nv.Segments = append(nv.Segments, segmentView{
				Content:     seg.Content,
				Highlighted: seg.Highlighted,
				Class:       spanClass(seg.CodeSystem),
			})
		}
		data.Notes = append(data.Notes, nv)
	}

	s.render(w, "record", data)
}

// spanClass maps a code system to its CSS class.
func spanClass(codeSystem string) string {
	switch codeSystem {
	case domain.CodeSystemDiagnosis:
		return "cm"
	case domain.CodeSystemProcedure:
		return "pcs"
	default:
		return "other"
	}
}

// render executes a named template.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Warn("rendering %s: %v", name, err)
	}
}

// renderError reports a handler failure.
func (s *Server) renderError(w http.ResponseWriter, status int, err error) {
	logger.Warn("request failed: %v", err)
	http.Error(w, err.Error(), status)
}
