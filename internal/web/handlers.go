package web

import (
	"net/http"

	"github.com/JonMunkholm/omareport/internal/core"
	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/JonMunkholm/omareport/internal/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// SectionTotals is the response of the totals endpoint.
type SectionTotals struct {
	SectionID    string                 `json:"sectionId"`
	Categories   []report.CategoryValue `json:"categories"`
	Distribution []report.CategoryValue `json:"distribution"`
	Polarity     core.Polarity          `json:"polarity"`
}

// ComparisonResponse is the response of the comparison endpoint.
type ComparisonResponse struct {
	SectionID string                   `json:"sectionId"`
	Labels    map[string]string        `json:"labels"`
	Points    []report.ComparisonPoint `json:"points"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status":   "ok",
		"sections": s.store.Len(),
	})
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.Summaries())
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.sectionFromRequest(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, sec)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.sectionFromRequest(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, SectionTotals{
		SectionID:    sec.ID,
		Categories:   report.Totals(sec.Rows),
		Distribution: report.PieSlices(sec.Rows),
		Polarity:     core.SumPolarity(sec.Rows),
	})
}

func (s *Server) handleBars(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.sectionFromRequest(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, report.BarSeries(sec.Rows))
}

func (s *Server) handlePie(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.sectionFromRequest(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, report.PieSlices(sec.Rows))
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.sectionFromRequest(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, ComparisonResponse{
		SectionID: sec.ID,
		Labels:    report.PolarityLabels(),
		Points:    report.ComparisonSeries(sec.Rows),
	})
}

// sectionFromRequest resolves the {sectionID} URL parameter. On failure it
// writes the error response and returns false.
func (s *Server) sectionFromRequest(w http.ResponseWriter, r *http.Request) (core.Section, bool) {
	id := chi.URLParam(r, "sectionID")
	sec, err := s.store.Section(id)
	if err != nil {
		respondError(w, r, err, http.StatusNotFound)
		return core.Section{}, false
	}
	logging.FromContext(r.Context()).Debug("section resolved", "section_id", id, "rows", len(sec.Rows))
	return sec, true
}
