package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JonMunkholm/omareport/internal/config"
	"github.com/JonMunkholm/omareport/internal/core"
	"github.com/JonMunkholm/omareport/internal/report"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := report.NewStore([]core.Section{
		{
			ID:               "section_1",
			Title:            "İyileştirme Çalışmaları",
			Description:      core.DescriptionFor("İyileştirme Çalışmaları"),
			ParticipantCount: 2,
			TotalSurveys:     core.TotalSurveysPlaceholder,
			Rows: []core.SurveyRow{
				{Program: "A", StronglyDisagree: 10, Disagree: 10, Neutral: 20, Agree: 40, StronglyAgree: 20, Total: 100},
				{Program: "B", StronglyDisagree: 0, Disagree: 10, Neutral: 10, Agree: 60, StronglyAgree: 20, Total: 100},
			},
		},
		{
			ID:               "section_3",
			Title:            "Akademik Danışmanlık Hizmetleri",
			Description:      core.DescriptionFor("Akademik Danışmanlık Hizmetleri"),
			ParticipantCount: 1,
			TotalSurveys:     core.TotalSurveysPlaceholder,
			Rows:             []core.SurveyRow{},
		},
	})
	return NewServer(store, config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           8080,
		RequestTimeout: 5 * time.Second,
	})
}

func get(t *testing.T, s *Server, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("GET %s: decoding body %q: %v", path, rec.Body.String(), err)
		}
	}
	return rec
}

func TestHealth(t *testing.T) {
	var body struct {
		Status   string `json:"status"`
		Sections int    `json:"sections"`
	}
	rec := get(t, newTestServer(t), "/healthz", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body.Status != "ok" || body.Sections != 2 {
		t.Errorf("body = %+v, want ok with 2 sections", body)
	}
}

func TestListSections(t *testing.T) {
	var body []report.Summary
	rec := get(t, newTestServer(t), "/api/sections", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(body) != 2 || body[0].ID != "section_1" || body[1].ID != "section_3" {
		t.Errorf("body = %+v, want section_1 and section_3 in order", body)
	}
	if body[0].RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", body[0].RowCount)
	}
}

func TestGetSection(t *testing.T) {
	var body core.Section
	rec := get(t, newTestServer(t), "/api/sections/section_1", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body.Title != "İyileştirme Çalışmaları" || len(body.Rows) != 2 {
		t.Errorf("body = %+v", body)
	}
}

func TestGetSection_NotFound(t *testing.T) {
	paths := []string{
		"/api/sections/section_2",
		"/api/sections/section_2/pie",
		"/api/sections/nope/totals",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			var body ErrorResponse
			rec := get(t, newTestServer(t), path, &body)
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
			if body.Code != "SEC001" {
				t.Errorf("code = %q, want SEC001", body.Code)
			}
			if body.Action == "" {
				t.Error("action is empty")
			}
		})
	}
}

func TestTotals(t *testing.T) {
	var body SectionTotals
	rec := get(t, newTestServer(t), "/api/sections/section_1/totals", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body.SectionID != "section_1" {
		t.Errorf("SectionID = %q", body.SectionID)
	}
	if len(body.Categories) != core.NumCategories || body.Categories[core.Agree].Value != 100 {
		t.Errorf("Categories = %+v, want agree total 100", body.Categories)
	}
	if body.Polarity != (core.Polarity{Positive: 140, Neutral: 30, Negative: 30}) {
		t.Errorf("Polarity = %+v", body.Polarity)
	}
}

func TestPie(t *testing.T) {
	var body []report.CategoryValue
	rec := get(t, newTestServer(t), "/api/sections/section_1/pie", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var agree float64
	for _, cv := range body {
		if cv.Key == core.KeyAgree {
			agree = cv.Value
		}
	}
	if agree != 50 {
		t.Errorf("agree share = %v, want 50", agree)
	}
}

func TestPie_EmptySection(t *testing.T) {
	var body []report.CategoryValue
	rec := get(t, newTestServer(t), "/api/sections/section_3/pie", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body == nil || len(body) != 0 {
		t.Errorf("body = %v, want empty array", body)
	}
}

func TestBars(t *testing.T) {
	var body []report.BarPoint
	rec := get(t, newTestServer(t), "/api/sections/section_1/bars", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(body) != 2 || body[1].Name != "B" || len(body[1].Values) != core.NumCategories {
		t.Errorf("body = %+v", body)
	}
}

func TestComparison(t *testing.T) {
	var body ComparisonResponse
	rec := get(t, newTestServer(t), "/api/sections/section_1/comparison", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body.Labels["positive"] != report.LabelPositive {
		t.Errorf("Labels = %v", body.Labels)
	}
	if len(body.Points) != 2 || body.Points[1].Positive != 80 {
		t.Errorf("Points = %+v, want B positive 80", body.Points)
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
