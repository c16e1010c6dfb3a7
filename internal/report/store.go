// Package report is the read side of the sections dataset.
//
// It loads the artifact produced by the build and derives the chart series
// the front end draws. The artifact is the only data source; nothing here
// writes it back.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/omareport/internal/core"
)

// Store is an immutable, in-memory copy of the dataset. Safe for concurrent use.
type Store struct {
	sections []core.Section
	byID     map[string]int
}

// Load reads the dataset at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a dataset from r.
func Decode(r io.Reader) (*Store, error) {
	sections, err := core.ReadSections(r)
	if err != nil {
		return nil, err
	}
	return NewStore(sections), nil
}

// NewStore wraps already-decoded sections. The store keeps its own copy of the slice.
func NewStore(sections []core.Section) *Store {
	s := &Store{
		sections: append([]core.Section(nil), sections...),
		byID:     make(map[string]int, len(sections)),
	}
	for i, sec := range s.sections {
		s.byID[sec.ID] = i
	}
	return s
}

// Sections returns every section in dataset order.
func (s *Store) Sections() []core.Section {
	return append([]core.Section(nil), s.sections...)
}

// Section returns the section with the given id.
func (s *Store) Section(id string) (core.Section, error) {
	i, ok := s.byID[id]
	if !ok {
		return core.Section{}, fmt.Errorf("%w: %s", core.ErrSectionNotFound, id)
	}
	return s.sections[i], nil
}

// Len returns the number of sections.
func (s *Store) Len() int {
	return len(s.sections)
}

// Summary is a section without its rows.
type Summary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ParticipantCount int    `json:"participantCount"`
	TotalSurveys     int    `json:"totalSurveys"`
	RowCount         int    `json:"rowCount"`
}

// Summaries lists every section without rows, in dataset order.
func (s *Store) Summaries() []Summary {
	out := make([]Summary, len(s.sections))
	for i, sec := range s.sections {
		out[i] = Summary{
			ID:               sec.ID,
			Title:            sec.Title,
			Description:      sec.Description,
			ParticipantCount: sec.ParticipantCount,
			TotalSurveys:     sec.TotalSurveys,
			RowCount:         len(sec.Rows),
		}
	}
	return out
}
