package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleSections() []Section {
	return []Section{
		{
			ID:               "section_1",
			Title:            "İyileştirme Çalışmaları",
			Description:      DescriptionFor("İyileştirme Çalışmaları"),
			ParticipantCount: 1,
			TotalSurveys:     TotalSurveysPlaceholder,
			Rows: []SurveyRow{
				{Program: "A & B", StronglyDisagree: 5, Disagree: 10, Neutral: 15, Agree: 40, StronglyAgree: 30, Total: 100},
			},
		},
	}
}

func TestEncodeSections_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSections(&buf, sampleSections()); err != nil {
		t.Fatalf("EncodeSections() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"[\n  {\n    \"id\": \"section_1\"",
		`"participantCount": 1`,
		`"totalSurveys": 100`,
		`"Program": "A & B"`,
		`"kesinlikle_katilmiyorum": 5`,
		`"toplam": 100`,
		"İyileştirme Çalışmaları ile ilgili anket sonuçları",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEncodeSections_NilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSections(&buf, nil); err != nil {
		t.Fatalf("EncodeSections() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("EncodeSections(nil) = %q, want []", got)
	}
}

func TestWriteSections_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sections.json")
	in := sampleSections()

	if err := WriteSections(path, in); err != nil {
		t.Fatalf("WriteSections() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	got, err := ReadSections(f)
	if err != nil {
		t.Fatalf("ReadSections() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != in[0].ID || got[0].Rows[0] != in[0].Rows[0] {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want only the artifact", len(entries))
	}
}

func TestWriteSections_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A regular file where a directory is expected
	err := WriteSections(filepath.Join(blocker, "sections.json"), sampleSections())
	if !errors.Is(err, ErrWriteFailure) {
		t.Errorf("WriteSections() error = %v, want ErrWriteFailure", err)
	}
}
