package core

import (
	"fmt"
	"path/filepath"
)

// SourceExt is the extension of every survey export in the data directory.
const SourceExt = ".txt"

// CatalogEntry maps a source file identifier to its display title.
type CatalogEntry struct {
	Source string // File base name without extension: "oma_csv_1"
	Title  string // Display title: "İyileştirme Çalışmaları"
}

// FileName returns the entry's source file name.
func (e CatalogEntry) FileName() string {
	return e.Source + SourceExt
}

// Path returns the entry's source file path under dataDir.
func (e CatalogEntry) Path(dataDir string) string {
	return filepath.Join(dataDir, e.FileName())
}

// Catalog is the ordered list of survey sections. Position in the list, not
// processing order, determines each section's id.
type Catalog []CatalogEntry

// SectionID returns the stable id for the entry at the given 0-based position.
func SectionID(position int) string {
	return fmt.Sprintf("section_%d", position+1)
}

// Validate checks that the catalog has no blank or repeated sources.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for i, e := range c {
		if e.Source == "" {
			return fmt.Errorf("catalog entry %d: empty source", i+1)
		}
		if e.Title == "" {
			return fmt.Errorf("catalog entry %d (%s): empty title", i+1, e.Source)
		}
		if seen[e.Source] {
			return fmt.Errorf("catalog entry %d: duplicate source %q", i+1, e.Source)
		}
		seen[e.Source] = true
	}
	return nil
}

// Lookup returns the entry for a source identifier and its 0-based position.
func (c Catalog) Lookup(source string) (CatalogEntry, int, bool) {
	for i, e := range c {
		if e.Source == source {
			return e, i, true
		}
	}
	return CatalogEntry{}, -1, false
}

// DefaultCatalog returns the survey topics of the OMA student satisfaction
// survey, in report order. A fresh slice is returned on every call.
func DefaultCatalog() Catalog {
	return Catalog{
		{Source: "oma_csv_1", Title: "İyileştirme Çalışmaları"},
		{Source: "oma_csv_3", Title: "Akademik Danışmanlık Hizmetleri"},
		{Source: "oma_csv_6", Title: "Öğrenme Ortamları ve Kaynakları"},
		{Source: "oma_csv_7", Title: "Ders İçeriği ve Uygulaması"},
		{Source: "oma_csv_8", Title: "Öğretim Elemanlarının Nitelikleri"},
		{Source: "oma_csv_9", Title: "Ölçme ve Değerlendirme"},
		{Source: "oma_csv_10", Title: "Kariyer Rehberliği"},
		{Source: "oma_csv_11", Title: "Sosyal ve Kültürel Faaliyetler"},
		{Source: "oma_csv_12", Title: "Engelli Öğrenci Destekleri"},
		{Source: "oma_csv_13", Title: "İdari ve Mali Hizmetler"},
		{Source: "oma_csv_14", Title: "Kütüphane Hizmetleri"},
		{Source: "oma_csv_15", Title: "Bilgi İşlem ve Teknoloji"},
		{Source: "oma_csv_16", Title: "Yurtdışı Öğrenme Fırsatları"},
		{Source: "oma_csv_17", Title: "Gözlemci Öğrenci Perspektifi"},
		{Source: "oma_csv_18", Title: "Kalite Güvence Sistemi"},
		{Source: "oma_csv_19", Title: "Araştırma Desteği"},
		{Source: "oma_csv_20", Title: "Üniversite-Sanayi İşbirliği"},
		{Source: "oma_csv_21", Title: "Uluslararası İlişkiler ve Değişim Programları"},
	}
}
