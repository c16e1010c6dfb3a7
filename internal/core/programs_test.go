package core

import (
	"slices"
	"testing"
)

func TestExtractPrograms(t *testing.T) {
	content := []byte("Program,Katılıyorum,Toplam\n" +
		"Tarih,40,100\n" +
		"Fizik,30,100\n" +
		"\n" +
		"Tarih,20,100\n" +
		",10,100\n" +
		"\"Kimya\",50,100\n" +
		"\"Foo, Bar\",1,100\n")

	got := ExtractPrograms(content)
	if got.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", got.TotalCount)
	}
	if got.UniqueCount != 4 {
		t.Errorf("UniqueCount = %d, want 4", got.UniqueCount)
	}
	want := []string{"Tarih", "Fizik", "Kimya", "Foo, Bar"}
	if !slices.Equal(got.Programs, want) {
		t.Errorf("Programs = %v, want %v", got.Programs, want)
	}
}

func TestExtractPrograms_NoData(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"header only", "Program,Toplam\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPrograms([]byte(tt.content))
			if got.TotalCount != 0 || got.UniqueCount != 0 {
				t.Errorf("counts = %d/%d, want 0/0", got.TotalCount, got.UniqueCount)
			}
			if got.Programs == nil {
				t.Error("Programs is nil, want empty slice so it encodes as []")
			}
		})
	}
}
