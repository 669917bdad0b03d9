package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"cinescan/internal/testsupport"
)

func TestLoadFile(t *testing.T) {
	path := testsupport.WriteCatalog(t, []Record{
		{ID: "tt1375666", Title: "Inception", Year: 2010},
		{ID: "tt0133093", Title: "The Matrix", Aliases: []string{"Matrix"}},
	})

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("LoadFile() = %d records, want 2", len(records))
	}
	if records[0].ID != "tt1375666" || records[1].Aliases[0] != "Matrix" {
		t.Errorf("records = %+v", records)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile(malformed) error = nil, want error")
	}
}
