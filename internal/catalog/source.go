package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a JSON catalog file: an array of records. A missing or
// unreadable file is a hard error; any operation needing the index cannot
// proceed without the catalog.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return records, nil
}
