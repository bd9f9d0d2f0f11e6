package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and decodes a layout description file. Unknown fields are
// ignored; a missing file or a payload that does not decode into the
// expected top-level shape is a fatal error for the conversion.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Decode(data)
}

// Decode parses a layout description from raw JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout JSON: %w", err)
	}
	if doc.Pages == nil {
		return nil, fmt.Errorf("invalid layout description: missing pdf_info page list")
	}
	return &doc, nil
}
