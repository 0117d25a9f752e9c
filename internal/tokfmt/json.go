package tokfmt

import (
	"encoding/json"
	"io"
)

// FormatJSON writes the token records as indented JSON.
func FormatJSON(w io.Writer, records []Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
