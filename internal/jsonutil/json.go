// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w. Pair IDs are user text, so
// HTML escaping is turned off to keep them readable.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
