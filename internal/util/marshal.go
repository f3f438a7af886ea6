// Package util holds small helpers shared by the CLI and server commands
// that don't belong to any one pipeline stage.
package util

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalNoEscape marshals v to JSON without HTML-escaping '<', '>' and
// '&', which the standard library escapes by default and which would
// otherwise mangle Hangul-adjacent punctuation and URLs in token output.
// When indent is true the output is pretty-printed with a two-space
// indent. The result has no trailing newline.
func MarshalNoEscape(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	out := buf.Bytes()
	return bytes.TrimRight(out, "\n"), nil
}
