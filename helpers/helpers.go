package helpers

import (
	// Go Internal Packages
	"bytes"
	"encoding/json"
	"io"
)

// IndentJSON writes an encoded JSON document to w in pretty format with indent,
// followed by a newline
func IndentJSON(w io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
