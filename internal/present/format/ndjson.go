package format

import (
	"encoding/json"
	"io"
)

// WriteNDJSONAnswer writes the answer nodes as newline-delimited JSON objects.
func WriteNDJSONAnswer(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	for _, n := range r.Nodes {
		if err := enc.Encode(n); err != nil {
			return err
		}
	}
	return nil
}
