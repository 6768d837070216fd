package format

import (
	"encoding/json"
	"io"
)

func WriteJSONAnswer(w io.Writer, r Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}
