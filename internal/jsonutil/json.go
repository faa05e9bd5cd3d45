// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFile writes v as indented JSON to path, truncating any existing file.
func WriteFile(path string, v any) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create json")
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return EncodePretty(fh, v)
}
