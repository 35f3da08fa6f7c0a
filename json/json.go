// Package json encodes command output with json-iterator, filling `default`
// struct tags before encoding.
package json

import (
	"io"

	"github.com/creasty/defaults"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Encoder struct {
	*jsoniter.Encoder
}

// NewEncoder returns an Encoder that indents with two spaces.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Encoder{Encoder: enc}
}

// Encode applies defaults.Set to v and writes it followed by a newline.
func (e *Encoder) Encode(v any) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return e.Encoder.Encode(v)
}
