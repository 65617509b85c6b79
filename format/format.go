// Package format renders parse results for people and programs.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/chartparse/parse"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(res *parse.Result) error
}

// New returns the encoder registered under name ("text" or "json").
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
