package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/chartparse/parse"
)

// TextEncoder writes the chart one row per line, grouped by section and
// position, followed by a summary line:
//
//	16 | S -> NP VP . | [0-2] | (4,13)
//	...
//	SUCCESS (1 derivations): [16]
type TextEncoder struct {
	w     io.Writer
	res   *parse.Result
	trees bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

// WithTrees makes the encoder append the bracketed tree of each derivation.
func (e *TextEncoder) WithTrees() *TextEncoder {
	e.trees = true
	return e
}

func (e *TextEncoder) Encode(res *parse.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	chart := e.res.Chart
	for _, wc := range chart.Words {
		for _, section := range wc.Sections() {
			for _, row := range chart.Resolve(section) {
				buf.WriteString(Row(row))
				buf.WriteByte('\n')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("--------\n")
	}
	buf.WriteString(Summary(e.res))
	buf.WriteByte('\n')

	if e.trees {
		trees, err := e.res.Trees()
		if err != nil {
			return nil, err
		}
		for _, tree := range trees {
			fmt.Fprintf(&buf, "%d: %s\n", tree.Row, Bracket(tree))
		}
	}
	return buf.Bytes(), nil
}

// Row renders a single chart row.
func Row(row *parse.Row) string {
	return fmt.Sprintf("%d | %s | [%d-%d] | (%s)",
		row.ID, row.Dotted, row.Span.Start, row.Span.End, joinInts(row.History))
}

// Summary renders the outcome line of a parse.
func Summary(res *parse.Result) string {
	if !res.Success() {
		return "FAILURE"
	}
	return fmt.Sprintf("SUCCESS (%d derivations): [%s]", len(res.Derivations), joinInts(res.Derivations))
}

func joinInts(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, ",")
}
