package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/chartparse/parse"
)

type JSONEncoder struct {
	w   io.Writer
	res *parse.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(res *parse.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := BuildResult(e.res)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// JSONResult is the JSON shape of a parse result.
type JSONResult struct {
	Sentence    []string        `json:"sentence"`
	Start       string          `json:"start"`
	Success     bool            `json:"success"`
	Derivations []int           `json:"derivations"`
	Trees       []string        `json:"trees,omitempty"`
	Chart       []JSONWordChart `json:"chart"`
}

type JSONWordChart struct {
	Position int       `json:"position"`
	Predict  []JSONRow `json:"predict"`
	Scan     []JSONRow `json:"scan"`
	Complete []JSONRow `json:"complete"`
}

type JSONRow struct {
	ID        int      `json:"id"`
	LHS       string   `json:"lhs"`
	BeforeDot []string `json:"beforeDot"`
	AfterDot  []string `json:"afterDot"`
	Start     int      `json:"start"`
	End       int      `json:"end"`
	History   []int    `json:"history"`
}

// BuildResult converts res into its JSON shape.
func BuildResult(res *parse.Result) (JSONResult, error) {
	data := JSONResult{
		Sentence:    nonNilStrings(res.Sentence),
		Start:       res.Start,
		Success:     res.Success(),
		Derivations: nonNilInts(res.Derivations),
	}

	trees, err := res.Trees()
	if err != nil {
		return data, err
	}
	for _, tree := range trees {
		data.Trees = append(data.Trees, Bracket(tree))
	}

	for i, wc := range res.Chart.Words {
		data.Chart = append(data.Chart, JSONWordChart{
			Position: i,
			Predict:  buildRows(res.Chart, wc.Predict),
			Scan:     buildRows(res.Chart, wc.Scan),
			Complete: buildRows(res.Chart, wc.Complete),
		})
	}
	return data, nil
}

func buildRows(chart *parse.Chart, section parse.Section) []JSONRow {
	rows := chart.Resolve(section)
	result := make([]JSONRow, len(rows))
	for i, row := range rows {
		result[i] = JSONRow{
			ID:        row.ID,
			LHS:       row.Dotted.LHS,
			BeforeDot: nonNilStrings(row.Dotted.BeforeDot),
			AfterDot:  nonNilStrings(row.Dotted.AfterDot),
			Start:     row.Span.Start,
			End:       row.Span.End,
			History:   nonNilInts(row.History),
		}
	}
	return result
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
