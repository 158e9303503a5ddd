package format

import (
	"encoding/json"
	"io"

	"github.com/oasguard/oasguard/problems"
)

// JSON renders problems as a stable wire shape: one object per source
// with its problems and totals, field order fixed by this package's own
// struct tags rather than map iteration.
type JSON struct{}

type jsonLocationStep struct {
	SourceURI   string `json:"sourceUri"`
	Pointer     string `json:"pointer"`
	ReportOnKey bool   `json:"reportOnKey"`
}

type jsonProblem struct {
	RuleID   string             `json:"ruleId"`
	Severity string             `json:"severity"`
	Message  string             `json:"message"`
	Suggest  []string           `json:"suggest,omitempty"`
	Location []jsonLocationStep `json:"location"`
	From     *jsonLocationStep  `json:"from,omitempty"`
}

type jsonTotals struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Ignored  int `json:"ignored"`
}

type jsonResult struct {
	Source   string        `json:"source"`
	Problems []jsonProblem `json:"problems"`
	Totals   jsonTotals    `json:"totals"`
}

func toJSONLocation(steps []problems.LocationStep) []jsonLocationStep {
	out := make([]jsonLocationStep, len(steps))
	for i, s := range steps {
		out[i] = jsonLocationStep{SourceURI: s.SourceURI, Pointer: s.Pointer, ReportOnKey: s.ReportOnKey}
	}
	return out
}

// Format implements Formatter.
func (JSON) Format(w io.Writer, results []Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		jp := make([]jsonProblem, len(r.Problems))
		for j, p := range r.Problems {
			entry := jsonProblem{
				RuleID:   p.RuleID,
				Severity: string(p.Severity),
				Message:  p.Message,
				Suggest:  p.Suggest,
				Location: toJSONLocation(p.Location),
			}
			if p.From != nil {
				from := jsonLocationStep{SourceURI: p.From.SourceURI, Pointer: p.From.Pointer, ReportOnKey: p.From.ReportOnKey}
				entry.From = &from
			}
			jp[j] = entry
		}
		out[i] = jsonResult{
			Source:   r.SourceURI,
			Problems: jp,
			Totals:   jsonTotals{Errors: r.Totals.Errors, Warnings: r.Totals.Warnings, Ignored: r.Totals.Ignored},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
