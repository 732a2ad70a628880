// Package report renders corpus run reports for people and for tools.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/andyballingall/unity-markup/internal/corpus"
	"github.com/andyballingall/unity-markup/internal/unity"
)

// JSONReporter implements corpus.Reporter for JSON output.
type JSONReporter struct{}

type jsonDocument struct {
	Path        string        `json:"path"`
	Expect      string        `json:"expect"`
	Valid       bool          `json:"valid"`
	Passed      bool          `json:"passed"`
	Label       string        `json:"label"`
	Errors      []unity.Error `json:"errors"`
	Error       string        `json:"error,omitempty"`
	SchemaError string        `json:"schemaError,omitempty"`
}

type jsonOutput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		TotalPassed int `json:"totalPassed"`
		TotalFailed int `json:"totalFailed"`
	} `json:"stats"`
	Documents []jsonDocument `json:"documents"`
}

func (jr *JSONReporter) Write(w io.Writer, r *corpus.Report) error {
	out := jsonOutput{
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.Duration().String(),
		Documents: []jsonDocument{},
	}

	for _, o := range r.Sorted() {
		doc := jsonDocument{
			Path:   o.Path,
			Expect: o.Expect.String(),
			Valid:  o.Valid(),
			Passed: o.Passed(),
			Label:  o.Label(),
			Errors: []unity.Error{},
		}
		if o.Result != nil && o.Result.Len() > 0 {
			doc.Errors = o.Result.Errors()
		}
		if o.Err != nil {
			doc.Error = o.Err.Error()
		}
		if o.SchemaErr != nil {
			doc.SchemaError = o.SchemaErr.Error()
		}
		if doc.Passed {
			out.Stats.TotalPassed++
		} else {
			out.Stats.TotalFailed++
		}
		out.Documents = append(out.Documents, doc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
