package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/andyballingall/unity-markup/internal/corpus"
	"github.com/andyballingall/unity-markup/internal/unity"
)

// TextReporter implements corpus.Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colYellow    = "\033[33m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *corpus.Report) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "UNITY VALIDATION REPORT\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started: "), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.Duration().String()))
	fmt.Fprintf(w, "%s\n", divider)

	totalPassed := 0
	totalFailed := 0

	for _, o := range r.Sorted() {
		if o.Passed() {
			totalPassed++
			if tr.Verbose {
				tr.writeOutcome(w, o, colGreen, "PASS")
			}
			continue
		}
		totalFailed++
		tr.writeOutcome(w, o, colRed, "FAIL")
	}

	fmt.Fprintf(w, "%s\n", divider)
	summaryLabel := tr.cs(colBoldWhite, "Summary: ")
	summaryStats := fmt.Sprintf("%d passed, %d failed", totalPassed, totalFailed)
	statsColor := colBoldGreen
	if totalFailed > 0 {
		statsColor = colBoldRed
	}
	fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColor, summaryStats))
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}

func (tr *TextReporter) writeOutcome(w io.Writer, o *corpus.Outcome, col, status string) {
	pathCol := colWhite
	if status == "FAIL" {
		pathCol = colRed
	}
	fmt.Fprintf(w, "%s %s %s\n",
		tr.cs(col, "["+status+"]"),
		tr.cs(pathCol, o.Path),
		tr.cs(col, "("+o.Label()+")"))

	if o.Err != nil {
		fmt.Fprintf(w, "  %s %v\n", tr.cs(colRed, "✗"), o.Err)
		return
	}
	if o.Result == nil {
		return
	}

	// Errors of a document expected to be invalid are listed as confirmations.
	mark := tr.cs(colRed, "✗")
	if o.Passed() {
		mark = tr.cs(colGreen, "✓")
	}
	for _, e := range o.Result.Errors() {
		fmt.Fprintf(w, "  %s %s: %s\n", mark, tr.cs(colGrey, displayPath(e)), e.Message)
	}

	if o.SchemaErr != nil && o.Valid() {
		fmt.Fprintf(w, "  %s %s\n", tr.cs(colYellow, "!"),
			tr.cs(colYellow, "schema check disagrees: "+firstLine(o.SchemaErr.Error())))
	}
}

func displayPath(e unity.Error) string {
	if e.Path == "" {
		return "(root)"
	}
	return e.Path
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
