package format

import (
	"encoding/xml"
	"io"

	"github.com/oasguard/oasguard/problems"
)

// Checkstyle renders problems as Checkstyle-format XML, the de facto
// lingua franca CI systems (GitHub Actions annotations, Jenkins, GitLab)
// ingest lint output as. No XML library appears anywhere in the example
// pack, which otherwise favors YAML/JSON throughout; encoding/xml is the
// correct, idiomatic stdlib choice for this one small, fixed-shape report
// (see DESIGN.md).
type Checkstyle struct{}

type checkstyleXML struct {
	XMLName xml.Name        `xml:"checkstyle"`
	Version string          `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string          `xml:"name,attr"`
	Errors []checkstyleErr `xml:"error"`
}

type checkstyleErr struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// checkstyleSeverity maps the 2-level problem severity to Checkstyle's
// 3-level vocabulary; oasguard never emits "info" itself.
func checkstyleSeverity(s problems.Severity) string {
	if s == problems.SeverityError {
		return "error"
	}
	return "warning"
}

// Format implements Formatter. Line/Column default to 1 when unknown:
// Checkstyle consumers generally require both attributes to be present.
func (Checkstyle) Format(w io.Writer, results []Result) error {
	doc := checkstyleXML{Version: "4.3"}
	for _, r := range results {
		file := checkstyleFile{Name: r.SourceURI}
		for _, p := range r.Problems {
			pointer := ""
			if len(p.Location) > 0 {
				pointer = p.Location[0].Pointer
			}
			line, column := r.position(pointer)
			file.Errors = append(file.Errors, checkstyleErr{
				Line:     line,
				Column:   column,
				Severity: checkstyleSeverity(p.Severity),
				Message:  p.Message + " (" + pointer + ")",
				Source:   p.RuleID,
			})
		}
		doc.Files = append(doc.Files, file)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
