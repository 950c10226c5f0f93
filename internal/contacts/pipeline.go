// Package contacts turns raw contact-list files into validated Contact
// records through an ordered chain of parsing strategies.
package contacts

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/jonathan/cold-outreach/internal/pdftext"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Kind is the declared format of an imported contact file.
type Kind string

const (
	KindCSV  Kind = "csv"
	KindPDF  Kind = "pdf"
	KindHTML Kind = "html"
)

// KindFromPath infers the import kind from a file extension. Unknown
// extensions are treated as CSV, the most forgiving path.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return KindPDF
	case ".html", ".htm":
		return KindHTML
	default:
		return KindCSV
	}
}

// Strategy is one named parsing path. Strategies are tried in order until one
// yields at least one valid contact; a strategy error is a signal to fall
// through, not a terminal failure. Keeping the chain as data makes each
// policy independently testable.
type Strategy struct {
	Name  string
	Parse func(data []byte) ([]types.Contact, error)
}

// StrategiesFor returns the ordered fallback chain for an import kind. The
// PDF chain tries table-geometry reconstruction first and degrades to line
// heuristics over the flattened text.
func StrategiesFor(kind Kind) []Strategy {
	switch kind {
	case KindPDF:
		return []Strategy{
			{Name: "table-geometry", Parse: parsePDFTable},
			{Name: "line-heuristic", Parse: parsePDFLines},
		}
	case KindHTML:
		return []Strategy{
			{Name: "html-table", Parse: func(data []byte) ([]types.Contact, error) {
				return ParseHTML(bytes.NewReader(data))
			}},
		}
	default:
		return []Strategy{
			{Name: "csv", Parse: func(data []byte) ([]types.Contact, error) {
				return ParseCSV(string(data)), nil
			}},
		}
	}
}

// Parse runs the strategy chain for the declared kind. A zero-contact result
// after every strategy has run is the terminal ErrNoContacts condition, which
// the caller must surface together with the manual-entry alternative.
func Parse(data []byte, kind Kind) ([]types.Contact, error) {
	for _, strategy := range StrategiesFor(kind) {
		result, err := strategy.Parse(data)
		if err != nil {
			continue
		}
		if len(result) > 0 {
			return result, nil
		}
	}
	return nil, ErrNoContacts
}

// parsePDFTable reconstructs table rows from positioned fragments and runs
// each recovered tuple through the positional validator.
func parsePDFTable(data []byte) ([]types.Contact, error) {
	pages, err := pdftext.ExtractFragments(data)
	if err != nil {
		return nil, &ParseError{Strategy: "table-geometry", Message: "fragment extraction failed", Cause: err}
	}

	result := make([]types.Contact, 0)
	for _, fragments := range pages {
		for _, fields := range pdftext.TableRows(fragments) {
			if contact, ok := ContactFromFields(fields); ok {
				result = append(result, contact)
			}
		}
	}

	types.Renumber(result)
	return result, nil
}

// parsePDFLines flattens the document to text and applies the line heuristic.
func parsePDFLines(data []byte) ([]types.Contact, error) {
	text, err := pdftext.ExtractText(data)
	if err != nil {
		return nil, &ParseError{Strategy: "line-heuristic", Message: "text extraction failed", Cause: err}
	}
	return ParseLines(text), nil
}
