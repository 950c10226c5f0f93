// Package pdftext extracts text from PDF files, both as plain text for resume
// processing and as positioned fragments for table reconstruction.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Fragment is one positioned piece of extracted text: the string plus the x/y
// page coordinates reported by the layout-aware extractor. Page coordinate
// systems are typically bottom-up, so larger y means closer to the top.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// ExtractionError reports a failure to read or decode a PDF.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractFragments returns the positioned text fragments of every page, one
// slice per page. Pages that fail to decode are skipped rather than failing
// the whole document.
func ExtractFragments(data []byte) ([][]Fragment, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to open document", Cause: err}
	}

	pages := make([][]Fragment, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		fragments := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			fragments = append(fragments, Fragment{Text: t.S, X: t.X, Y: t.Y})
		}
		if len(fragments) > 0 {
			pages = append(pages, fragments)
		}
	}

	return pages, nil
}

// ExtractText returns the document text with line structure recovered from
// fragment geometry, so downstream line-oriented heuristics see the same rows
// a human would. Falls back to the library's plain-text stream for pages
// without positioned content.
func ExtractText(data []byte) (string, error) {
	pages, err := ExtractFragments(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, fragments := range pages {
		for _, row := range Rows(fragments) {
			sb.WriteString(RowText(row))
			sb.WriteString("\n")
		}
	}
	if sb.Len() > 0 {
		return sb.String(), nil
	}

	return extractPlainText(data)
}

// extractPlainText reads the document through GetPlainText, losing layout but
// keeping the raw character stream. Used when no positioned content decodes.
func extractPlainText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open document", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", &ExtractionError{Message: "no extractable text in document"}
	}
	return sb.String(), nil
}
