package contacts

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/cold-outreach/internal/types"
)

// ParseHTML imports contacts from an HTML document containing a contact
// table. Each <tr> yields one candidate tuple from its cell texts; header
// rows (matched by the same signature as the text path, or made of <th>
// cells) are skipped. Cell tuples go through the positional validator, so the
// 3/4/5-column layouts accepted for CSV work here too.
func ParseHTML(r io.Reader) ([]types.Contact, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{
			Strategy: "html",
			Message:  "failed to parse HTML document",
			Cause:    err,
		}
	}

	result := make([]types.Contact, 0)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}

		fields := make([]string, 0, 5)
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			fields = append(fields, strings.TrimSpace(cell.Text()))
		})

		if len(fields) == 0 || IsHeaderRow(strings.Join(fields, " ")) {
			return
		}
		if contact, ok := ContactFromFields(fields); ok {
			result = append(result, contact)
		}
	})

	types.Renumber(result)
	return result, nil
}
