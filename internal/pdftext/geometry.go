package pdftext

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var columnGap = regexp.MustCompile(`\s{2,}`)

// minTableColumns is the fewest recovered columns a fragment row may have and
// still be treated as a table row rather than prose.
const minTableColumns = 4

// Rows reconstructs the row/column structure a delimiter-free PDF table
// loses. Fragments whose y coordinates round to the same integer are bucketed
// into one row — the rounding tolerance absorbs sub-pixel baseline jitter
// within a visual line. Within a row fragments are ordered by x ascending
// (reading order); rows are ordered by y descending (top of page first).
func Rows(fragments []Fragment) [][]Fragment {
	buckets := make(map[int][]Fragment)
	for _, f := range fragments {
		key := int(math.Round(f.Y))
		buckets[key] = append(buckets[key], f)
	}

	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	rows := make([][]Fragment, 0, len(keys))
	for _, key := range keys {
		row := buckets[key]
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		rows = append(rows, row)
	}
	return rows
}

// RowText joins a row's fragments with single spaces, preserving the wide
// gaps the source fragments already contain as column padding.
func RowText(row []Fragment) string {
	parts := make([]string, len(row))
	for i, f := range row {
		parts[i] = f.Text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// SplitColumns recovers column boundaries from a joined row string. Table
// renderers pad columns with runs of spaces, not single spaces, so runs of 2+
// spaces are the boundary signal.
func SplitColumns(rowText string) []string {
	return columnGap.Split(rowText, -1)
}

// TableRows turns one page's fragments into candidate field tuples. Rows with
// fewer than 4 recovered columns and rows matching the table header signature
// are discarded; what survives is handed to the contact validator.
func TableRows(fragments []Fragment) [][]string {
	result := make([][]string, 0)
	for _, row := range Rows(fragments) {
		text := RowText(row)
		if isHeaderSignature(text) {
			continue
		}
		columns := SplitColumns(text)
		if len(columns) < minTableColumns {
			continue
		}
		result = append(result, columns)
	}
	return result
}

// isHeaderSignature matches the column-label row of an exported contact
// table: a serial column, or a name column next to an email column.
func isHeaderSignature(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "sno") {
		return true
	}
	return strings.Contains(lower, "name") && strings.Contains(lower, "email")
}
