package contacts

import (
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// headerScanLimit bounds how many leading lines are inspected for a header.
const headerScanLimit = 5

// FindHeader scans at most the first 5 non-blank lines for a CSV header and
// returns the index of the first data line. A line is the header if,
// case-insensitively, it mentions "name" and "email" and at least one of
// "company" or "title". Headerless files start at line 0.
func FindHeader(lines []string) int {
	limit := headerScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		lower := strings.ToLower(lines[i])
		if strings.Contains(lower, "name") && strings.Contains(lower, "email") &&
			(strings.Contains(lower, "company") || strings.Contains(lower, "title")) {
			return i + 1
		}
	}
	return 0
}

// ParseCSV parses comma-delimited contact text: header detection, the
// delimited tokenizer, then the positional validator per row. Invalid rows
// are dropped; surviving contacts are renumbered densely in output order.
func ParseCSV(text string) []types.Contact {
	lines := nonBlankLines(text)
	start := FindHeader(lines)

	result := make([]types.Contact, 0, len(lines))
	for _, line := range lines[start:] {
		fields := SplitDelimited(line, ',')
		if contact, ok := ContactFromFields(fields); ok {
			result = append(result, contact)
		}
	}

	types.Renumber(result)
	return result
}

// nonBlankLines normalizes line endings and drops blank lines.
func nonBlankLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
