package contacts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

var multiSpace = regexp.MustCompile(`\s{2,}`)
var anySpace = regexp.MustCompile(`\s+`)

// ParseLines is the last-resort heuristic for plain extracted text with no
// recoverable table geometry. Each non-blank, non-header line is tried first
// as a fixed-width table row (columns separated by runs of 2+ spaces), then
// as a free-form line anchored on its email token. Lines that yield nothing
// are dropped.
func ParseLines(text string) []types.Contact {
	result := make([]types.Contact, 0)
	for _, line := range nonBlankLines(text) {
		line = strings.TrimSpace(line)
		if IsHeaderRow(line) {
			continue
		}
		contact, ok := parseTableLine(line)
		if !ok {
			contact, ok = parseFreeFormLine(line)
		}
		if ok {
			result = append(result, contact)
		}
	}

	types.Renumber(result)
	return result
}

// IsHeaderRow matches the header signature of exported contact tables:
// a serial-number column label, or a name column next to an email column.
func IsHeaderRow(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "sno") {
		return true
	}
	return strings.Contains(lower, "name") && strings.Contains(lower, "email")
}

// parseTableLine treats runs of 2+ spaces as column boundaries, the way most
// table renderers pad columns.
func parseTableLine(line string) (types.Contact, bool) {
	normalized := strings.TrimSpace(line)
	parts := multiSpace.Split(normalized, -1)
	if len(parts) < 4 {
		return types.Contact{}, false
	}
	return ContactFromFields(parts)
}

// parseFreeFormLine recovers a contact from a single-spaced line by locating
// the email token and assigning everything before it to the name and
// everything after it to title + company (company last).
func parseFreeFormLine(line string) (types.Contact, bool) {
	normalized := anySpace.ReplaceAllString(strings.TrimSpace(line), " ")
	parts := strings.Split(normalized, " ")

	emailIdx := -1
	for i, part := range parts {
		if types.IsPlausibleEmail(part) && !strings.Contains(part, "http") && !strings.Contains(part, "www") {
			emailIdx = i
			break
		}
	}
	if emailIdx == -1 {
		return types.Contact{}, false
	}

	nameStart := 0
	if len(parts) > 0 {
		if _, err := strconv.Atoi(parts[0]); err == nil {
			nameStart = 1 // leading serial column
		}
	}

	name := strings.Join(parts[nameStart:emailIdx], " ")
	rest := parts[emailIdx+1:]
	if name == "" || len(rest) == 0 {
		return types.Contact{}, false
	}

	company := rest[len(rest)-1]
	title := strings.Join(rest[:len(rest)-1], " ")

	return ContactFromFields([]string{name, parts[emailIdx], title, company})
}
