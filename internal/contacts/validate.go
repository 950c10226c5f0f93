package contacts

import (
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// ContactFromFields applies positional-arity dispatch to a tuple of raw
// fields and returns a validated Contact:
//
//	5+ fields → (serial, name, email, title, company); the serial column is
//	            informational only and never kept
//	4 fields  → (name, email, title, company)
//	3 fields  → (name, email, company), title defaulted
//
// Tuples with fewer than 3 fields, a name or company shorter than 2
// characters, or an email without the local@domain.tld shape are rejected.
// Rejection returns ok=false; it never panics or errors. SequenceNumber is
// left at zero — callers renumber densely once the final order is known.
func ContactFromFields(fields []string) (types.Contact, bool) {
	if len(fields) < 3 {
		return types.Contact{}, false
	}

	var name, email, title, company string
	switch {
	case len(fields) >= 5:
		name, email, title, company = fields[1], fields[2], fields[3], fields[4]
	case len(fields) == 4:
		name, email, title, company = fields[0], fields[1], fields[2], fields[3]
	default:
		name, email, company = fields[0], fields[1], fields[2]
	}

	name = cleanValue(name)
	email = cleanValue(email)
	title = cleanValue(title)
	company = cleanValue(company)

	if len(name) < 2 {
		return types.Contact{}, false
	}
	if !types.IsPlausibleEmail(email) {
		return types.Contact{}, false
	}
	if len(company) < 2 {
		return types.Contact{}, false
	}

	if title == "" {
		title = types.DefaultTitle
	}

	return types.Contact{
		Name:    name,
		Email:   email,
		Title:   title,
		Company: company,
	}, true
}

// cleanValue trims whitespace and strips a single layer of surrounding quote
// characters. Applying it to an already-clean value is a no-op, so validation
// is idempotent over its own output.
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}
