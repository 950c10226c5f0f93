// Package types defines the core data entities shared across the outreach pipeline.
package types

import "strings"

// Contact represents one outreach target parsed from an imported contact list
// or entered manually. Contacts are immutable once validated; SequenceNumber
// reflects final position in the session's contact list, not any serial column
// that may have appeared in the source file.
type Contact struct {
	SequenceNumber int    `json:"sno"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Title          string `json:"title"`
	Company        string `json:"company"`
}

// DefaultTitle is substituted when an imported row carries no title column.
const DefaultTitle = "Not specified"

// HasValidEmail reports whether the contact's email has the minimal
// local@domain.tld shape: exactly one "@" and at least one "." after it.
func (c Contact) HasValidEmail() bool {
	return IsPlausibleEmail(c.Email)
}

// IsPlausibleEmail applies the structural email rule used by every parsing
// path: exactly one "@" with a "." somewhere in the domain part.
func IsPlausibleEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	at := strings.Index(email, "@")
	return strings.Contains(email[at+1:], ".")
}

// Renumber rewrites SequenceNumber densely as 1..N in slice order. Parsed
// serial columns are informational only; the session invariant is positional.
func Renumber(contacts []Contact) {
	for i := range contacts {
		contacts[i].SequenceNumber = i + 1
	}
}
