package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/types"
)

func TestContactFromFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		expected types.Contact
		ok       bool
	}{
		{
			name:   "Five fields maps positionally and ignores serial",
			fields: []string{"7", "John Doe", "john@x.com", "HR", "Acme"},
			expected: types.Contact{
				Name: "John Doe", Email: "john@x.com", Title: "HR", Company: "Acme",
			},
			ok: true,
		},
		{
			name:   "Four fields has no serial column",
			fields: []string{"Jane Smith", "jane@y.org", "CTO", "Tech Co"},
			expected: types.Contact{
				Name: "Jane Smith", Email: "jane@y.org", Title: "CTO", Company: "Tech Co",
			},
			ok: true,
		},
		{
			name:   "Three fields defaults the title",
			fields: []string{"Jane Smith", "jane@x.com", "Tech Co"},
			expected: types.Contact{
				Name: "Jane Smith", Email: "jane@x.com", Title: types.DefaultTitle, Company: "Tech Co",
			},
			ok: true,
		},
		{
			name:   "Quoted values stripped one layer",
			fields: []string{`"John Doe"`, `'john@x.com'`, `"HR"`, `"Acme"`},
			expected: types.Contact{
				Name: "John Doe", Email: "john@x.com", Title: "HR", Company: "Acme",
			},
			ok: true,
		},
		{
			name:   "Empty title in four-field layout defaults",
			fields: []string{"Jane Smith", "jane@x.com", "", "Tech Co"},
			expected: types.Contact{
				Name: "Jane Smith", Email: "jane@x.com", Title: types.DefaultTitle, Company: "Tech Co",
			},
			ok: true,
		},
		{name: "Two fields rejected", fields: []string{"John", "john@x.com"}, ok: false},
		{name: "Short name rejected", fields: []string{"J", "john@x.com", "Acme"}, ok: false},
		{name: "Email without at rejected", fields: []string{"John Doe", "john.x.com", "Acme"}, ok: false},
		{name: "Email without dot after at rejected", fields: []string{"John Doe", "john@xcom", "Acme"}, ok: false},
		{name: "Short company rejected", fields: []string{"John Doe", "john@x.com", "A"}, ok: false},
		{name: "Empty tuple rejected", fields: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact, ok := ContactFromFields(tt.fields)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, contact)
			}
		})
	}
}

// Re-validating an already-validated contact's own field values yields an
// identical contact.
func TestContactFromFieldsIdempotent(t *testing.T) {
	first, ok := ContactFromFields([]string{"1", `"John Doe"`, "john@x.com", "HR", "Acme"})
	require.True(t, ok)

	second, ok := ContactFromFields([]string{first.Name, first.Email, first.Title, first.Company})
	require.True(t, ok)
	assert.Equal(t, first, second)
}

// Rejection is total over the bad-email predicate: no tuple with a
// structurally invalid email ever produces a record.
func TestContactFromFieldsRejectsAllBadEmails(t *testing.T) {
	badEmails := []string{"", "plain", "a@b", "a.b.c", "x@@y.com"}
	for _, email := range badEmails {
		_, ok := ContactFromFields([]string{"John Doe", email, "Acme"})
		assert.False(t, ok, "email %q should be rejected", email)
	}
}
