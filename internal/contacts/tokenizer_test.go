package contacts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "Plain fields",
			line:     "John Doe,john@x.com,Acme",
			expected: []string{"John Doe", "john@x.com", "Acme"},
		},
		{
			name:     "Quoted field with embedded delimiter",
			line:     `"Doe, John",john@x.com,Acme`,
			expected: []string{"Doe, John", "john@x.com", "Acme"},
		},
		{
			name:     "Escaped delimiter outside quotes",
			line:     `Doe\, John,john@x.com,Acme`,
			expected: []string{"Doe, John", "john@x.com", "Acme"},
		},
		{
			// Escaped quotes become literal characters, but the field
			// cleanup still strips any quote run touching the edges.
			name:     "Escaped quote at field edge stripped with quoting",
			line:     `"He said \"hi\"",x@y.com,Acme`,
			expected: []string{`He said "hi`, "x@y.com", "Acme"},
		},
		{
			name:     "Escaped quotes in field interior survive",
			line:     `"He said \"hi\" today",x@y.com,Acme`,
			expected: []string{`He said "hi" today`, "x@y.com", "Acme"},
		},
		{
			name:     "Surrounding whitespace trimmed",
			line:     "  John Doe , john@x.com ,  Acme  ",
			expected: []string{"John Doe", "john@x.com", "Acme"},
		},
		{
			name:     "Unbalanced quote implicitly closed at end of line",
			line:     `"John Doe,john@x.com`,
			expected: []string{"John Doe,john@x.com"},
		},
		{
			name:     "Empty fields preserved positionally",
			line:     "a,,c",
			expected: []string{"a", "", "c"},
		},
		{
			name:     "Single field",
			line:     "lonely",
			expected: []string{"lonely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitDelimited(tt.line, ','))
		})
	}
}

// Tokenizing then re-joining with commas reproduces the original trimmed
// fields for lines without embedded delimiters.
func TestSplitDelimitedRoundTrip(t *testing.T) {
	lines := []string{
		"John Doe,john@x.com,HR,Acme",
		"1,Jane Smith,jane@y.org,CTO,Tech Co",
		"a,b,c",
	}

	for _, line := range lines {
		fields := SplitDelimited(line, ',')
		assert.Equal(t, line, strings.Join(fields, ","))
	}
}
