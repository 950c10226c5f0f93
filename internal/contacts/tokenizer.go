package contacts

import "strings"

// SplitDelimited splits one line of delimited text into trimmed field strings.
//
// Quoting rules: a double quote toggles quoted mode, and the delimiter is not
// recognized while quoted mode is open. A backslash escapes the following
// character literally, inside or outside quotes. An unbalanced quote is
// implicitly closed at end of line; the tokenizer never fails. Each emitted
// field is trimmed of surrounding whitespace and residual quote characters.
func SplitDelimited(line string, delim rune) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false
	escaped := false

	for _, ch := range line {
		switch {
		case escaped:
			current.WriteRune(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, cleanField(current.String()))

	return fields
}

// cleanField trims surrounding whitespace and any run of residual quote
// characters left over from the source formatting.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
