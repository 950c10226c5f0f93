// Package resume extracts structured candidate data from free-form resume
// text using regex and keyword heuristics. It is the non-AI fallback path:
// it never fails and always returns a complete record, substituting sentinel
// defaults for anything unrecoverable.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in priority order; the first match wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), // international-prefixed US shape
	regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),                          // parenthesized area code
	regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),                          // plain dashed
	regexp.MustCompile(`\+\d{1,3}\s?\d{1,4}\s?\d{1,4}\s?\d{1,4}`),                // generic international
}

// namePatterns match the capitalized multi-word shapes a name line takes.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`),            // First Last
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+$`),    // First M. Last
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+$`), // First Middle Last
}

// nameSkipKeywords disqualify a line from being a name.
var nameSkipKeywords = []string{
	"email", "phone", "experience", "education", "resume", "cv", "objective", "summary",
}

const (
	nameScanLines     = 10
	nameFallbackLines = 5
	experienceWindow  = 200
	educationWindow   = 150

	defaultExperience = "Professional experience extracted from resume"
	defaultEducation  = "Education background extracted from resume"
	defaultEmail      = "resume@example.com"
)

var experienceKeywords = []string{"experience", "work history", "employment", "career"}
var educationKeywords = []string{"education", "academic", "degree", "university", "college", "bachelor", "master", "phd"}

// Extract runs every field heuristic over the resume text and assembles a
// complete ResumeData tagged with RegexFallback provenance.
func Extract(text string) types.ResumeData {
	lines := nonEmptyLines(text)

	skills := MatchSkills(text)
	if len(skills) == 0 {
		skills = []string{"General Skills"}
	}

	email := ExtractEmail(text)
	if email == "" {
		email = defaultEmail
	}

	return types.ResumeData{
		Name:          ExtractName(lines),
		Email:         email,
		Phone:         ExtractPhone(text),
		Experience:    sectionSummary(text, experienceKeywords, experienceWindow, defaultExperience),
		Education:     sectionSummary(text, educationKeywords, educationWindow, defaultEducation),
		Skills:        skills,
		ParsingMethod: types.MethodRegexFallback,
	}
}

// ExtractEmail returns the first email-shaped match, or empty.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped match in pattern priority
// order, or empty.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// ExtractName scans the leading lines for a plausible name. Lines containing
// section keywords, or outside a 3-50 character window, are skipped. A line
// is accepted if it matches a capitalized-multi-word shape, or if it has 2-4
// title-cased words and no address-like tokens. If no line qualifies, a
// second pass takes the first two capitalized words anywhere in the first
// five lines; the ultimate fallback is a sentinel.
func ExtractName(lines []string) string {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		line := lines[i]
		if skipForName(line) {
			continue
		}
		for _, pattern := range namePatterns {
			if pattern.MatchString(line) {
				return line
			}
		}
		if looksLikeNameLine(line) {
			return line
		}
	}

	if name := capitalizedWordFallback(lines); name != "" {
		return name
	}
	return types.SentinelNameHeuristic
}

func skipForName(line string) bool {
	if len(line) < 3 || len(line) > 50 {
		return true
	}
	lower := strings.ToLower(line)
	for _, keyword := range nameSkipKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func looksLikeNameLine(line string) bool {
	if strings.Contains(line, "@") || strings.Contains(line, ".com") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		if !isTitleCased(word) {
			return false
		}
	}
	return true
}

func isTitleCased(word string) bool {
	if word == "" {
		return false
	}
	first := word[0]
	if first < 'A' || first > 'Z' {
		return false
	}
	rest := word[1:]
	return rest == strings.ToLower(rest)
}

// capitalizedWordFallback picks the first two capitalized, non-address words
// from the first few lines.
func capitalizedWordFallback(lines []string) string {
	limit := nameFallbackLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		words := strings.Fields(lines[i])
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		capitalized := make([]string, 0, len(words))
		for _, word := range words {
			if len(word) > 1 && word[0] >= 'A' && word[0] <= 'Z' &&
				!strings.Contains(word, "@") && !strings.Contains(word, ".com") &&
				!strings.Contains(word, ".org") && !strings.Contains(word, ".edu") {
				capitalized = append(capitalized, word)
			}
		}
		if len(capitalized) >= 2 {
			return strings.Join(capitalized[:2], " ")
		}
	}
	return ""
}

// sectionSummary takes a fixed window of text after the first occurrence of
// any section keyword.
func sectionSummary(text string, keywords []string, window int, fallback string) string {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		idx := strings.Index(lower, keyword)
		if idx == -1 {
			continue
		}
		start := idx + len(keyword)
		end := start + window
		if end > len(text) {
			end = len(text)
		}
		if summary := strings.TrimSpace(text[start:end]); summary != "" {
			return summary
		}
	}
	return fallback
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
