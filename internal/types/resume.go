package types

// ParsingMethod tags a ResumeData record with the strategy that produced it.
// It is a diagnostic provenance marker, surfaced in printed summaries and in
// the session export; callers never branch on it for correctness.
type ParsingMethod string

const (
	MethodAI            ParsingMethod = "AI"
	MethodAIFallback    ParsingMethod = "AI (fallback)"
	MethodAIError       ParsingMethod = "AI (error)"
	MethodRegexFallback ParsingMethod = "Regex Fallback"
	MethodManualInput   ParsingMethod = "Manual Input"
	MethodManualEdit    ParsingMethod = "Manual Edit"
)

// Sentinel values used when extraction cannot recover a field. Callers must
// treat these as extraction failure, not as valid data.
const (
	SentinelNameNotFound   = "Name not found"
	SentinelNameHeuristic  = "Name extracted from resume"
	SentinelEmailDefault   = "email@example.com"
	SentinelExtractionFail = "AI extraction failed"
)

// ResumeData is the structured form of an uploaded resume. Name and Email are
// always populated, with sentinel fallback strings when extraction fails.
// Created once per session and replaceable only by a user edit.
type ResumeData struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Experience    string        `json:"experience"`
	Education     string        `json:"education"`
	Skills        []string      `json:"skills"`
	ParsingMethod ParsingMethod `json:"parsingMethod,omitempty"`
	Title         string        `json:"title,omitempty"`
	Location      string        `json:"location,omitempty"`
	LinkedIn      string        `json:"linkedin,omitempty"`
	Website       string        `json:"website,omitempty"`
	Summary       string        `json:"summary,omitempty"`
}

// ExtractionFailed reports whether the record's identity fields are sentinel
// values rather than extracted data.
func (r ResumeData) ExtractionFailed() bool {
	switch r.Name {
	case SentinelNameNotFound, SentinelNameHeuristic, SentinelExtractionFail, "":
		return true
	}
	return false
}
