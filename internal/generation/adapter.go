package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/prompts"
	"github.com/jonathan/cold-outreach/internal/ratelimit"
	"github.com/jonathan/cold-outreach/internal/resume"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Default values substituted for fields the provider omits.
const (
	defaultExperience = "Professional experience"
	defaultEducation  = "Education background"
	defaultSubject    = "Job Application - Your Name"
	defaultBody       = "Default email body"

	maxSubjectLen      = 60
	maxRecoveredBody   = 1500
	errorFallbackEmail = "ai@example.com"
)

// Adapter wraps the LLM client with the outreach-specific prompt,
// parsing, and fallback policy. Its operations never return errors:
// any provider failure degrades to a heuristic or template result and
// is visible only in the provenance tag.
type Adapter struct {
	client llm.Client
	gate   *ratelimit.Gate
	tier   llm.ModelTier
}

// NewAdapter returns an Adapter paced by the given gate.
func NewAdapter(client llm.Client, gate *ratelimit.Gate) *Adapter {
	return &Adapter{
		client: client,
		gate:   gate,
		tier:   llm.TierAdvanced,
	}
}

// aiResume is the strict shape expected from the extraction prompt.
// Every field is optional in the provider's response; withDefaults
// fills in what is missing.
type aiResume struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
}

// withDefaults validates a parsed provider response and substitutes
// named defaults for missing fields. This is the only place extraction
// defaults are applied.
func withDefaults(p aiResume) types.ResumeData {
	data := types.ResumeData{
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Experience:    p.Experience,
		Education:     p.Education,
		Skills:        p.Skills,
		ParsingMethod: types.MethodAI,
	}
	if data.Name == "" {
		data.Name = types.SentinelNameNotFound
	}
	if data.Email == "" {
		data.Email = types.SentinelEmailDefault
	}
	if data.Experience == "" {
		data.Experience = defaultExperience
	}
	if data.Education == "" {
		data.Education = defaultEducation
	}
	if len(data.Skills) == 0 {
		data.Skills = []string{"General skills"}
	}
	return data
}

// ExtractResume extracts structured resume data from raw text via the
// provider. Fallback order: throttled → heuristic extractor (a policy
// decision, not an error), unparseable response → partial field
// recovery, quota-style provider error → heuristic extractor, any
// other provider error → sentinel record. Never fails.
func (a *Adapter) ExtractResume(ctx context.Context, resumeText string) types.ResumeData {
	// A nil client means no provider is configured; run in pure
	// fallback mode.
	if a.client == nil || a.gate.ShouldThrottle() {
		return resume.Extract(resumeText)
	}

	prompt := prompts.Format(prompts.MustGet("extraction.json", "extract-resume"), map[string]string{
		"ResumeText": resumeText,
	})

	a.gate.RecordRequest()
	text, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		if isQuotaError(err) {
			return resume.Extract(resumeText)
		}
		return types.ResumeData{
			Name:          types.SentinelExtractionFail,
			Email:         errorFallbackEmail,
			Experience:    types.SentinelExtractionFail,
			Education:     types.SentinelExtractionFail,
			Skills:        []string{types.SentinelExtractionFail},
			ParsingMethod: types.MethodAIError,
		}
	}

	var parsed aiResume
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return recoverPartialResume(resumeText)
	}
	return withDefaults(parsed)
}

// recoverPartialResume salvages what it can from the source text when
// the provider's response is not valid JSON.
func recoverPartialResume(resumeText string) types.ResumeData {
	email := resume.ExtractEmail(resumeText)
	if email == "" {
		email = types.SentinelEmailDefault
	}
	skills := resume.MatchSkills(resumeText)
	if len(skills) == 0 {
		skills = []string{"General skills"}
	}
	return types.ResumeData{
		Name:          types.SentinelNameHeuristic,
		Email:         email,
		Phone:         resume.ExtractPhone(resumeText),
		Experience:    defaultExperience,
		Education:     defaultEducation,
		Skills:        skills,
		ParsingMethod: types.MethodAIFallback,
	}
}

// GenerateColdEmail drafts one personalized email for a contact.
// Fallback order mirrors ExtractResume: throttled or provider error →
// template generator, unparseable response → line-scan recovery.
// Never fails.
func (a *Adapter) GenerateColdEmail(ctx context.Context, contact types.Contact, data types.ResumeData) (subject, body string) {
	if a.client == nil || a.gate.ShouldThrottle() {
		return TemplateEmail(contact, data)
	}

	prompt := prompts.Format(prompts.MustGet("outreach.json", "cold-email"), map[string]string{
		"ContactName":    contact.Name,
		"ContactTitle":   contact.Title,
		"ContactCompany": contact.Company,
		"ContactEmail":   contact.Email,
		"CandidateName":  data.Name,
		"Experience":     data.Experience,
		"Skills":         strings.Join(data.Skills, ", "),
		"Education":      data.Education,
	})

	a.gate.RecordRequest()
	text, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		return TemplateEmail(contact, data)
	}

	var parsed struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return recoverEmailText(text)
	}
	if parsed.Subject == "" {
		parsed.Subject = defaultSubject
	}
	if parsed.Body == "" {
		parsed.Body = defaultBody
	}
	return parsed.Subject, parsed.Body
}

// recoverEmailText scavenges a subject/body pair from a prose response.
// The subject comes from the first "Subject:" line; the body is the
// rest of the text, capped at a sane length.
func recoverEmailText(text string) (subject, body string) {
	subject = defaultSubject
	lines := strings.Split(text, "\n")
	bodyLines := lines
	for i, line := range lines {
		lower := strings.ToLower(line)
		if idx := strings.Index(lower, "subject:"); idx >= 0 {
			subject = strings.TrimSpace(line[idx+len("subject:"):])
			bodyLines = append(append([]string{}, lines[:i]...), lines[i+1:]...)
			break
		}
	}
	if len(subject) > maxSubjectLen {
		subject = subject[:maxSubjectLen]
	}
	body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if len(body) > maxRecoveredBody {
		body = body[:maxRecoveredBody]
	}
	return subject, body
}

// isQuotaError reports whether a provider error looks like quota or
// rate-limit exhaustion rather than a hard failure.
func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate") ||
		strings.Contains(msg, "limit")
}
