// Package generation produces outreach emails: AI-drafted when the
// provider is available, template-based otherwise. Every operation in
// this package returns a usable result; provider failures degrade to
// fallbacks and are reflected only in provenance tags.
package generation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// emailTemplate is one fixed prose template for the non-AI path.
// Subject and body are fmt format strings filled by render.
type emailTemplate struct {
	render func(contact types.Contact, data types.ResumeData) (subject, body string)
}

var emailTemplates = []emailTemplate{
	{render: renderApplicationTemplate},
	{render: renderInterestTemplate},
	{render: renderOpportunityTemplate},
}

// TemplateEmail fills one of the fixed prose templates with contact and
// resume fields. Selection is random; this is a fallback path, not a
// correctness-critical one. It never fails: all inputs are treated as
// plain strings and missing values render as empty strings.
func TemplateEmail(contact types.Contact, data types.ResumeData) (subject, body string) {
	t := emailTemplates[rand.Intn(len(emailTemplates))]
	return t.render(contact, data)
}

func renderApplicationTemplate(contact types.Contact, data types.ResumeData) (string, string) {
	subject := fmt.Sprintf("Job Application - %s for %s", data.Name, contact.Company)
	body := fmt.Sprintf(`Dear %s,

I hope this email finds you well. I am writing to express my interest in potential opportunities at %s.

With my background in %s and skills in %s, I believe I could be a valuable addition to your team.

I have attached my resume for your review and would welcome the opportunity to discuss how my experience aligns with your company's needs.

Thank you for your time and consideration.

Best regards,
%s
%s%s`,
		contact.Name, contact.Company, data.Experience, joinSkills(data.Skills, 3),
		data.Name, data.Email, optionalLine(data.Phone))
	return subject, body
}

func renderInterestTemplate(contact types.Contact, data types.ResumeData) (string, string) {
	subject := fmt.Sprintf("Interested in joining %s - %s", contact.Company, data.Name)
	body := fmt.Sprintf(`Dear %s,

I hope you're having a great day. I'm reaching out because I'm very interested in the work %s is doing and would love to explore potential opportunities to contribute to your team.

My experience in %s has equipped me with the skills needed to make an immediate impact. I'm particularly excited about %s's mission and believe my background in %s would be valuable to your organization.

I've attached my resume and would appreciate the opportunity to discuss how I can contribute to %s's continued success.

Thank you for considering my application.

Best regards,
%s
%s`,
		contact.Name, contact.Company, data.Experience, contact.Company,
		strings.Join(firstN(data.Skills, 2), " and "), contact.Company,
		data.Name, data.Email)
	return subject, body
}

func renderOpportunityTemplate(contact types.Contact, data types.ResumeData) (string, string) {
	subject := fmt.Sprintf("Career Opportunity at %s", contact.Company)
	body := fmt.Sprintf(`Dear %s,

I hope this message reaches you well. I am writing to express my strong interest in career opportunities at %s.

With my background in %s and expertise in %s, I am confident I can bring valuable contributions to your team.

I have attached my resume for your review and would welcome the opportunity to discuss how my skills and experience align with %s's needs.

Thank you for your time and consideration.

Best regards,
%s
%s%s`,
		contact.Name, contact.Company, data.Experience, joinSkills(data.Skills, 3),
		contact.Company, data.Name, data.Email, optionalLine(data.Phone))
	return subject, body
}

func firstN(skills []string, n int) []string {
	if len(skills) < n {
		return skills
	}
	return skills[:n]
}

func joinSkills(skills []string, n int) string {
	return strings.Join(firstN(skills, n), ", ")
}

// optionalLine renders a trailing signature line only when the value
// is present, keeping signatures free of blank lines.
func optionalLine(s string) string {
	if s == "" {
		return ""
	}
	return "\n" + s
}
