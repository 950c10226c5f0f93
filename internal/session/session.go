// Package session owns the state of one outreach run: the extracted
// resume, the validated contact list, generated email templates, and
// delivery tracking, plus the wizard step marker. It is the unit of
// JSON export and import.
package session

import (
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// Wizard steps, in order.
const (
	StepResume = iota
	StepContacts
	StepGenerate
	StepSend
	StepDone
)

// Session is the mutable state holder. It is not safe for concurrent
// use; the pipeline drives it from a single goroutine.
type Session struct {
	state types.SessionState
}

// New returns an empty session at the first step.
func New() *Session {
	return &Session{}
}

// State returns a copy of the current state for inspection or export.
func (s *Session) State() types.SessionState {
	return s.state
}

// CurrentStep returns the wizard step marker.
func (s *Session) CurrentStep() int {
	return s.state.CurrentStep
}

// AdvanceTo moves the step marker forward. Moving backwards is allowed
// so a user can redo an earlier step; state from later steps is kept.
func (s *Session) AdvanceTo(step int) {
	s.state.CurrentStep = step
}

// SetResume installs the session's resume record. A session holds one
// resume; setting it again replaces the previous record.
func (s *Session) SetResume(data types.ResumeData) {
	s.state.Resume = &data
}

// EditResume replaces the resume with user-edited values, tagging the
// record so its provenance reflects the manual change.
func (s *Session) EditResume(data types.ResumeData) {
	data.ParsingMethod = types.MethodManualEdit
	s.state.Resume = &data
}

// Resume returns the current resume record, or nil before upload.
func (s *Session) Resume() *types.ResumeData {
	return s.state.Resume
}

// SetContacts replaces the contact list and renumbers it densely.
func (s *Session) SetContacts(contacts []types.Contact) {
	types.Renumber(contacts)
	s.state.Contacts = contacts
}

// Contacts returns the current contact list.
func (s *Session) Contacts() []types.Contact {
	return s.state.Contacts
}

// SetTemplates installs the generated email templates.
func (s *Session) SetTemplates(templates []types.EmailTemplate) {
	s.state.EmailTemplates = templates
}

// Templates returns the generated email templates.
func (s *Session) Templates() []types.EmailTemplate {
	return s.state.EmailTemplates
}

// EditTemplate replaces the subject and body of the template with the
// given id. Returns false if no template matches.
func (s *Session) EditTemplate(id, subject, body string) bool {
	for i := range s.state.EmailTemplates {
		if s.state.EmailTemplates[i].ID == id {
			s.state.EmailTemplates[i].Subject = subject
			s.state.EmailTemplates[i].Body = body
			return true
		}
	}
	return false
}

// BulkEditTemplates applies one shared draft to every template,
// substituting per-contact and resume placeholders. Placeholders whose
// resume value is missing are left intact so the user can spot them.
func (s *Session) BulkEditTemplates(subject, body string) {
	for i := range s.state.EmailTemplates {
		tmpl := &s.state.EmailTemplates[i]
		tmpl.Subject = s.personalize(subject, tmpl)
		tmpl.Body = s.personalize(body, tmpl)
	}
}

func (s *Session) personalize(draft string, tmpl *types.EmailTemplate) string {
	pairs := []string{
		"[Contact Name]", tmpl.Contact.Name,
		"[Company Name]", tmpl.Company,
	}
	if r := s.state.Resume; r != nil {
		pairs = append(pairs,
			"[Your Name]", r.Name,
			"[Your Email]", r.Email,
		)
		if r.Phone != "" {
			pairs = append(pairs, "[Your Phone]", r.Phone)
		}
		if r.Experience != "" {
			pairs = append(pairs, "[Your Experience]", r.Experience)
		}
		if len(r.Skills) > 0 {
			n := len(r.Skills)
			if n > 3 {
				n = 3
			}
			pairs = append(pairs, "[Your Skills]", strings.Join(r.Skills[:n], ", "))
		}
	}
	return strings.NewReplacer(pairs...).Replace(draft)
}

// SetTracking installs the delivery tracking records.
func (s *Session) SetTracking(tracking []types.EmailTracking) {
	s.state.EmailTracking = tracking
}

// Tracking returns the delivery tracking records.
func (s *Session) Tracking() []types.EmailTracking {
	return s.state.EmailTracking
}
