package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cold-outreach/internal/types"
)

// ManualContact is a user-entered contact, the fallback when no file
// import produced usable rows.
type ManualContact struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company" validate:"required,min=2"`
}

// Validate validates the ManualContact using the validator.
func (m *ManualContact) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// ManualResume is a user-entered resume record, the fallback when
// upload or extraction fails.
type ManualResume struct {
	Name       string   `json:"name" validate:"required,min=2"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone,omitempty"`
	Experience string   `json:"experience" validate:"required"`
	Education  string   `json:"education" validate:"required"`
	Skills     []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Validate validates the ManualResume using the validator.
func (m *ManualResume) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// AddManualContact validates and appends one user-entered contact,
// renumbering the list. An empty title gets the standard default.
func (s *Session) AddManualContact(input ManualContact) (types.Contact, error) {
	if err := input.Validate(); err != nil {
		return types.Contact{}, fmt.Errorf("invalid contact: %w", err)
	}

	title := input.Title
	if title == "" {
		title = types.DefaultTitle
	}
	contact := types.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Title:   title,
		Company: input.Company,
	}

	s.state.Contacts = append(s.state.Contacts, contact)
	types.Renumber(s.state.Contacts)
	return s.state.Contacts[len(s.state.Contacts)-1], nil
}

// SetManualResume validates and installs a user-entered resume record
// tagged with manual provenance.
func (s *Session) SetManualResume(input ManualResume) (types.ResumeData, error) {
	if err := input.Validate(); err != nil {
		return types.ResumeData{}, fmt.Errorf("invalid resume: %w", err)
	}

	data := types.ResumeData{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Experience:    input.Experience,
		Education:     input.Education,
		Skills:        input.Skills,
		ParsingMethod: types.MethodManualInput,
	}
	s.state.Resume = &data
	return data, nil
}
