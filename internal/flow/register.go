package flow

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/innovators-conclave/backend/internal/domain"
)

// Validation messages surfaced to the user by the registration form.
var (
	ErrMissingRequiredFields = errors.New("All required fields must be filled")
	ErrPasswordMismatch      = errors.New("Passwords do not match!")
	ErrCollegeNameRequired   = errors.New("College name is required for students")
	ErrCompanyNameRequired   = errors.New("Company name is required for professionals")
	ErrUnknownState          = errors.New("Selected state does not belong to the selected country")
)

// StatesByCountry backs the dependent country/state selectors.
var StatesByCountry = map[string][]string{
	"India": {"Andhra Pradesh", "Karnataka", "Maharashtra", "Tamil Nadu", "Telangana", "Delhi", "Gujarat", "Kerala", "West Bengal", "Uttar Pradesh"},
	"USA":   {"California", "Texas", "New York", "Florida", "Illinois", "Pennsylvania", "Ohio", "Georgia", "North Carolina", "Michigan"},
	"UK":    {"England", "Scotland", "Wales", "Northern Ireland"},
}

type RegistrationForm struct {
	FullName        string `validate:"required"`
	PhoneNumber     string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	Gender          string `validate:"required,oneof=male female other"`
	DateOfBirth     string `validate:"required"`
	Country         string `validate:"required"`
	State           string `validate:"required"`
	Pincode         string `validate:"required"`
	Profession      string `validate:"required,oneof=student professional"`
	CollegeName     string
	CompanyName     string
}

var validate = validator.New()

// Validate runs every client-side check that must pass before any network
// request is made.
func (f *RegistrationForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return ErrMissingRequiredFields
	}

	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}

	switch domain.Profession(f.Profession) {
	case domain.ProfessionStudent:
		if f.CollegeName == "" {
			return ErrCollegeNameRequired
		}
	case domain.ProfessionProfessional:
		if f.CompanyName == "" {
			return ErrCompanyNameRequired
		}
	}

	if states, ok := StatesByCountry[f.Country]; ok {
		known := false
		for _, s := range states {
			if s == f.State {
				known = true
				break
			}
		}
		if !known {
			return ErrUnknownState
		}
	}

	return nil
}

// SetCountry changes the country and clears the dependent state selection.
func (f *RegistrationForm) SetCountry(country string) {
	f.Country = country
	f.State = ""
}

// SetProfession changes the profession and clears the field belonging to the
// other branch, so exactly one of college/company survives.
func (f *RegistrationForm) SetProfession(profession string) {
	f.Profession = profession
	switch domain.Profession(profession) {
	case domain.ProfessionStudent:
		f.CompanyName = ""
	case domain.ProfessionProfessional:
		f.CollegeName = ""
	}
}

type RegistrationPhase int

const (
	RegistrationEditing RegistrationPhase = iota
	RegistrationSubmitting
	RegistrationRedirecting
)

// RegistrationFlow sequences the form through editing, submitting and the
// redirect to verification. While Submitting the UI must keep the submit
// control disabled; Submit refuses to fire twice.
type RegistrationFlow struct {
	Form    RegistrationForm
	Message string

	phase RegistrationPhase
	// Email carried forward to the verification step on success.
	VerificationEmail string
}

func (r *RegistrationFlow) Phase() RegistrationPhase {
	return r.phase
}

// Submit validates the form and, if clean, moves to Submitting. A validation
// failure surfaces its message and stays in Editing without any network call.
func (r *RegistrationFlow) Submit() bool {
	if r.phase != RegistrationEditing {
		return false
	}

	if err := r.Form.Validate(); err != nil {
		r.Message = err.Error()
		return false
	}

	r.Message = ""
	r.phase = RegistrationSubmitting
	return true
}

// Complete records a successful registration response and carries the email
// forward to the verification step.
func (r *RegistrationFlow) Complete(email string) {
	if r.phase != RegistrationSubmitting {
		return
	}
	r.VerificationEmail = email
	r.phase = RegistrationRedirecting
}

// Fail returns the form to the editable state with the server's message.
func (r *RegistrationFlow) Fail(message string) {
	if r.phase != RegistrationSubmitting {
		return
	}
	r.Message = message
	r.phase = RegistrationEditing
}
