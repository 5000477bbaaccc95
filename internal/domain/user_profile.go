package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Profession string

const (
	ProfessionStudent      Profession = "student"
	ProfessionProfessional Profession = "professional"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile is the denormalized registration record keyed by the user id.
// Exactly one of CollegeName/CompanyName is set, selected by Profession.
type UserProfile struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	FullName    string         `db:"full_name" json:"full_name"`
	Phone       string         `db:"phone" json:"phone"`
	Email       string         `db:"email" json:"email"`
	Gender      Gender         `db:"gender" json:"gender"`
	DateOfBirth string         `db:"date_of_birth" json:"date_of_birth"`
	Profession  Profession     `db:"profession" json:"profession"`
	CollegeName sql.NullString `db:"college_name" json:"college_name"`
	CompanyName sql.NullString `db:"company_name" json:"company_name"`
	Country     string         `db:"country" json:"country"`
	State       string         `db:"state" json:"state"`
	Pincode     string         `db:"pincode" json:"pincode"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
