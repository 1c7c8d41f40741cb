package entity

import (
	"time"
)

// Gender is the fixed set of gender choices accepted at registration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User is the aggregate root for the account domain.
// PasswordHash is a bcrypt hash; the plaintext never leaves the registration path.
// UserID is the public identifier; ID is the internal row key and is never exposed.
type User struct {
	ID           int64
	UserID       string
	FullName     string
	Email        string
	CNIC         string
	Gender       Gender
	DOB          time.Time
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
