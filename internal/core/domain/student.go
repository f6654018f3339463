package domain

import "errors"

var ErrMissingFields = errors.New("missing required fields")
var ErrStudentNotFound = errors.New("student not found")
var ErrNotProvisioned = errors.New("identity number and student id not provisioned")
var ErrAlreadyActivated = errors.New("student already activated")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Student is an account pre-provisioned by an admin roster import.
// It starts Provisioned (name, nic and student id only) and becomes
// Activated exactly once, when the student sets email and password.
type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NIC          string `json:"nic"`
	StudentID    string `json:"student_id"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
}

// Activated reports whether the student has completed self-activation.
func (s *Student) Activated() bool {
	return s.Email != "" || s.PasswordHash != ""
}
