package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// ActivateInput carries the self-activation request of a provisioned student.
type ActivateInput struct {
	Name      string
	NIC       string
	StudentID string
	Email     string
	Password  string
}

// AuthService implements account activation and login.
type AuthService interface {
	// Activate turns a provisioned student into an activated one.
	// Repeating the call is an error (ErrAlreadyActivated), not a no-op.
	Activate(ctx context.Context, input ActivateInput) error

	// Login verifies credentials and issues a signed bearer token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.Student, error)
}
