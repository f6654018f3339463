package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// RosterRow is a single normalized line from an admin roster import.
type RosterRow struct {
	Name      string
	NIC       string
	StudentID string
}

// StudentRepository defines persistence operations for student accounts.
type StudentRepository interface {
	// Upsert creates or updates the provisioned stub keyed on
	// (nic, student_id), setting the display name.
	Upsert(ctx context.Context, row RosterRow) error

	// FindByCredentialPair retrieves a student by the admin-provisioned
	// (nic, student_id) pair.
	FindByCredentialPair(ctx context.Context, nic, studentID string) (*domain.Student, error)

	FindByEmail(ctx context.Context, email string) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)

	// FindByIDs resolves attendee references. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Student, error)

	// Activate sets name, email and password hash on a still-provisioned
	// record. The update is conditional on email and password being
	// absent; a racing second activation returns ErrAlreadyActivated and
	// an email collision returns ErrEmailTaken.
	Activate(ctx context.Context, id, name, email, passwordHash string) error
}
