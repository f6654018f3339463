package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)

	// AddAttendee appends studentID to the event's attendee set as a
	// single atomic conditional update. Two concurrent calls for the
	// same pair yield one success and one ErrAlreadyRegistered; the set
	// never holds duplicates. The repository, not the caller, is
	// responsible for that guarantee.
	AddAttendee(ctx context.Context, eventID, studentID string) error
}
