package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// CreateEventInput carries all data needed to create a new event.
// Photo is the stored filename of an already-saved upload, empty when
// no photo was attached.
type CreateEventInput struct {
	Name        string
	Photo       string
	Description string
	Venue       string
	Date        string
	Time        string
	IsFree      bool
	Price       float64
}

// AttendeeDetail is the projection of a student exposed on event reads.
// It never includes the password hash.
type AttendeeDetail struct {
	ID        string
	Name      string
	NIC       string
	StudentID string
	Email     string
}

// EventDetail is the full event view returned by Get, with attendee
// references expanded.
type EventDetail struct {
	Event     *domain.Event
	Attendees []AttendeeDetail
}

// EventService defines use-case operations for the event catalog and signup.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Get(ctx context.Context, id string) (*EventDetail, error)

	// Signup registers the student for the event. The student id comes
	// from a verified token, never from the request body.
	Signup(ctx context.Context, eventID, studentID string) error
}
