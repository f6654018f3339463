package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

type eventService struct {
	eventRepo   ports.EventRepository
	studentRepo ports.StudentRepository
	log         zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(eventRepo ports.EventRepository, studentRepo ports.StudentRepository, log zerolog.Logger) ports.EventService {
	return &eventService{eventRepo: eventRepo, studentRepo: studentRepo, log: log}
}

func (s *eventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	if in.Name == "" || in.Venue == "" || in.Date == "" || in.Time == "" {
		return nil, domain.ErrMissingFields
	}

	event := &domain.Event{
		Name:        in.Name,
		Photo:       in.Photo,
		Description: in.Description,
		Venue:       in.Venue,
		Date:        in.Date,
		Time:        in.Time,
		IsFree:      in.IsFree,
		Price:       in.Price,
		Attendees:   []string{},
	}
	event.NormalizePrice()

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().Str("event_id", created.ID).Str("name", created.Name).Msg("event created")
	return created, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// Get returns the event with its attendee references expanded to the
// public projection. The password hash never crosses this boundary.
func (s *eventService) Get(ctx context.Context, id string) (*ports.EventDetail, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindByIDs(ctx, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("expand attendees: %w", err)
	}

	attendees := make([]ports.AttendeeDetail, 0, len(students))
	for _, st := range students {
		attendees = append(attendees, ports.AttendeeDetail{
			ID:        st.ID,
			Name:      st.Name,
			NIC:       st.NIC,
			StudentID: st.StudentID,
			Email:     st.Email,
		})
	}

	return &ports.EventDetail{Event: event, Attendees: attendees}, nil
}

// Signup registers studentID for eventID. The membership write is a
// single conditional set-add in the repository, so two racing signups
// for the same pair settle as one success and one ErrAlreadyRegistered.
func (s *eventService) Signup(ctx context.Context, eventID, studentID string) error {
	if eventID == "" || studentID == "" {
		return domain.ErrMissingFields
	}

	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		return err
	}

	if err := s.eventRepo.AddAttendee(ctx, eventID, studentID); err != nil {
		return err
	}

	s.log.Info().Str("event_id", eventID).Str("student", studentID).Msg("event signup")
	return nil
}
