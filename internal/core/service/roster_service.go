package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

type rosterService struct {
	repo ports.StudentRepository
	log  zerolog.Logger
}

// NewRosterService returns a RosterService implementation.
func NewRosterService(repo ports.StudentRepository, log zerolog.Logger) ports.RosterService {
	return &rosterService{repo: repo, log: log}
}

// Import upserts each row keyed on (nic, student_id) and returns the
// number of rows processed before any failure. Re-running the same
// roster is a no-op on the student set.
func (s *rosterService) Import(ctx context.Context, rows []ports.RosterRow) (int, error) {
	if len(rows) == 0 {
		return 0, domain.ErrMissingFields
	}

	for i, row := range rows {
		if row.Name == "" || row.NIC == "" || row.StudentID == "" {
			return i, fmt.Errorf("row %d: %w", i+1, domain.ErrMissingFields)
		}
		if err := s.repo.Upsert(ctx, row); err != nil {
			s.log.Error().Err(err).Str("nic", row.NIC).Msg("roster upsert failed")
			return i, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	s.log.Info().Int("rows", len(rows)).Msg("roster imported")
	return len(rows), nil
}
