package ports

import "context"

// RosterService imports admin-provided student rosters.
type RosterService interface {
	// Import upserts every row and returns the number processed.
	// Re-importing identical rows leaves the student set unchanged.
	Import(ctx context.Context, rows []RosterRow) (int, error)
}
