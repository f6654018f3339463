package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// requestOrigin reconstructs the serving origin (scheme://host) from
// the incoming request, mirroring how clients will fetch uploads.
func requestOrigin(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// resolvePhotoURL turns a stored filename into an absolute URL, or nil
// when the event has no photo. Absent means null, never "".
func resolvePhotoURL(origin, filename string) *string {
	if filename == "" {
		return nil
	}
	url := origin + "/uploads/" + filename
	return &url
}

func toEventResponse(e *domain.Event, origin string) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Photo:       resolvePhotoURL(origin, e.Photo),
		Description: e.Description,
		Venue:       e.Venue,
		Date:        e.Date,
		Time:        e.Time,
		IsFree:      e.IsFree,
		Price:       e.Price,
	}
}

func toEventDetailResponse(d *ports.EventDetail, origin string) eventDetailResponse {
	attendees := make([]attendeeResponse, 0, len(d.Attendees))
	for _, a := range d.Attendees {
		attendees = append(attendees, attendeeResponse{
			ID:        a.ID,
			Name:      a.Name,
			NIC:       a.NIC,
			StudentID: a.StudentID,
			Email:     a.Email,
		})
	}
	return eventDetailResponse{
		eventResponse: toEventResponse(d.Event, origin),
		Attendees:     attendees,
	}
}
