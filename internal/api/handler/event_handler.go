package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// PhotoStore saves an uploaded event photo and returns its stored filename.
type PhotoStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// EventHandler handles the event catalog and signup endpoints.
type EventHandler struct {
	service ports.EventService
	photos  PhotoStore
}

func NewEventHandler(service ports.EventService, photos PhotoStore) *EventHandler {
	return &EventHandler{service: service, photos: photos}
}

// Create handles POST /api/admin/events (multipart form, admin only).
//
// @Summary      Create an event
// @Tags         events
// @Accept       mpfd
// @Produce      json
// @Param        name   formData  string  true   "Event name"
// @Param        venue  formData  string  true   "Venue"
// @Param        date   formData  string  true   "Date"
// @Param        time   formData  string  true   "Time"
// @Param        photo  formData  file    false  "Event photo"
// @Success      201    {object}  eventResponse
// @Failure      422    {object}  errorResponse
// @Router       /api/admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var photo string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		stored, err := h.photos.Save(fh)
		if err != nil {
			return err
		}
		photo = stored
	}

	event, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		Name:        req.Name,
		Photo:       photo,
		Description: req.Description,
		Venue:       req.Venue,
		Date:        req.Date,
		Time:        req.Time,
		IsFree:      req.IsFree,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEventResponse(event, requestOrigin(c)))
}

// List handles GET /api/events.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}  eventResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	origin := requestOrigin(c)
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e, origin))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/events/:id with attendees expanded.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  eventDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventDetailResponse(detail, requestOrigin(c)))
}

// Signup handles POST /api/events/:id/signup. The student identity is
// taken from the verified bearer token.
//
// @Summary      Sign up the authenticated student for an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/events/{id}/signup [post]
func (h *EventHandler) Signup(c echo.Context) error {
	studentID, err := ctxStudentID(c)
	if err != nil {
		return err
	}

	if err := h.service.Signup(c.Request().Context(), c.Param("id"), studentID); err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "signup successful"})
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrStudentNotFound):
		return "not_found"
	default:
		return "error"
	}
}
