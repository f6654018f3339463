package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

type stubEventService struct {
	createFn func(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error)
	listFn   func(ctx context.Context) ([]*domain.Event, error)
	getFn    func(ctx context.Context, id string) (*ports.EventDetail, error)
	signupFn func(ctx context.Context, eventID, studentID string) error
}

func (s *stubEventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, in)
}

func (s *stubEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.listFn(ctx)
}

func (s *stubEventService) Get(ctx context.Context, id string) (*ports.EventDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubEventService) Signup(ctx context.Context, eventID, studentID string) error {
	return s.signupFn(ctx, eventID, studentID)
}

type stubPhotoStore struct {
	saved  int
	stored string
}

func (p *stubPhotoStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}
	p.saved++
	return p.stored, nil
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:     "ev1",
		Name:   "Hackathon 2026",
		Venue:  "Main Auditorium",
		Date:   "2026-09-12",
		Time:   "09:00",
		IsFree: true,
	}
}

func TestEventHandler_List_ResolvesPhotoURL(t *testing.T) {
	e := newTestEcho()
	withPhoto := sampleEvent()
	withPhoto.Photo = "abc123.jpg"
	withoutPhoto := sampleEvent()
	withoutPhoto.ID = "ev2"

	h := NewEventHandler(&stubEventService{
		listFn: func(context.Context) ([]*domain.Event, error) {
			return []*domain.Event{withPhoto, withoutPhoto}, nil
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Host = "campus.example.org"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp))
	}
	if resp[0]["photo"] != "http://campus.example.org/uploads/abc123.jpg" {
		t.Fatalf("unexpected photo url: %v", resp[0]["photo"])
	}
	// Absent photo must serialize as null, not "".
	if v, present := resp[1]["photo"]; !present || v != nil {
		t.Fatalf("expected null photo, got %v", v)
	}
}

func TestEventHandler_Get_ExpandedAttendeesOmitPasswordHash(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		getFn: func(_ context.Context, id string) (*ports.EventDetail, error) {
			if id != "ev1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &ports.EventDetail{
				Event: sampleEvent(),
				Attendees: []ports.AttendeeDetail{
					{ID: "s1", Name: "Amara Perera", NIC: "991234567V", StudentID: "IT2021001", Email: "amara@campus.edu"},
				},
			}, nil
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/ev1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	attendees, ok := resp["attendees"].([]any)
	if !ok || len(attendees) != 1 {
		t.Fatalf("expected 1 attendee, got %v", resp["attendees"])
	}
	a := attendees[0].(map[string]any)
	if a["studentId"] != "IT2021001" {
		t.Fatalf("unexpected attendee: %v", a)
	}
	for key := range a {
		if key == "password" || key == "passwordHash" || key == "password_hash" {
			t.Fatalf("attendee projection leaked %q", key)
		}
	}
}

func TestEventHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		getFn: func(context.Context, string) (*ports.EventDetail, error) {
			return nil, domain.ErrEventNotFound
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound passthrough, got %v", err)
	}
}

func multipartEventBody(t *testing.T, fields map[string]string, withPhoto bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withPhoto {
		fw, err := w.CreateFormFile("photo", "poster.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("jpeg-bytes")); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestEventHandler_Create_WithPhoto(t *testing.T) {
	e := newTestEcho()
	photos := &stubPhotoStore{stored: "deadbeef.jpg"}
	h := NewEventHandler(&stubEventService{
		createFn: func(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
			if in.Photo != "deadbeef.jpg" {
				t.Fatalf("expected stored photo filename, got %q", in.Photo)
			}
			ev := sampleEvent()
			ev.Photo = in.Photo
			return ev, nil
		},
	}, photos)

	body, contentType := multipartEventBody(t, map[string]string{
		"name":   "Hackathon 2026",
		"venue":  "Main Auditorium",
		"date":   "2026-09-12",
		"time":   "09:00",
		"isFree": "true",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if photos.saved != 1 {
		t.Fatalf("expected photo saved once, got %d", photos.saved)
	}
}

func TestEventHandler_Create_MissingVenue(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		createFn: func(context.Context, ports.CreateEventInput) (*domain.Event, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}, &stubPhotoStore{})

	body, contentType := multipartEventBody(t, map[string]string{
		"name": "Hackathon 2026",
		"date": "2026-09-12",
		"time": "09:00",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestEventHandler_Signup_UsesTokenSubject(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		signupFn: func(_ context.Context, eventID, studentID string) error {
			if eventID != "ev1" || studentID != "s1" {
				t.Fatalf("unexpected args: %s %s", eventID, studentID)
			}
			return nil
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/events/ev1/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev1")
	c.Set("student_id", "s1") // injected by the Auth middleware

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEventHandler_Signup_MissingClaims(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		signupFn: func(context.Context, string, string) error {
			t.Fatalf("service must not be called without claims")
			return nil
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/events/ev1/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev1")

	err := h.Signup(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEventHandler_Signup_AlreadyRegisteredPropagates(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{
		signupFn: func(context.Context, string, string) error {
			return domain.ErrAlreadyRegistered
		},
	}, &stubPhotoStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/events/ev1/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev1")
	c.Set("student_id", "s1")

	if err := h.Signup(c); err != domain.ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered passthrough, got %v", err)
	}
}
