package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func adminProbe(t *testing.T, configured, supplied string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if supplied != "" {
		req.Header.Set("X-Admin-Key", supplied)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := AdminKey(configured)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestAdminKey_CorrectKey(t *testing.T) {
	code, called := adminProbe(t, "topsecret", "topsecret")
	if code != http.StatusOK || !called {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_WrongKey(t *testing.T) {
	code, called := adminProbe(t, "topsecret", "guess")
	if code != http.StatusForbidden || called {
		t.Fatalf("expected 403, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_MissingHeader(t *testing.T) {
	code, called := adminProbe(t, "topsecret", "")
	if code != http.StatusForbidden || called {
		t.Fatalf("expected 403, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_UnconfiguredKeyDisablesRoutes(t *testing.T) {
	code, called := adminProbe(t, "", "")
	if code != http.StatusForbidden || called {
		t.Fatalf("expected 403 when no key configured, got code=%d called=%v", code, called)
	}
}
