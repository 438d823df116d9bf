package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/auth"
)

func runAuth(t *testing.T, header string) (string, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var uid, role string
	h := Authenticate("secret")(func(c echo.Context) error {
		uid, _ = c.Get("uid").(string)
		role, _ = c.Get("role").(string)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return uid, role
}

func TestAuthenticateWithValidToken(t *testing.T) {
	tok, err := auth.Issue("secret", "U42", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	uid, role := runAuth(t, "Bearer "+tok)
	if uid != "U42" || role != auth.RoleAdmin {
		t.Errorf("got %s/%s, want U42/admin", uid, role)
	}
}

func TestAuthenticateFallsBackWithoutToken(t *testing.T) {
	uid, role := runAuth(t, "")
	if uid != auth.DefaultUID || role != auth.RoleFarmer {
		t.Errorf("got %s/%s, want dev default", uid, role)
	}
}

func TestAuthenticateFallsBackOnBadToken(t *testing.T) {
	uid, role := runAuth(t, "Bearer garbage")
	if uid != auth.DefaultUID || role != auth.RoleFarmer {
		t.Errorf("got %s/%s, want dev default", uid, role)
	}
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	call := func(role string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)
		h := AdminOnly()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		if err := h(c); err != nil {
			t.Fatalf("middleware: %v", err)
		}
		return rec.Code
	}

	if code := call(auth.RoleAdmin); code != http.StatusOK {
		t.Errorf("admin blocked: %d", code)
	}
	if code := call(auth.RoleFarmer); code != http.StatusForbidden {
		t.Errorf("farmer allowed: %d", code)
	}
}
