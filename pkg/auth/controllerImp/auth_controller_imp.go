package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/auth"
	"agrisense/pkg/auth/controller"
)

type authCtrl struct{ secret string }

func NewAuthController(secret string) controller.AuthController { return &authCtrl{secret: secret} }

// DevLogin issues a signed token for local development and demos. Role
// defaults to farmer; pass role=admin to exercise the CMS routes.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = auth.DefaultUID
	}
	role := c.QueryParam("role")
	if role != auth.RoleAdmin {
		role = auth.RoleFarmer
	}
	token, err := auth.Issue(h.secret, uid, role, 24*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"uid": uid, "role": role, "token": token})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid, "role": role})
}
