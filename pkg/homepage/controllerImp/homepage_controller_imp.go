package controllerImp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/homepage"
	"agrisense/pkg/homepage/repository"
)

type HomepageCtrl struct{ repo repository.HomepageRepository }

func New(repo repository.HomepageRepository) *HomepageCtrl { return &HomepageCtrl{repo} }

type configResp struct {
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Data      json.RawMessage `json:"data"`
}

func (h *HomepageCtrl) Get(c echo.Context) error {
	cfg, err := h.repo.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if cfg == nil {
		return c.JSON(http.StatusOK, configResp{Version: 0, Data: json.RawMessage(homepage.DefaultConfig)})
	}
	return c.JSON(http.StatusOK, configResp{
		Version: cfg.Version, UpdatedAt: cfg.CreatedAt, Data: json.RawMessage(cfg.Data),
	})
}

// Put publishes a new version; old versions are kept, readers always see the
// latest.
func (h *HomepageCtrl) Put(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var data json.RawMessage
	if err := c.Bind(&data); err != nil || len(data) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !json.Valid(data) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	latest, err := h.repo.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	version := 1
	if latest != nil {
		version = latest.Version + 1
	}
	cfg := &entities.HomepageConfig{Version: version, Data: string(data), UpdatedBy: uid}
	if err := h.repo.Create(cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, configResp{Version: cfg.Version, UpdatedAt: cfg.CreatedAt, Data: data})
}

// Reset publishes the compiled-in defaults as a new version.
func (h *HomepageCtrl) Reset(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	latest, err := h.repo.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	version := 1
	if latest != nil {
		version = latest.Version + 1
	}
	cfg := &entities.HomepageConfig{Version: version, Data: homepage.DefaultConfig, UpdatedBy: uid}
	if err := h.repo.Create(cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, configResp{
		Version: cfg.Version, UpdatedAt: cfg.CreatedAt, Data: json.RawMessage(homepage.DefaultConfig),
	})
}
