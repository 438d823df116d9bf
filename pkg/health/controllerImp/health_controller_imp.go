package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrisense/pkg/records"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	store *records.Store
}

func NewHealthCtrl(db *gorm.DB, store *records.Store) *HealthCtrl {
	return &HealthCtrl{db: db, store: store}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	recOK := true
	recErr := ""
	if h.store != nil {
		if _, err := h.store.Flush(); err != nil {
			recOK = false
			recErr = err.Error()
		}
	} else {
		recOK = false
		recErr = "record store is nil"
	}

	allOK := dbOK && recOK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"records":  sub{OK: recOK, Err: recErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
