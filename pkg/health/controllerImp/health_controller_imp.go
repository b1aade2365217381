package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

type HealthCtrl struct {
	started time.Time
	checks  map[string]Check
}

func NewHealthCtrl(started time.Time, checks map[string]Check) *HealthCtrl {
	return &HealthCtrl{started: started, checks: checks}
}

// DBCheck pings the sql pool behind db.
func DBCheck(db *gorm.DB) Check {
	return func(ctx context.Context) error {
		if db == nil {
			return errNilDB
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

type healthErr string

func (e healthErr) Error() string { return string(e) }

const errNilDB = healthErr("gorm db is nil")

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	allOK := true
	results := make(map[string]sub, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			allOK = false
			results[name] = sub{OK: false, Err: err.Error()}
			continue
		}
		results[name] = sub{OK: true}
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     results,
		"time":       time.Now().UTC().Format(time.RFC3339),
	})
}
