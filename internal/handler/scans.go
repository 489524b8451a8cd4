package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/abdusco/scanlink/internal/apperr"
	"github.com/abdusco/scanlink/internal/id"
	"github.com/abdusco/scanlink/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ScanHandler struct {
	store *store.Store
}

func NewScanHandler(st *store.Store) *ScanHandler {
	return &ScanHandler{store: st}
}

type CheckDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	ShortID  string `json:"short_id" validate:"required"`
}

// CheckDevice registers the device if it has not been seen before and
// serves the registration form.
func (h *ScanHandler) CheckDevice(c echo.Context) error {
	var req CheckDeviceRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inserted := h.store.Devices.InsertIfAbsent(req.DeviceID, store.Device{
		DeviceID:  req.DeviceID,
		CreatedAt: time.Now().UTC(),
	})
	if inserted {
		log.Info().Str("device_id", req.DeviceID).Msg("new device registered")
	}

	data := map[string]any{
		"short_id":  req.ShortID,
		"device_id": req.DeviceID,
	}
	if err := c.Render(http.StatusOK, "user_form", data); err != nil {
		return apperr.Template("user_form", err)
	}
	return nil
}

// GetForm mints a fresh device id and serves the registration form for
// visitors without one. The id is brand new, so the insert never collides.
func (h *ScanHandler) GetForm(c echo.Context) error {
	shortID := c.Param("short_id")
	deviceID := id.New()

	h.store.Devices.InsertIfAbsent(deviceID, store.Device{
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
	})

	log.Info().Str("device_id", deviceID).Str("short_id", shortID).Msg("device minted for new visitor")

	data := map[string]any{
		"short_id":  shortID,
		"device_id": deviceID,
	}
	if err := c.Render(http.StatusOK, "new_device_form", data); err != nil {
		return apperr.Template("new_device_form", err)
	}
	return nil
}

type UserFormRequest struct {
	ShortID  string `form:"short_id" json:"short_id"`
	DeviceID string `form:"device_id" json:"device_id"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Mobile   string `form:"mobile" json:"mobile"`
}

func (r *UserFormRequest) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"short_id", r.ShortID},
		{"device_id", r.DeviceID},
		{"name", r.Name},
		{"email", r.Email},
		{"mobile", r.Mobile},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperr.Validation("required field(s) empty: %s", strings.Join(missing, ", "))
	}
	return nil
}

// UserForm registers the visitor, records the scan and serves the page
// that forwards to the target URL. Validation runs before any write;
// writes already committed when a later step fails are not rolled back.
func (h *ScanHandler) UserForm(c echo.Context) error {
	var req UserFormRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid form body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	h.store.Devices.InsertIfAbsent(req.DeviceID, store.Device{
		DeviceID:  req.DeviceID,
		CreatedAt: now,
	})

	userID := id.New()
	h.store.Users.Insert(userID, store.User{
		UserID:    userID,
		DeviceID:  req.DeviceID,
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		CreatedAt: now,
	})

	link, ok := h.store.Links.Get(req.ShortID)
	if !ok {
		log.Warn().Str("short_id", req.ShortID).Msg("short link not found")
		return apperr.NotFound("short URL not found: %s", req.ShortID)
	}

	scanID := id.New()
	timestamp := time.Now().UTC()
	h.store.Scans.Insert(scanID, store.Scan{
		ScanID:    scanID,
		ShortID:   req.ShortID,
		UserID:    userID,
		DeviceID:  req.DeviceID,
		Timestamp: timestamp,
	})

	log.Info().
		Str("scan_id", scanID).
		Str("short_id", req.ShortID).
		Str("user_id", userID).
		Msg("scan recorded")

	data := map[string]any{
		"short_id":  req.ShortID,
		"short_url": req.ShortID,
		"device_id": req.DeviceID,
		"user_id":   userID,
		"name":      req.Name,
		"email":     req.Email,
		"mobile":    req.Mobile,
		"scan_id":   scanID,
		"timestamp": timestamp.Format(time.RFC3339),
		"url":       link.TargetURL,
	}
	if err := c.Render(http.StatusOK, "redirect", data); err != nil {
		return apperr.Template("redirect", err)
	}
	return nil
}

type DirectScanRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	ShortID  string `json:"short_id" validate:"required"`
}

type DirectScanResponse struct {
	ScanID    string    `json:"scan_id"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

// DirectScan records a scan for an already-registered visitor. The
// device and user ids are taken as-is; they are not checked against
// their tables.
func (h *ScanHandler) DirectScan(c echo.Context) error {
	var req DirectScanRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, ok := h.store.Links.Get(req.ShortID)
	if !ok {
		log.Warn().Str("short_id", req.ShortID).Msg("short link not found")
		return apperr.NotFound("short URL not found: %s", req.ShortID)
	}

	scanID := id.New()
	timestamp := time.Now().UTC()
	h.store.Scans.Insert(scanID, store.Scan{
		ScanID:    scanID,
		ShortID:   req.ShortID,
		UserID:    req.UserID,
		DeviceID:  req.DeviceID,
		Timestamp: timestamp,
	})

	log.Info().Str("scan_id", scanID).Str("short_id", req.ShortID).Msg("direct scan recorded")

	return c.JSON(http.StatusOK, DirectScanResponse{
		ScanID:    scanID,
		URL:       link.TargetURL,
		Timestamp: timestamp,
	})
}
