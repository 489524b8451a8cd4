package handler

import (
	"net/http"

	"github.com/abdusco/scanlink/internal/store"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

type DatabaseDump struct {
	ShortenedLinks map[string]store.ShortLink `json:"shortened_links"`
	Users          map[string]store.User      `json:"users"`
	Devices        map[string]store.Device    `json:"devices"`
	Scans          map[string]store.Scan      `json:"scans"`
}

// VisualizeDB dumps a snapshot of all four tables. Each table is copied
// under its own lock; the dump is not a cross-table consistent view.
func (h *AdminHandler) VisualizeDB(c echo.Context) error {
	dump := DatabaseDump{
		ShortenedLinks: h.store.Links.Snapshot(),
		Users:          h.store.Users.Snapshot(),
		Devices:        h.store.Devices.Snapshot(),
		Scans:          h.store.Scans.Snapshot(),
	}
	return c.JSON(http.StatusOK, dump)
}
