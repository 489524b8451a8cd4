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

type LinkHandler struct {
	store   *store.Store
	baseURL string
}

func NewLinkHandler(st *store.Store, baseURL string) *LinkHandler {
	return &LinkHandler{
		store:   st,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type ShortenRequest struct {
	URL string `json:"url" validate:"required"`
}

type ShortenResponse struct {
	ShortURL  string    `json:"short_url"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *LinkHandler) Shorten(c echo.Context) error {
	var req ShortenRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	shortID := id.New()
	now := time.Now().UTC()

	log.Debug().Str("short_id", shortID).Str("url", req.URL).Msg("creating short link")

	h.store.Links.Insert(shortID, store.ShortLink{
		ShortID:   shortID,
		TargetURL: req.URL,
		CreatedAt: now,
	})

	log.Info().Str("short_id", shortID).Msg("short link created")

	return c.JSON(http.StatusCreated, ShortenResponse{
		ShortURL:  h.baseURL + "/" + shortID,
		Timestamp: now,
	})
}

// Redirect serves the device-check page for a short link. The actual
// forwarding to the target URL happens after the scan is recorded.
func (h *LinkHandler) Redirect(c echo.Context) error {
	shortID := c.Param("short_id")

	log.Debug().Str("short_id", shortID).Msg("redirect request")

	if !h.store.Links.Contains(shortID) {
		log.Warn().Str("short_id", shortID).Msg("short link not found")
		return apperr.NotFound("short URL not found: %s", shortID)
	}

	data := map[string]any{
		"short_id": shortID,
	}
	if err := c.Render(http.StatusOK, "check_device", data); err != nil {
		return apperr.Template("check_device", err)
	}
	return nil
}
