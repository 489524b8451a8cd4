package handler

import (
	"github.com/abdusco/scanlink/internal/store"
	"github.com/labstack/echo/v4"
)

// Register wires all routes onto the echo instance. The renderer and
// validator are expected to be set on e already.
func Register(e *echo.Echo, st *store.Store, baseURL string) {
	linkHandler := NewLinkHandler(st, baseURL)
	scanHandler := NewScanHandler(st)
	adminHandler := NewAdminHandler(st)

	e.POST("/shorten", linkHandler.Shorten)
	e.POST("/check_device", scanHandler.CheckDevice)
	e.GET("/get_form/:short_id", scanHandler.GetForm)
	e.POST("/user_form", scanHandler.UserForm)
	e.POST("/direct_scan", scanHandler.DirectScan)
	e.GET("/visualize_db", adminHandler.VisualizeDB)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Parameterized route (must be last)
	e.GET("/:short_id", linkHandler.Redirect)
}
