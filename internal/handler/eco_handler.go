package handler

import (
	"net/http"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/labstack/echo/v4"
)

// EcoHandler serves the static reference tables the UI renders: the
// badge ladder and the rotating tips carousel.
type EcoHandler struct{}

func NewEcoHandler() *EcoHandler {
	return &EcoHandler{}
}

func (h *EcoHandler) Badges(c echo.Context) error {
	ladder := eco.Badges()
	resp := make([]BadgeResponse, 0, len(ladder))
	for _, b := range ladder {
		resp = append(resp, toBadgeResponse(b))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"badges": resp})
}

func (h *EcoHandler) Tips(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"tips": eco.Tips()})
}
