package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/karbhat74/Aikyam/internal/service"
	"github.com/labstack/echo/v4"
)

type TripHandler struct {
	svc service.TripService
}

func NewTripHandler(svc service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

type LogTripRequest struct {
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distanceKm"`
	TicketCode string  `json:"ticketCode"`
}

type TripResponse struct {
	ID         uint64  `json:"id"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distanceKm"`
	SavingsKg  float64 `json:"savingsKg"`
	TicketCode *string `json:"ticketCode,omitempty"`
	LoggedAt   string  `json:"loggedAt"`
}

type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int64          `json:"total"`
}

type BadgeResponse struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Icon      string `json:"icon"`
}

type SummaryResponse struct {
	TotalSavingsKg  float64        `json:"totalSavingsKg"`
	TotalDistanceKm float64        `json:"totalDistanceKm"`
	TreesEquivalent int            `json:"treesEquivalent"`
	MilesAvoided    int            `json:"milesAvoided"`
	TripCount       int64          `json:"tripCount"`
	Points          int            `json:"points"`
	Badge           BadgeResponse  `json:"badge"`
	NextBadge       *BadgeResponse `json:"nextBadge,omitempty"`
	Tip             string         `json:"tip"`
}

func (h *TripHandler) Log(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req LogTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	trip, err := h.svc.LogTrip(c.Request().Context(), uid, model.TransportMode(req.Mode), req.DistanceKm, req.TicketCode)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", verr.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to log trip"))
	}
	return c.JSON(http.StatusCreated, toTripResponse(trip))
}

func (h *TripHandler) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	trips, total, err := h.svc.ListTrips(c.Request().Context(), uid, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch trips"))
	}
	resp := TripListResponse{
		Trips: make([]TripResponse, 0, len(trips)),
		Total: total,
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, toTripResponse(&trips[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TripHandler) Summary(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	summary, err := h.svc.Summary(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to build summary"))
	}
	resp := SummaryResponse{
		TotalSavingsKg:  summary.Totals.TotalSavingsKg,
		TotalDistanceKm: summary.Totals.TotalDistanceKm,
		TreesEquivalent: summary.Totals.TreesEquivalent,
		MilesAvoided:    summary.Totals.MilesAvoided,
		TripCount:       summary.TripCount,
		Points:          summary.Points,
		Badge:           toBadgeResponse(summary.Badge),
		Tip:             summary.Tip,
	}
	if summary.NextBadge != nil {
		nb := toBadgeResponse(*summary.NextBadge)
		resp.NextBadge = &nb
	}
	return c.JSON(http.StatusOK, resp)
}

func toTripResponse(trip *model.Trip) TripResponse {
	return TripResponse{
		ID:         trip.ID,
		Mode:       string(trip.Mode),
		DistanceKm: trip.DistanceKm,
		SavingsKg:  trip.SavingsKg,
		TicketCode: trip.TicketCode,
		LoggedAt:   trip.CreatedAt.Format(time.RFC3339),
	}
}

func toBadgeResponse(b eco.Badge) BadgeResponse {
	return BadgeResponse{Name: b.Name, Threshold: b.Threshold, Icon: b.Icon}
}
