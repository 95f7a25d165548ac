package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/karbhat74/Aikyam/internal/repository"
	"github.com/karbhat74/Aikyam/internal/service"
	"github.com/labstack/echo/v4"
)

type RewardHandler struct {
	svc service.RewardService
}

func NewRewardHandler(svc service.RewardService) *RewardHandler {
	return &RewardHandler{svc: svc}
}

type RewardResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TripCount   int    `json:"tripCount"`
	Progress    int    `json:"progress"`
	Claimed     bool   `json:"claimed"`
	Eligible    bool   `json:"eligible"`
}

type RewardListResponse struct {
	Rewards []RewardResponse `json:"rewards"`
}

type ClaimResponse struct {
	RewardID  int    `json:"rewardId"`
	ClaimedAt string `json:"claimedAt"`
}

func (h *RewardHandler) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	status, err := h.svc.Status(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch rewards"))
	}
	resp := RewardListResponse{Rewards: make([]RewardResponse, 0, len(status))}
	for _, rp := range status {
		resp.Rewards = append(resp.Rewards, RewardResponse{
			ID:          rp.Reward.ID,
			Name:        rp.Reward.Name,
			Description: rp.Reward.Description,
			TripCount:   rp.Reward.TripCount,
			Progress:    rp.Progress,
			Claimed:     rp.Claimed,
			Eligible:    rp.Eligible,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RewardHandler) Claim(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid reward id"))
	}
	claim, err := h.svc.Claim(c.Request().Context(), uid, id)
	if err != nil {
		switch {
		case errors.Is(err, eco.ErrUnknownReward):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "reward not found"))
		case errors.Is(err, service.ErrNotEligible):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		case errors.Is(err, repository.ErrAlreadyClaimed):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "reward already claimed"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to claim reward"))
		}
	}
	return c.JSON(http.StatusOK, ClaimResponse{
		RewardID:  claim.RewardID,
		ClaimedAt: claim.ClaimedAt.Format(time.RFC3339),
	})
}
