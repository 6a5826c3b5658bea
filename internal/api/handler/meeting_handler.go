package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type MeetingHandler struct {
	meetings ports.MeetingService
}

func NewMeetingHandler(meetings ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

type scheduleMeetingRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty" validate:"omitempty,oneof=GENERAL EMERGENCY COMMITTEE"`
	Agenda      []string  `json:"agenda,omitempty"`
}

type updateMeetingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED CANCELLED"`
}

type openVoteRequest struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,min=2,dive,required"`
}

type castBallotRequest struct {
	Option string `json:"option" validate:"required"`
}

// Schedule calls an assembly of the owners.
func (h *MeetingHandler) Schedule(c echo.Context) error {
	var req scheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	meeting, err := h.meetings.Schedule(c.Request().Context(), ports.ScheduleMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		Type:        domain.MeetingType(req.Type),
		Agenda:      req.Agenda,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, meeting)
}

func (h *MeetingHandler) List(c echo.Context) error {
	meetings, err := h.meetings.List(c.Request().Context(), ports.ListMeetingsFilter{
		Status: domain.MeetingStatus(c.QueryParam("status")),
		Type:   domain.MeetingType(c.QueryParam("type")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meetings)
}

// UpdateStatus advances a meeting through its lifecycle.
func (h *MeetingHandler) UpdateStatus(c echo.Context) error {
	var req updateMeetingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	meeting, err := h.meetings.UpdateStatus(c.Request().Context(), c.Param("id"), domain.MeetingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meeting)
}

// OpenVote puts a question on the floor.
func (h *MeetingHandler) OpenVote(c echo.Context) error {
	var req openVoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	vote, err := h.meetings.OpenVote(c.Request().Context(), ports.OpenVoteInput{
		MeetingID: c.Param("id"),
		Question:  req.Question,
		Options:   req.Options,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vote)
}

// CastBallot records the authenticated owner's choice on an open vote.
func (h *MeetingHandler) CastBallot(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req castBallotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	vote, err := h.meetings.CastBallot(c.Request().Context(), c.Param("id"), c.Param("voteId"), userID, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vote)
}

// CloseVote ends the poll and freezes the tally.
func (h *MeetingHandler) CloseVote(c echo.Context) error {
	vote, err := h.meetings.CloseVote(c.Request().Context(), c.Param("id"), c.Param("voteId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vote)
}
