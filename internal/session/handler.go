package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/api"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Book a personal training session
// @Description  The session must lie within one of the trainer's availability windows and must not conflict with any of the trainer's commitments.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body session.BookSessionRequest true "Session payload"
// @Success      201 {object} session.PTSession
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ConflictResponse
// @Router       /sessions [post]
func (h *Handler) Book(c *gin.Context) {
	var req BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	pt, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		var conflict *schedule.ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, api.ConflictResponse{
				Error:         conflict.Error(),
				ConflictID:    conflict.With.ID,
				ConflictStart: conflict.With.Interval.Start.Format(time.RFC3339),
				ConflictEnd:   conflict.With.Interval.End.Format(time.RFC3339),
			})
		case errors.Is(err, trainer.ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case errors.Is(err, schedule.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session interval"})
		case errors.Is(err, ErrOutsideAvailability):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Session is outside the trainer's declared availability"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book session"})
		}
		return
	}

	c.JSON(http.StatusCreated, pt)
}

// @Summary      List a trainer's personal training sessions
// @Tags         sessions
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {array} session.PTSession
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/sessions [get]
func (h *Handler) ListByTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	sessions, err := h.service.GetByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, trainer.ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}
