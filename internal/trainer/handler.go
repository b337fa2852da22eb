package trainer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/api"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Add a trainer availability window
// @Description  Declare an open window for personal training; rejected if it overlaps an existing window for the trainer.
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.AddWindowRequest true "Window payload"
// @Success      201 {object} trainer.AvailabilityWindow
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [post]
func (h *Handler) AddWindow(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	var req AddWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	window, err := h.service.AddWindow(c.Request.Context(), trainerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case errors.Is(err, schedule.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid window interval"})
		case errors.Is(err, ErrWindowOverlap):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Window overlaps an existing availability window"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to add availability window"})
		}
		return
	}

	c.JSON(http.StatusCreated, window)
}

// @Summary      List a trainer's availability windows
// @Tags         trainers
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {array} trainer.AvailabilityWindow
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) ListWindows(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	windows, err := h.service.GetWindows(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch availability windows"})
		return
	}

	c.JSON(http.StatusOK, windows)
}
