package class

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/api"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/room"
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

func respondSchedulingError(c *gin.Context, err error) {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, api.ConflictResponse{
			Error:         conflict.Error(),
			ConflictID:    conflict.With.ID,
			ConflictStart: conflict.With.Interval.Start.Format(time.RFC3339),
			ConflictEnd:   conflict.With.Interval.End.Format(time.RFC3339),
		})
	case errors.Is(err, room.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
	case errors.Is(err, trainer.ErrTrainerNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
	case errors.Is(err, ErrClassNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
	case errors.Is(err, schedule.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class interval"})
	case errors.Is(err, ErrInvalidCapacity):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Capacity must be a positive integer"})
	case errors.Is(err, ErrCapacityBelowEnrolled):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Capacity cannot drop below the active registration count"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to schedule class"})
	}
}

// @Summary      Create a group class
// @Description  Commits a class after checking the room and trainer for interval conflicts.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      201 {object} class.GroupClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ConflictResponse
// @Router       /classes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	gc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gc)
}

// @Summary      Update a group class
// @Description  Re-validates the class as a replacement commitment; the class may keep its own previous slot.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      200 {object} class.GroupClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ConflictResponse
// @Router       /classes/{classID} [put]
func (h *Handler) Update(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	gc, err := h.service.Update(c.Request.Context(), classID, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gc)
}

// @Summary      List group classes with availability
// @Tags         classes
// @Produce      json
// @Success      200 {array} class.ClassWithAvailability
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) List(c *gin.Context) {
	classes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}
