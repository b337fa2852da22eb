package registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/api"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/class"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Register a member for a class
// @Description  Capacity-bounded: at most one active registration per member and class, never more than the class capacity.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body registration.RegisterRequest true "Member payload"
// @Success      201 {object} registration.Registration
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /classes/{classID}/register [post]
func (h *Handler) Register(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.service.Register(c.Request.Context(), req.MemberID, classID)
	if err != nil {
		switch {
		case errors.Is(err, class.ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case errors.Is(err, ErrDuplicateRegistration):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Member is already registered for this class"})
		case errors.Is(err, ErrClassFull):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Class is at capacity"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// @Summary      Cancel a registration
// @Description  Frees the member's seat; a later re-registration is allowed.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body registration.RegisterRequest true "Member payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.MemberID, classID); err != nil {
		switch {
		case errors.Is(err, class.ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case errors.Is(err, ErrNoActiveRegistration):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active registration for this member and class"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel registration"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Registration cancelled successfully"})
}

// @Summary      List active registrations for a class
// @Tags         registrations
// @Produce      json
// @Param        classID path int true "Class ID"
// @Success      200 {array} registration.RegistrationWithMember
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/registrations [get]
func (h *Handler) ListByClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	regs, err := h.service.GetByClass(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, class.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, regs)
}
