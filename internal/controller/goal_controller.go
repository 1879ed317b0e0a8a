package controller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type WeeklyGoalController struct {
	goalService service.WeeklyGoalService
}

func NewWeeklyGoalController(goalService service.WeeklyGoalService) *WeeklyGoalController {
	return &WeeklyGoalController{goalService: goalService}
}

// List godoc
// @Summary List weekly goals
// @Description Only the current week (starting Monday) unless current_week is not "true".
// @Tags goals
// @Produce json
// @Security TokenAuth
// @Param current_week query string false "true (default) or false"
// @Success 200 {array} dto.WeeklyGoalResponse
// @Router /goals [get]
func (ctrl *WeeklyGoalController) List(c *gin.Context) {
	allWeeks := !strings.EqualFold(c.DefaultQuery("current_week", "true"), "true")
	goals, err := ctrl.goalService.List(c.Request.Context(), middleware.UserID(c), allWeeks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Get godoc
// @Summary Get a weekly goal
// @Tags goals
// @Produce json
// @Security TokenAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} dto.WeeklyGoalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [get]
func (ctrl *WeeklyGoalController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	goal, err := ctrl.goalService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Create godoc
// @Summary Create a weekly goal
// @Description weekStart defaults to this week's Monday.
// @Tags goals
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param goal body dto.WeeklyGoalInput true "Goal"
// @Success 201 {object} dto.WeeklyGoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /goals [post]
func (ctrl *WeeklyGoalController) Create(c *gin.Context) {
	var in dto.WeeklyGoalInput
	if !bindInput(c, dto.WeeklyGoalAliases.Normalize, &in) {
		return
	}
	goal, err := ctrl.goalService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Update godoc
// @Summary Update a weekly goal
// @Tags goals
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Goal ID"
// @Param goal body dto.WeeklyGoalInput true "Fields to change"
// @Success 200 {object} dto.WeeklyGoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [put]
func (ctrl *WeeklyGoalController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.WeeklyGoalInput
	if !bindInput(c, dto.WeeklyGoalAliases.Normalize, &in) {
		return
	}
	goal, err := ctrl.goalService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete a weekly goal
// @Tags goals
// @Security TokenAuth
// @Param id path int true "Goal ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [delete]
func (ctrl *WeeklyGoalController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.goalService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary Change the status of a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Goal ID"
// @Param status body dto.UpdateStatusRequest true "pending, in-progress or completed"
// @Success 200 {object} dto.WeeklyGoalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id}/update_status [post]
func (ctrl *WeeklyGoalController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid status"})
		return
	}
	goal, err := ctrl.goalService.UpdateStatus(c.Request.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
