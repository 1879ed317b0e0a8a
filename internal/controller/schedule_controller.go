package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/service"
)

type ScheduleController struct {
	scheduleService service.ScheduleService
}

func NewScheduleController(scheduleService service.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// List godoc
// @Summary List schedule items for a day
// @Description Defaults to today when no date is given.
// @Tags schedule
// @Produce json
// @Security TokenAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} dto.ScheduleItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse
// @Router /schedule [get]
func (ctrl *ScheduleController) List(c *gin.Context) {
	var date *model.Date
	if raw := c.Query("date"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
			return
		}
		date = &d
	}
	items, err := ctrl.scheduleService.List(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Today godoc
// @Summary Today's schedule
// @Tags schedule
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.ScheduleItemResponse
// @Router /schedule/today [get]
func (ctrl *ScheduleController) Today(c *gin.Context) {
	items, err := ctrl.scheduleService.Today(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a schedule item
// @Tags schedule
// @Produce json
// @Security TokenAuth
// @Param id path int true "Schedule item ID"
// @Success 200 {object} dto.ScheduleItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedule/{id} [get]
func (ctrl *ScheduleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := ctrl.scheduleService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Create a schedule item
// @Description Accepts startTime/start_time and endTime/end_time. Date defaults to today.
// @Tags schedule
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param item body dto.ScheduleItemInput true "Schedule item"
// @Success 201 {object} dto.ScheduleItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /schedule [post]
func (ctrl *ScheduleController) Create(c *gin.Context) {
	var in dto.ScheduleItemInput
	if !bindInput(c, dto.ScheduleItemAliases.Normalize, &in) {
		return
	}
	item, err := ctrl.scheduleService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update a schedule item
// @Description Only supplied fields change.
// @Tags schedule
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Schedule item ID"
// @Param item body dto.ScheduleItemInput true "Fields to change"
// @Success 200 {object} dto.ScheduleItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedule/{id} [put]
func (ctrl *ScheduleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.ScheduleItemInput
	if !bindInput(c, dto.ScheduleItemAliases.Normalize, &in) {
		return
	}
	item, err := ctrl.scheduleService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a schedule item
// @Tags schedule
// @Security TokenAuth
// @Param id path int true "Schedule item ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedule/{id} [delete]
func (ctrl *ScheduleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.scheduleService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkCompleted godoc
// @Summary Mark a schedule item completed
// @Tags schedule
// @Produce json
// @Security TokenAuth
// @Param id path int true "Schedule item ID"
// @Success 200 {object} dto.ScheduleItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedule/{id}/mark_completed [post]
func (ctrl *ScheduleController) MarkCompleted(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := ctrl.scheduleService.MarkCompleted(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
