package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type StudyActivityController struct {
	activityService service.StudyActivityService
}

func NewStudyActivityController(activityService service.StudyActivityService) *StudyActivityController {
	return &StudyActivityController{activityService: activityService}
}

// List godoc
// @Summary List study activities, newest first
// @Tags activities
// @Produce json
// @Security TokenAuth
// @Param limit query int false "Maximum number of rows"
// @Success 200 {array} dto.StudyActivityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /activities [get]
func (ctrl *StudyActivityController) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = n
	}
	rows, err := ctrl.activityService.List(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Recent godoc
// @Summary The ten most recent activities
// @Tags activities
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.StudyActivityResponse
// @Router /activities/recent [get]
func (ctrl *StudyActivityController) Recent(c *gin.Context) {
	rows, err := ctrl.activityService.Recent(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get a study activity
// @Tags activities
// @Produce json
// @Security TokenAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.StudyActivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /activities/{id} [get]
func (ctrl *StudyActivityController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := ctrl.activityService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Log a study activity
// @Description activityTime defaults to now.
// @Tags activities
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param activity body dto.StudyActivityInput true "Activity"
// @Success 201 {object} dto.StudyActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /activities [post]
func (ctrl *StudyActivityController) Create(c *gin.Context) {
	var in dto.StudyActivityInput
	if !bindInput(c, dto.ActivityAliases.Normalize, &in) {
		return
	}
	a, err := ctrl.activityService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// @Summary Update a study activity
// @Tags activities
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Activity ID"
// @Param activity body dto.StudyActivityInput true "Fields to change"
// @Success 200 {object} dto.StudyActivityResponse
// @Router /activities/{id} [put]
func (ctrl *StudyActivityController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.StudyActivityInput
	if !bindInput(c, dto.ActivityAliases.Normalize, &in) {
		return
	}
	a, err := ctrl.activityService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Delete a study activity
// @Tags activities
// @Security TokenAuth
// @Param id path int true "Activity ID"
// @Success 204
// @Router /activities/{id} [delete]
func (ctrl *StudyActivityController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.activityService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
