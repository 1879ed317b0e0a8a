package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type SubjectPerformanceController struct {
	performanceService service.SubjectPerformanceService
}

func NewSubjectPerformanceController(performanceService service.SubjectPerformanceService) *SubjectPerformanceController {
	return &SubjectPerformanceController{performanceService: performanceService}
}

// @Summary List subject performance, best first
// @Tags performance
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.SubjectPerformanceResponse
// @Router /performance [get]
func (ctrl *SubjectPerformanceController) List(c *gin.Context) {
	rows, err := ctrl.performanceService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get a subject performance record
// @Tags performance
// @Produce json
// @Security TokenAuth
// @Param id path int true "Performance ID"
// @Success 200 {object} dto.SubjectPerformanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /performance/{id} [get]
func (ctrl *SubjectPerformanceController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := ctrl.performanceService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Record performance for a subject
// @Description A subject can be recorded once per user.
// @Tags performance
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param performance body dto.SubjectPerformanceInput true "Performance"
// @Success 201 {object} dto.SubjectPerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /performance [post]
func (ctrl *SubjectPerformanceController) Create(c *gin.Context) {
	var in dto.SubjectPerformanceInput
	if !bindInput(c, dto.PerformanceAliases.Normalize, &in) {
		return
	}
	p, err := ctrl.performanceService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update a subject performance record
// @Tags performance
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Performance ID"
// @Param performance body dto.SubjectPerformanceInput true "Fields to change"
// @Success 200 {object} dto.SubjectPerformanceResponse
// @Router /performance/{id} [put]
func (ctrl *SubjectPerformanceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.SubjectPerformanceInput
	if !bindInput(c, dto.PerformanceAliases.Normalize, &in) {
		return
	}
	p, err := ctrl.performanceService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete a subject performance record
// @Tags performance
// @Security TokenAuth
// @Param id path int true "Performance ID"
// @Success 204
// @Router /performance/{id} [delete]
func (ctrl *SubjectPerformanceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.performanceService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
