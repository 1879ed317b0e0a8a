package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// List godoc
// @Summary List assignments by due date
// @Tags assignments
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.AssignmentResponse
// @Router /assignments [get]
func (ctrl *AssignmentController) List(c *gin.Context) {
	rows, err := ctrl.assignmentService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Stats godoc
// @Summary Completed, total and remaining assignment counts
// @Tags assignments
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.AssignmentStatsResponse
// @Router /assignments/stats [get]
func (ctrl *AssignmentController) Stats(c *gin.Context) {
	stats, err := ctrl.assignmentService.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get godoc
// @Summary Get an assignment
// @Tags assignments
// @Produce json
// @Security TokenAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [get]
func (ctrl *AssignmentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := ctrl.assignmentService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Create godoc
// @Summary Create an assignment
// @Description An empty link is stored as null.
// @Tags assignments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param assignment body dto.AssignmentInput true "Assignment"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /assignments [post]
func (ctrl *AssignmentController) Create(c *gin.Context) {
	var in dto.AssignmentInput
	if !bindInput(c, dto.AssignmentAliases.Normalize, &in) {
		return
	}
	a, err := ctrl.assignmentService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Assignment ID"
// @Param assignment body dto.AssignmentInput true "Fields to change"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [put]
func (ctrl *AssignmentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.AssignmentInput
	if !bindInput(c, dto.AssignmentAliases.Normalize, &in) {
		return
	}
	a, err := ctrl.assignmentService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary Delete an assignment
// @Tags assignments
// @Security TokenAuth
// @Param id path int true "Assignment ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [delete]
func (ctrl *AssignmentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.assignmentService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkCompleted godoc
// @Summary Mark an assignment completed
// @Tags assignments
// @Produce json
// @Security TokenAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id}/mark_completed [post]
func (ctrl *AssignmentController) MarkCompleted(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := ctrl.assignmentService.MarkCompleted(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
