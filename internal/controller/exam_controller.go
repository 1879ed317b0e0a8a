package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// @Summary List exams by date
// @Tags exams
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.ExamResponse
// @Router /exams [get]
func (ctrl *ExamController) List(c *gin.Context) {
	exams, err := ctrl.examService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// @Summary List exams dated today or later
// @Tags exams
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.ExamResponse
// @Router /exams/upcoming [get]
func (ctrl *ExamController) Upcoming(c *gin.Context) {
	exams, err := ctrl.examService.Upcoming(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// @Summary Get an exam
// @Tags exams
// @Produce json
// @Security TokenAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [get]
func (ctrl *ExamController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	exam, err := ctrl.examService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param exam body dto.ExamInput true "Exam"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /exams [post]
func (ctrl *ExamController) Create(c *gin.Context) {
	var in dto.ExamInput
	if !bindInput(c, dto.ExamAliases.Normalize, &in) {
		return
	}
	exam, err := ctrl.examService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exam)
}

// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Exam ID"
// @Param exam body dto.ExamInput true "Fields to change"
// @Success 200 {object} dto.ExamResponse
// @Router /exams/{id} [put]
func (ctrl *ExamController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.ExamInput
	if !bindInput(c, dto.ExamAliases.Normalize, &in) {
		return
	}
	exam, err := ctrl.examService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

// @Summary Delete an exam
// @Tags exams
// @Security TokenAuth
// @Param id path int true "Exam ID"
// @Success 204
// @Router /exams/{id} [delete]
func (ctrl *ExamController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.examService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
