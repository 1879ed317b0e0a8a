package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
)

type QuizQuestionController struct {
	questionService service.QuizQuestionService
}

func NewQuizQuestionController(questionService service.QuizQuestionService) *QuizQuestionController {
	return &QuizQuestionController{questionService: questionService}
}

// List godoc
// @Summary List quiz questions
// @Description Only questions of the caller's quizzes are visible.
// @Tags quiz-questions
// @Produce json
// @Security TokenAuth
// @Param quiz query int false "Quiz ID"
// @Success 200 {array} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz id"
// @Router /quiz-questions [get]
func (ctrl *QuizQuestionController) List(c *gin.Context) {
	var quizID *uint
	if raw := c.Query("quiz"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz id"})
			return
		}
		id := uint(v)
		quizID = &id
	}
	questions, err := ctrl.questionService.List(c.Request.Context(), middleware.UserID(c), quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary Get a quiz question
// @Tags quiz-questions
// @Produce json
// @Security TokenAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-questions/{id} [get]
func (ctrl *QuizQuestionController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	q, err := ctrl.questionService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// Create godoc
// @Summary Add a question to a quiz
// @Description Options may be sent as option_a..option_d or as an "options" list.
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param question body dto.QuizQuestionInput true "Question"
// @Success 201 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz-questions [post]
func (ctrl *QuizQuestionController) Create(c *gin.Context) {
	var in dto.QuizQuestionInput
	if !bindInput(c, dto.NormalizeQuizQuestion, &in) {
		return
	}
	q, err := ctrl.questionService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// Update godoc
// @Summary Update a quiz question
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuizQuestionInput true "Fields to change"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-questions/{id} [put]
func (ctrl *QuizQuestionController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.QuizQuestionInput
	if !bindInput(c, dto.NormalizeQuizQuestion, &in) {
		return
	}
	q, err := ctrl.questionService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// Delete godoc
// @Summary Delete a quiz question
// @Tags quiz-questions
// @Security TokenAuth
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-questions/{id} [delete]
func (ctrl *QuizQuestionController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.questionService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
