package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// List godoc
// @Summary List quizzes
// @Description List form, without questions.
// @Tags quizzes
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.QuizSummaryResponse
// @Router /quizzes [get]
func (ctrl *QuizController) List(c *gin.Context) {
	quizzes, err := ctrl.quizService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// Upcoming godoc
// @Summary List quizzes dated today or later
// @Tags quizzes
// @Produce json
// @Security TokenAuth
// @Success 200 {array} dto.QuizSummaryResponse
// @Router /quizzes/upcoming [get]
func (ctrl *QuizController) Upcoming(c *gin.Context) {
	quizzes, err := ctrl.quizService.Upcoming(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// Get godoc
// @Summary Get a quiz with its questions
// @Tags quizzes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (ctrl *QuizController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	quiz, err := ctrl.quizService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// Create godoc
// @Summary Create a quiz
// @Description timeLimit defaults to 15 minutes.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param quiz body dto.QuizInput true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (ctrl *QuizController) Create(c *gin.Context) {
	var in dto.QuizInput
	if !bindInput(c, dto.QuizAliases.Normalize, &in) {
		return
	}
	quiz, err := ctrl.quizService.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// Update godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizInput true "Fields to change"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (ctrl *QuizController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.QuizInput
	if !bindInput(c, dto.QuizAliases.Normalize, &in) {
		return
	}
	quiz, err := ctrl.quizService.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// Delete godoc
// @Summary Delete a quiz with its questions and attempts
// @Tags quizzes
// @Security TokenAuth
// @Param id path int true "Quiz ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (ctrl *QuizController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.quizService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit godoc
// @Summary Submit answers
// @Description Grades the answers against the quiz and stores the attempt. Unknown or missing question ids count as wrong.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Quiz ID"
// @Param submission body dto.SubmitQuizRequest true "Question id to option index"
// @Success 200 {object} dto.QuizAttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (ctrl *QuizController) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Uint("quizID", id).Msg("Failed to bind quiz submission")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	attempt, err := ctrl.quizService.Submit(c.Request.Context(), middleware.UserID(c), id, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// Attempts godoc
// @Summary List attempts of a quiz
// @Tags quizzes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.QuizAttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/attempts [get]
func (ctrl *QuizController) Attempts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	attempts, err := ctrl.quizService.Attempts(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}
