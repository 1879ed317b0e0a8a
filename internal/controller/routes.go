package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
	"go.uber.org/fx"
)

// Handlers collects every controller for route registration.
type Handlers struct {
	fx.In

	Auth        *AuthController
	Schedule    *ScheduleController
	Quizzes     *QuizController
	Questions   *QuizQuestionController
	Assignments *AssignmentController
	Goals       *WeeklyGoalController
	Activities  *StudyActivityController
	Performance *SubjectPerformanceController
	Exams       *ExamController
	Dashboard   *DashboardController
}

var resources = []string{"schedule", "quizzes", "quiz-questions", "assignments", "goals", "activities", "performance", "exams"}

// RegisterRoutes mounts the API under /api. Everything except the auth
// endpoints and the index requires a token.
func RegisterRoutes(router *gin.Engine, h Handlers, auth service.AuthService) {
	router.GET("/", Health)

	api := router.Group("/api")
	api.GET("/", apiRoot)
	api.POST("/login", h.Auth.Login)
	api.POST("/verify-token", h.Auth.VerifyToken)
	api.POST("/logout", h.Auth.Logout)

	private := api.Group("", middleware.RequireToken(auth))
	{
		private.GET("/dashboard", h.Dashboard.Overview)
		private.GET("/dashboard-overview", h.Dashboard.Overview)
		private.POST("/upload-pdf", h.Dashboard.UploadPDF)

		schedule := private.Group("/schedule")
		schedule.GET("", h.Schedule.List)
		schedule.POST("", h.Schedule.Create)
		schedule.GET("/today", h.Schedule.Today)
		schedule.GET("/:id", h.Schedule.Get)
		schedule.PUT("/:id", h.Schedule.Update)
		schedule.PATCH("/:id", h.Schedule.Update)
		schedule.DELETE("/:id", h.Schedule.Delete)
		schedule.POST("/:id/mark_completed", h.Schedule.MarkCompleted)

		quizzes := private.Group("/quizzes")
		quizzes.GET("", h.Quizzes.List)
		quizzes.POST("", h.Quizzes.Create)
		quizzes.GET("/upcoming", h.Quizzes.Upcoming)
		quizzes.GET("/:id", h.Quizzes.Get)
		quizzes.PUT("/:id", h.Quizzes.Update)
		quizzes.PATCH("/:id", h.Quizzes.Update)
		quizzes.DELETE("/:id", h.Quizzes.Delete)
		quizzes.POST("/:id/submit", h.Quizzes.Submit)
		quizzes.GET("/:id/attempts", h.Quizzes.Attempts)

		questions := private.Group("/quiz-questions")
		questions.GET("", h.Questions.List)
		questions.POST("", h.Questions.Create)
		questions.GET("/:id", h.Questions.Get)
		questions.PUT("/:id", h.Questions.Update)
		questions.PATCH("/:id", h.Questions.Update)
		questions.DELETE("/:id", h.Questions.Delete)

		assignments := private.Group("/assignments")
		assignments.GET("", h.Assignments.List)
		assignments.POST("", h.Assignments.Create)
		assignments.GET("/stats", h.Assignments.Stats)
		assignments.GET("/:id", h.Assignments.Get)
		assignments.PUT("/:id", h.Assignments.Update)
		assignments.PATCH("/:id", h.Assignments.Update)
		assignments.DELETE("/:id", h.Assignments.Delete)
		assignments.POST("/:id/mark_completed", h.Assignments.MarkCompleted)

		goals := private.Group("/goals")
		goals.GET("", h.Goals.List)
		goals.POST("", h.Goals.Create)
		goals.GET("/:id", h.Goals.Get)
		goals.PUT("/:id", h.Goals.Update)
		goals.PATCH("/:id", h.Goals.Update)
		goals.DELETE("/:id", h.Goals.Delete)
		goals.POST("/:id/update_status", h.Goals.UpdateStatus)

		activities := private.Group("/activities")
		activities.GET("", h.Activities.List)
		activities.POST("", h.Activities.Create)
		activities.GET("/recent", h.Activities.Recent)
		activities.GET("/:id", h.Activities.Get)
		activities.PUT("/:id", h.Activities.Update)
		activities.PATCH("/:id", h.Activities.Update)
		activities.DELETE("/:id", h.Activities.Delete)

		performance := private.Group("/performance")
		performance.GET("", h.Performance.List)
		performance.POST("", h.Performance.Create)
		performance.GET("/:id", h.Performance.Get)
		performance.PUT("/:id", h.Performance.Update)
		performance.PATCH("/:id", h.Performance.Update)
		performance.DELETE("/:id", h.Performance.Delete)

		exams := private.Group("/exams")
		exams.GET("", h.Exams.List)
		exams.POST("", h.Exams.Create)
		exams.GET("/upcoming", h.Exams.Upcoming)
		exams.GET("/:id", h.Exams.Get)
		exams.PUT("/:id", h.Exams.Update)
		exams.PATCH("/:id", h.Exams.Update)
		exams.DELETE("/:id", h.Exams.Delete)
	}
}

// Health godoc
// @Summary Service status
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Study Dashboard API is running!",
		"endpoints": gin.H{
			"api":     "/api/",
			"docs":    "/swagger/index.html",
			"metrics": "/metrics",
		},
	})
}

func apiRoot(c *gin.Context) {
	index := make(gin.H, len(resources)+1)
	for _, r := range resources {
		index[r] = "/api/" + r + "/"
	}
	index["dashboard"] = "/api/dashboard/"
	c.JSON(http.StatusOK, index)
}
