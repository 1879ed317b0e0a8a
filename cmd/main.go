package main

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/database"
	_ "github.com/lshigami/studydash/docs"
	"github.com/lshigami/studydash/internal/controller"
	"github.com/lshigami/studydash/internal/logger"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/lshigami/studydash/internal/service"
	"github.com/lshigami/studydash/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Study Dashboard API
// @version 1.0
// @description Schedule, quizzes, assignments, goals, activities, exams and subject performance for the study dashboard front end.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description "Token <key>" as returned by /login
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Debug)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			NewGinEngine,
			service.NewClock,
			storage.NewObjectStorage,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTokenRepository,
			repository.NewScheduleRepository,
			repository.NewQuizRepository,
			repository.NewQuizQuestionRepository,
			repository.NewAssignmentRepository,
			repository.NewWeeklyGoalRepository,
			repository.NewStudyActivityRepository,
			repository.NewSubjectPerformanceRepository,
			repository.NewExamRepository,
		),

		// Services
		fx.Provide(
			service.NewAuthService,
			service.NewAccountService,
			service.NewScheduleService,
			service.NewQuizService,
			service.NewQuizQuestionService,
			service.NewAssignmentService,
			service.NewWeeklyGoalService,
			service.NewStudyActivityService,
			service.NewSubjectPerformanceService,
			service.NewExamService,
			service.NewDashboardService,
			service.NewUploadService,
			service.NewSeedService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewScheduleController,
			controller.NewQuizController,
			controller.NewQuizQuestionController,
			controller.NewAssignmentController,
			controller.NewWeeklyGoalController,
			controller.NewStudyActivityController,
			controller.NewSubjectPerformanceController,
			controller.NewExamController,
			controller.NewDashboardController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(ProvisionAccounts),
		fx.Invoke(SeedDemoData),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSOrigins) == 0 || slices.Contains(cfg.Server.CORSOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.HostCheck(cfg.Server.AllowedHosts))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// ProvisionAccounts creates or resets every configured login account.
func ProvisionAccounts(cfg *config.Config, accounts service.AccountService) error {
	if len(cfg.Accounts) == 0 {
		log.Warn().Msg("No accounts configured. Set DASHBOARD_USERS or run createuser")
		return nil
	}
	ctx := context.Background()
	for _, cred := range cfg.Accounts {
		if _, _, err := accounts.EnsureAccount(ctx, cred.Username, cred.Password); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoData fills the first configured account when SEED_DATA is set.
func SeedDemoData(cfg *config.Config, users repository.UserRepository, seeder service.SeedService) error {
	if !cfg.SeedData {
		return nil
	}
	if len(cfg.Accounts) == 0 {
		log.Warn().Msg("SEED_DATA is set but no account is configured, skipping seed")
		return nil
	}
	ctx := context.Background()
	user, err := users.FindByUsername(ctx, cfg.Accounts[0].Username)
	if err != nil {
		return err
	}
	_, err = seeder.SeedIfEmpty(ctx, user.ID)
	return err
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth service.AuthService,
	handlers controller.Handlers,
) {
	controller.RegisterRoutes(router, handlers, auth)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           middleware.StripTrailingSlash("/api/", router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Study Dashboard API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.AutoMigrate(db)
}
