package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/config"
	"github.com/selimyuksel/NetTakip/database"
	_ "github.com/selimyuksel/NetTakip/docs" // Swagger docs - auto-generated
	analyticsctrl "github.com/selimyuksel/NetTakip/internal/controller/analytics"
	recordsctrl "github.com/selimyuksel/NetTakip/internal/controller/records"
	"github.com/selimyuksel/NetTakip/internal/logger"
	"github.com/selimyuksel/NetTakip/internal/middleware"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/repository"
	"github.com/selimyuksel/NetTakip/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title NetTakip LGS Tracking API
// @version 1.0
// @description Exam-prep tracking for LGS students: practice-test records, mistake notebook, mock exams and derived analytics.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRecordRepository,
			repository.NewMistakeRepository,
			repository.NewExamRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTestRecordService,
			service.NewMistakeService,
			service.NewExamService,
			service.NewAnalyticsService,
		),

		// API Controllers Layer
		fx.Provide(
			recordsctrl.NewTestRecordController,
			recordsctrl.NewMistakeController,
			recordsctrl.NewExamController,
			analyticsctrl.NewAnalyticsController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	testRecordCtrl *recordsctrl.TestRecordController,
	mistakeCtrl *recordsctrl.MistakeController,
	examCtrl *recordsctrl.ExamController,
	analyticsCtrl *analyticsctrl.AnalyticsController,
) {
	// Everything is owner-scoped, so the whole API sits behind the
	// identity middleware.
	api := router.Group("/api/v1", middleware.RequireUser(cfg.Auth.JWTSecret))
	{
		tests := api.Group("/records/tests")
		tests.POST("", testRecordCtrl.CreateTestRecord)
		tests.GET("", testRecordCtrl.ListTestRecords)
		tests.PUT("/:id", testRecordCtrl.UpdateTestRecord)
		tests.DELETE("/:id", testRecordCtrl.DeleteTestRecord)

		mistakes := api.Group("/records/mistakes")
		mistakes.POST("", mistakeCtrl.CreateMistake)
		mistakes.GET("", mistakeCtrl.ListMistakes)
		mistakes.GET("/due", mistakeCtrl.ListDueMistakes)
		mistakes.PATCH("/:id/status", mistakeCtrl.UpdateMistakeStatus)
		mistakes.DELETE("/:id", mistakeCtrl.DeleteMistake)

		exams := api.Group("/records/exams")
		exams.POST("", examCtrl.CreateExam)
		exams.GET("", examCtrl.ListExams)
		exams.PUT("/:id", examCtrl.UpdateExam)
		exams.DELETE("/:id", examCtrl.DeleteExam)

		analytics := api.Group("/analytics")
		analytics.GET("/dashboard", analyticsCtrl.GetDashboard)
		analytics.GET("/subjects", analyticsCtrl.GetSubjectBreakdown)
		analytics.GET("/daily", analyticsCtrl.GetDailyBreakdown)
		analytics.GET("/rankings", analyticsCtrl.GetRankings)
		analytics.GET("/exams", analyticsCtrl.GetExamAnalytics)

		api.GET("/catalog/subjects", analyticsCtrl.GetSubjectCatalog)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("NetTakip API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.TestRecord{},
		&model.MistakeRecord{},
		&model.ExamRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
