package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmhodges/clock"

	"github.com/hrahman/profilio/adapters/event"
	httpAdapter "github.com/hrahman/profilio/adapters/http"
	"github.com/hrahman/profilio/adapters/mail"
	"github.com/hrahman/profilio/adapters/persistence"
	authUC "github.com/hrahman/profilio/internal/application/usecase/auth"
	blogUC "github.com/hrahman/profilio/internal/application/usecase/blog"
	calendarUC "github.com/hrahman/profilio/internal/application/usecase/calendar"
	resumeUC "github.com/hrahman/profilio/internal/application/usecase/resume"
	"github.com/hrahman/profilio/internal/config"
	"github.com/hrahman/profilio/internal/reminder"
	"github.com/hrahman/profilio/pkg/auth"
	"github.com/hrahman/profilio/pkg/logger"
	"github.com/hrahman/profilio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start profilio API server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "profilio-api")
	if err != nil {
		appLogger.Warn("tracing disabled, cannot init tracer provider")
	} else {
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	tokenStore := persistence.NewRedisResetTokenStore(redisClient)
	headingRepo := persistence.NewPostgresHeadingRepo(dbPool)
	summaryRepo := persistence.NewPostgresSummaryRepo(dbPool)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool)
	eventRepo := persistence.NewPostgresEventRepo(dbPool)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	mailSender := mail.NewSMTPSender(cfg)

	// Reminder core
	dispatcher := reminder.NewEmailDispatcher(mailSender, kafkaClient, appLogger)
	scheduler := reminder.NewScheduler(dispatcher, cfg.Reminder.LeadTime, clock.New(), appLogger)
	defer scheduler.Close()

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	requestResetUseCase := authUC.NewRequestPasswordResetUseCase(
		userRepo, tokenStore, mailSender, cfg.Auth.ResetTokenTTL, cfg.Auth.ResetLinkBase, appLogger)
	resetUseCase := authUC.NewResetPasswordUseCase(userRepo, tokenStore, appLogger)
	getAccountUseCase := authUC.NewGetAccountUseCase(userRepo)
	resumeUseCase := resumeUC.NewResumeUseCase(
		headingRepo, summaryRepo, educationRepo, experienceRepo, skillRepo, appLogger)
	calendarUseCase := calendarUC.NewCalendarUseCase(eventRepo, userRepo, scheduler, appLogger)
	blogUseCase := blogUC.NewBlogUseCase(blogRepo, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, requestResetUseCase, resetUseCase)
	accountHandler := httpAdapter.NewAccountHandler(getAccountUseCase)
	resumeHandler := httpAdapter.NewResumeHandler(resumeUseCase)
	calendarHandler := httpAdapter.NewCalendarHandler(calendarUseCase)
	blogHandler := httpAdapter.NewBlogHandler(blogUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password/:token", authHandler.ResetPassword)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/account", accountHandler.GetAccount)

			private.GET("/heading", resumeHandler.GetHeading)
			private.PUT("/heading", resumeHandler.UpsertHeading)
			private.DELETE("/heading", resumeHandler.DeleteHeading)

			private.GET("/summary", resumeHandler.GetSummary)
			private.PUT("/summary", resumeHandler.UpsertSummary)
			private.DELETE("/summary", resumeHandler.DeleteSummary)

			educations := private.Group("/educations")
			{
				educations.POST("", resumeHandler.CreateEducation)
				educations.GET("", resumeHandler.ListEducations)
				educations.PUT("/:id", resumeHandler.UpdateEducation)
				educations.DELETE("/:id", resumeHandler.DeleteEducation)
			}

			experiences := private.Group("/experiences")
			{
				experiences.POST("", resumeHandler.CreateExperience)
				experiences.GET("", resumeHandler.ListExperiences)
				experiences.PUT("/:id", resumeHandler.UpdateExperience)
				experiences.DELETE("/:id", resumeHandler.DeleteExperience)
			}

			skills := private.Group("/skills")
			{
				skills.POST("", resumeHandler.CreateSkill)
				skills.GET("", resumeHandler.ListSkills)
				skills.PUT("/:id", resumeHandler.UpdateSkill)
				skills.DELETE("/:id", resumeHandler.DeleteSkill)
			}

			events := private.Group("/events")
			{
				events.POST("", calendarHandler.CreateEvent)
				events.GET("", calendarHandler.ListEvents)
				events.PUT("/:id", calendarHandler.UpdateEvent)
				events.DELETE("/:id", calendarHandler.DeleteEvent)
			}

			blogs := private.Group("/blogs")
			{
				blogs.POST("", blogHandler.CreatePost)
				blogs.GET("", blogHandler.ListPosts)
				blogs.GET("/:id", blogHandler.GetPost)
				blogs.PUT("/:id", blogHandler.UpdatePost)
				blogs.DELETE("/:id", blogHandler.DeletePost)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
