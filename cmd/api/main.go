package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"peso-job-portal/config"
	v1 "peso-job-portal/internal/delivery/http/v1"
	"peso-job-portal/internal/notifier"
	"peso-job-portal/internal/repository/postgres"
	"peso-job-portal/internal/scheduler"
	"peso-job-portal/internal/usecase"
	"peso-job-portal/pkg/database"
	"peso-job-portal/pkg/email"
	"peso-job-portal/pkg/logger"
	"peso-job-portal/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           PESO Taguig Job Portal API
// @version         1.0
// @description     Public employment service job-matching backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; optional, falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	documentRepo := postgres.NewDocumentRepository(dbPool)
	vacancyRepo := postgres.NewJobVacancyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	seekerRepo := postgres.NewJobSeekerRepository(dbPool)
	recommendationRepo := postgres.NewRecommendationRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 6. Setup Notifications
	hub := notifier.NewHub()
	go hub.Run()
	dispatcher := notifier.NewDispatcher(notificationRepo, hub)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - accreditation and hire emails will be skipped")
	}

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	companyUC := usecase.NewCompanyUsecase(companyRepo, documentRepo, userRepo, dispatcher, emailService)
	documentUC := usecase.NewDocumentUsecase(documentRepo, companyRepo, dispatcher)
	vacancyUC := usecase.NewJobVacancyUsecase(vacancyRepo, companyRepo, dispatcher)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, companyRepo, userRepo, dispatcher, emailService, cfg.StrictHirePrecondition)
	jobSeekerUC := usecase.NewJobSeekerUsecase(seekerRepo)
	recommendationUC := usecase.NewRecommendationUsecase(seekerRepo, recommendationRepo, validate, cfg.RecommendationPoolSize)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	// 9. Setup Daily Lifecycle Sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	sweepUC := usecase.NewSweepUsecase(documentRepo, companyRepo, vacancyRepo, time.Duration(cfg.DocumentGraceDays)*24*time.Hour)
	go scheduler.New(sweepUC, cfg.SweepHour).Start(sweepCtx)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		CompanyUC:        companyUC,
		DocumentUC:       documentUC,
		VacancyUC:        vacancyUC,
		ApplicationUC:    applicationUC,
		JobSeekerUC:      jobSeekerUC,
		RecommendationUC: recommendationUC,
		NotificationUC:   notificationUC,
		CompanyRepo:      companyRepo,
		Hub:              hub,
		Config:           cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
