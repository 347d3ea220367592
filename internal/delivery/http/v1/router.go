package v1

import (
	"net/http"
	"time"

	"peso-job-portal/config"
	"peso-job-portal/internal/delivery/http/middleware"
	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/notifier"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	CompanyUC        domain.CompanyUsecase
	DocumentUC       domain.CompanyDocumentsUsecase
	VacancyUC        domain.JobVacancyUsecase
	ApplicationUC    domain.ApplicationUsecase
	JobSeekerUC      domain.JobSeekerUsecase
	RecommendationUC domain.RecommendationUsecase
	NotificationUC   domain.NotificationUsecase
	CompanyRepo      domain.CompanyRepository
	Hub              *notifier.Hub
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
		NewVacancyHandler(v1, protected, deps.VacancyUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewDocumentHandler(protected, deps.DocumentUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewJobSeekerHandler(protected, deps.JobSeekerUC)
		NewRecommendationHandler(protected, deps.RecommendationUC, deps.JobSeekerUC, deps.CompanyRepo)
		NewNotificationHandler(protected, deps.NotificationUC, deps.Hub)
	}

	return r
}
