package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/handlers"
	"github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
	ucAccount "github.com/BruksfildServices01/barbearia-api/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barbearia-api/internal/usecase/catalog"
	ucReview "github.com/BruksfildServices01/barbearia-api/internal/usecase/review"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

// Deps are the process-wide singletons the HTTP layer is built from.
type Deps struct {
	Config   *config.Config
	Store    *repository.Store
	Files    storage.FileStore
	Tokens   *auth.TokenService
	Revoker  auth.Revoker
	Notifier *notify.Notifier
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
	Location *time.Location

	// UploadsRoot is served under /uploads when files live on local disk.
	UploadsRoot string
}

// NewRouter returns the engine with global middleware, health, metrics and
// every API route.
func NewRouter(d Deps) *gin.Engine {
	validators.Setup()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(metrics.GinMiddleware())
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if d.UploadsRoot != "" {
		r.Static("/uploads", d.UploadsRoot)
	}

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES - ACCOUNT
	// ======================================================
	registerUC := ucAccount.NewRegister(d.Store.Users, d.Tokens, d.Notifier, d.Config.AppBaseURL)
	if d.Config.CheckEmailDomain {
		registerUC.WithDomainCheck()
	}

	authHandler := handlers.NewAuthHandler(
		registerUC,
		ucAccount.NewLogin(d.Store.Users, d.Tokens),
		ucAccount.NewLogout(d.Revoker),
		ucAccount.NewGetMe(d.Store.Users),
		ucAccount.NewConfirmEmail(d.Store.Users, d.Tokens),
		handlers.CookieConfig{
			MaxAge: d.Config.CookieMaxAge(),
			Secure: d.Config.IsProduction(),
		},
	)

	// ======================================================
	// USE CASES - CATALOG
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewListServices(d.Store.Services, d.Files),
		ucCatalog.NewGetService(d.Store.Services, d.Files),
		ucCatalog.NewCreateService(d.Store.Services, d.Files),
		ucCatalog.NewUpdateService(d.Store.Services, d.Files),
		ucCatalog.NewDeleteService(d.Store.Services, d.Files),
	)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	populator := ucAppointment.NewPopulator(d.Store.Users, d.Store.Services, d.Files)
	byDate := ucAppointment.NewListAppointmentsByDate(d.Store.Appointments, d.Location)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(d.Store.Appointments, d.Store.Reviews, populator),
		ucAppointment.NewGetAppointment(d.Store.Appointments, populator),
		ucAppointment.NewCreateAppointment(
			d.Store.Appointments,
			d.Store.Services,
			d.Store.Users,
			populator,
			d.Notifier,
			d.Audit,
			d.Location,
		),
		ucAppointment.NewUpdateAppointment(d.Store.Appointments, d.Store.Services, populator, d.Audit, d.Location),
		ucAppointment.NewDeleteAppointment(d.Store.Appointments, d.Files, d.Audit),
		ucAppointment.NewAttachReferenceImage(d.Store.Appointments, d.Files, populator, d.Audit),
	)

	scheduleHandler := handlers.NewScheduleHandler(
		ucAppointment.NewGetAvailability(byDate, d.Location),
	)

	// ======================================================
	// USE CASES - REVIEWS
	// ======================================================
	reviewPopulator := ucReview.NewPopulator(d.Store.Users, d.Store.Appointments, d.Store.Services)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewListReviews(d.Store.Reviews, reviewPopulator),
		ucReview.NewGetReview(d.Store.Reviews, reviewPopulator),
		ucReview.NewCreateReview(d.Store.Reviews, d.Store.Appointments, reviewPopulator, d.Audit),
		ucReview.NewUpdateReview(d.Store.Reviews, reviewPopulator),
		ucReview.NewDeleteReview(d.Store.Reviews, d.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog, d.Location)

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	requireAuth := middleware.AuthMiddleware(d.Tokens, d.Revoker, d.Store.Users)
	requireConfirmed := middleware.RequireEmailConfirmed()
	requireAdmin := middleware.RequireAdmin()
	limiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(limiter.Handler())
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
			authAPI.GET("/logout", middleware.OptionalClaims(d.Tokens), authHandler.Logout)
			authAPI.GET("/me", requireAuth, authHandler.Me)
			authAPI.GET("/confirmar-email/:token", authHandler.ConfirmEmail)
		}

		// ------------------------------
		// SERVIÇOS (leitura pública, escrita admin)
		// ------------------------------
		servicos := api.Group("/servicos")
		{
			servicos.GET("", serviceHandler.List)
			servicos.GET("/:id", serviceHandler.Get)
			servicos.POST("", requireAuth, requireAdmin, serviceHandler.Create)
			servicos.PUT("/:id", requireAuth, requireAdmin, serviceHandler.Update)
			servicos.DELETE("/:id", requireAuth, requireAdmin, serviceHandler.Delete)
		}

		// ------------------------------
		// AGENDAMENTOS (e-mail confirmado)
		// ------------------------------
		agendamentos := api.Group("/agendamentos")
		agendamentos.Use(requireAuth, requireConfirmed)
		{
			agendamentos.GET("", appointmentHandler.List)
			agendamentos.POST("", appointmentHandler.Create)
			agendamentos.GET("/:id", appointmentHandler.Get)
			agendamentos.PUT("/:id", appointmentHandler.Update)
			agendamentos.DELETE("/:id", appointmentHandler.Delete)
			agendamentos.PUT("/:id/imagem", appointmentHandler.UploadImage)
		}

		// ------------------------------
		// AVALIAÇÕES (e-mail confirmado)
		// ------------------------------
		avaliacoes := api.Group("/avaliacoes")
		avaliacoes.Use(requireAuth, requireConfirmed)
		{
			avaliacoes.GET("", reviewHandler.List)
			avaliacoes.GET("/:id", reviewHandler.Get)
			avaliacoes.POST("", reviewHandler.Create)
			avaliacoes.PUT("/:id", reviewHandler.Update)
			avaliacoes.DELETE("/:id", reviewHandler.Delete)
		}

		// ------------------------------
		// HORÁRIOS
		// ------------------------------
		api.GET("/horarios", scheduleHandler.TimeSlots)
		api.GET("/horarios/disponiveis", scheduleHandler.Availability)

		// ------------------------------
		// AUDITORIA (admin)
		// ------------------------------
		api.GET("/audit-logs", requireAuth, requireAdmin, auditLogsHandler.List)
	}
}
