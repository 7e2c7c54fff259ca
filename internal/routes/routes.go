package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/auth"
	"github.com/BruksfildServices01/quickcut/internal/handlers"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/middleware"
)

// Deps are the process-wide singletons the handlers share.
type Deps struct {
	Repo  *repository.ShopRepository
	Auth  *auth.Service
	Audit *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Audit)
	meHandler := handlers.NewMeHandler()

	appointmentHandler := handlers.NewAppointmentHandler(deps.Repo, deps.Audit)
	barberHandler := handlers.NewBarberHandler(deps.Repo, deps.Audit)
	serviceHandler := handlers.NewServiceHandler(deps.Repo, deps.Audit)
	customerHandler := handlers.NewCustomerHandler(deps.Repo, deps.Audit)

	dashboardHandler := handlers.NewDashboardHandler(deps.Repo)
	reportHandler := handlers.NewReportHandler(deps.Repo)
	settingsHandler := handlers.NewSettingsHandler(deps.Repo, deps.Audit)
	notificationHandler := handlers.NewNotificationHandler(deps.Repo)

	publicHandler := handlers.NewPublicHandler(deps.Repo, deps.Audit)

	requireSession := middleware.AuthMiddleware(deps.Auth)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shop", publicHandler.Shop)
			publicAPI.GET("/services", publicHandler.Services)
			publicAPI.GET("/barbers", publicHandler.Barbers)
			publicAPI.GET("/slots", publicHandler.Slots)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments/:id/queue", publicHandler.Queue)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", requireSession, authHandler.Logout)
		api.GET("/auth/me", requireSession, meHandler.GetMe)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireSession)
		{
			admin.GET("/dashboard", dashboardHandler.Stats)
			admin.GET("/search", dashboardHandler.Search)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/today", appointmentHandler.Today)
			admin.POST("/appointments", appointmentHandler.Create)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.GET("/barbers/:id", barberHandler.Get)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.GET("/services/:id", serviceHandler.Get)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/customers", customerHandler.List)
			admin.POST("/customers", customerHandler.Create)
			admin.GET("/customers/:id", customerHandler.Get)
			admin.PATCH("/customers/:id", customerHandler.Update)
			admin.DELETE("/customers/:id", customerHandler.Delete)

			// ------------------------------
			// REPORTS / EXPORT
			// ------------------------------
			admin.GET("/reports/:type", reportHandler.Report)
			admin.GET("/export/:target", reportHandler.Export)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)
			admin.PUT("/settings/notifications", settingsHandler.UpdateNotifications)

			admin.GET("/notifications", notificationHandler.List)
			admin.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			admin.DELETE("/notifications", notificationHandler.Clear)

			admin.PUT("/password", authHandler.ChangePassword)
		}
	}
}
