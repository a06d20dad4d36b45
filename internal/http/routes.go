package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/givehub/backend/internal/domain"
)

func NewRouter(h *Handler, allowedOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := Authenticate(h.JWTSecret, h.Resolvers)
	donorOnly := RestrictTo(domain.RoleDonor)
	adminOnly := RestrictTo(domain.RoleAdmin, domain.RoleSuperAdmin)
	rl := RateLimit(h.Redis, h.RateLimitPerMin)

	donors := r.Group("/api/donors")
	{
		donors.POST("/register", rl, h.Register)
		donors.POST("/login", rl, h.Login)
		donors.GET("/profile", auth, donorOnly, h.GetProfile)
		donors.PATCH("/profile", auth, donorOnly, h.UpdateProfile)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", rl, h.AdminLogin)

		priv := admin.Group("", auth, adminOnly)
		priv.GET("/profile", h.AdminProfile)
		priv.GET("/donors", h.AdminListDonors)
		priv.GET("/stats", h.AdminStats)

		priv.GET("/organizations", h.ListOrganizations)
		priv.POST("/organizations", h.CreateOrganization)
		priv.GET("/organizations/:id", h.GetOrganization)
		priv.PUT("/organizations/:id", h.UpdateOrganization)
		priv.DELETE("/organizations/:id", h.DeleteOrganization)

		priv.GET("/donations", h.AdminListDonations)
		priv.PATCH("/donations/:id/status", h.UpdateDonationStatus)

		priv.GET("/users", h.AdminListUsers)
		priv.GET("/users/:id", h.AdminGetUser)
		priv.PUT("/users/:id", h.AdminUpdateUser)
		priv.DELETE("/users/:id", h.AdminDeleteUser)

		priv.GET("/notifications", h.ListNotifications)
		priv.PATCH("/notifications/read-all", h.MarkAllNotificationsRead)
		priv.PATCH("/notifications/:id/read", h.MarkNotificationRead)
		priv.DELETE("/notifications/:id", h.DeleteNotification)

		priv.GET("/settings", h.GetSettings)
		priv.PATCH("/settings", h.UpdateSettings)
	}

	orgs := r.Group("/api/organizations")
	{
		orgs.GET("", h.ListOrganizations)
		orgs.GET("/:id", h.GetOrganization)
		orgs.POST("", auth, adminOnly, h.CreateOrganization)
		orgs.PATCH("/:id", auth, adminOnly, h.UpdateOrganization)
		orgs.DELETE("/:id", auth, adminOnly, h.DeleteOrganization)
	}

	donations := r.Group("/api/donations")
	{
		donations.POST("", auth, donorOnly, h.CreateDonation)
		donations.GET("/donor", auth, donorOnly, h.ListMyDonations)
		donations.GET("/admin", auth, adminOnly, h.AdminListDonations)
		donations.PATCH("/admin/:id/status", auth, adminOnly, h.UpdateDonationStatus)
	}

	feedback := r.Group("/api/feedback")
	{
		feedback.POST("", auth, donorOnly, h.SubmitFeedback)
		feedback.GET("/user", auth, donorOnly, h.MyFeedback)
		feedback.GET("/admin", auth, adminOnly, h.AdminListFeedback)
		feedback.PATCH("/admin/:id/status", auth, adminOnly, h.UpdateFeedbackStatus)
	}

	return r
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
