package routes

import (
	"net/http"
	"time"

	"servizo/handlers"
	"servizo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login/signup view and its form posts.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/login", hb.ShowAuth)
	auth := r.Group("/auth")
	{
		auth.POST("/login", hb.Login)
		auth.POST("/signup", hb.Signup)
	}
}

// RegisterDashboardRoutes registers the signed-in shell: tabs, logout and the
// provider-mode toggle.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	app := r.Group("")
	app.Use(middleware.RequireSession())
	{
		app.GET("/dashboard", hb.Dashboard)
		app.POST("/logout", hb.Logout)
		app.POST("/provider-mode", hb.ToggleProviderMode)
	}
}

// RegisterServiceRoutes registers the service form and booking entry points.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	svc := r.Group("/services")
	svc.Use(middleware.RequireSession())
	{
		svc.GET("/new", hb.NewService)
		svc.POST("", hb.CreateService)
		svc.GET("/:id/edit", hb.EditService)
		svc.POST("/:id", hb.UpdateService)
		svc.POST("/:id/delete", hb.DeleteService)
		svc.GET("/:id/book", hb.NewBooking)
	}
}

// RegisterBookingRoutes registers booking submission and provider responses.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireSession())
	{
		bookings.POST("", hb.CreateBooking)
		bookings.POST("/:id/status", hb.RespondBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Servizo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Root shell: the session decides between auth and dashboard.
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
