package routes

import (
	"oviss-backend/config"
	"oviss-backend/controllers"
	"oviss-backend/services"
	"oviss-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(app *services.App) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.AuthController{App: app}
	catalogController := controllers.CatalogController{App: app}
	bookingController := controllers.BookingController{App: app}
	appointmentController := controllers.AppointmentController{App: app}
	notificationController := controllers.NotificationController{App: app}
	profileController := controllers.ProfileController{App: app}
	dashboardController := controllers.DashboardController{App: app}

	auth := r.Group("/auth")
	{
		auth.POST("/tac/request", authController.RequestTAC)
		auth.POST("/tac/verify", authController.VerifyTAC)
		auth.POST("/register", authController.Register)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
		auth.POST("/logout", authController.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes (read-only)
		catalog := api.Group("/catalog")
		{
			catalog.GET("/services", catalogController.Services)
			catalog.GET("/stylists", catalogController.Stylists)
			catalog.GET("/outlets", catalogController.Outlets)
			catalog.GET("/outlets/:id", catalogController.Outlet)
			catalog.GET("/slots", catalogController.Slots)
		}

		// Booking workflow routes
		booking := api.Group("/booking")
		{
			booking.GET("", bookingController.State)
			booking.POST("", bookingController.Start)
			booking.POST("/reschedule/:id", bookingController.Reschedule)
			booking.PUT("/outlet", bookingController.SelectOutlet)
			booking.PUT("/stylist", bookingController.SelectStylist)
			booking.PUT("/date", bookingController.SelectDate)
			booking.PUT("/time", bookingController.SelectTime)
			booking.PUT("/services/:id", bookingController.ToggleService)
			booking.POST("/confirm", bookingController.Confirm)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentController.List)
			appointments.GET("/:id", appointmentController.Get)
			appointments.DELETE("/:id", appointmentController.Cancel)
		}

		// Notification routes
		api.GET("/notifications", notificationController.List)

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", profileController.Get)
			profile.PUT("", profileController.Update)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.Overview)
	}

	return r
}
