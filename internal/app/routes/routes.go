package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/controllers"
	"github.com/yigit/mentorly/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Booking    *controllers.BookingController
	Coach      *controllers.CoachController
	User       *controllers.UserController
	Mentor     *controllers.MentorController
	Onboarding *controllers.OnboardingController
	Profile    *controllers.ProfileController
}

// SetupRouter configures all application routes. publicLimiter may be nil.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	publicLimiter gin.HandlerFunc,
) {
	middleware.RegisterValidatorTagNames()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(middleware.NoRoute())

	// API version group
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.Session())

	// --- Routes that tolerate anonymous callers ---
	public := v1.Group("")
	if publicLimiter != nil {
		public.Use(publicLimiter)
	}
	{
		public.GET("/coaches", ctrl.Coach.ListCoaches)
		public.GET("/me", ctrl.User.GetMe)
		public.GET("/mentor/check-application", ctrl.Mentor.CheckApplication)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireUser())

	bookings := authenticated.Group("/bookings/:id")
	{
		bookings.POST("/approve", ctrl.Booking.Approve)
		bookings.POST("/decline", ctrl.Booking.Decline)
		bookings.POST("/cancel", ctrl.Booking.Cancel)
	}

	mentor := authenticated.Group("/mentor")
	{
		mentor.GET("/me", ctrl.Mentor.GetDashboard)
		mentor.POST("/applications", ctrl.Mentor.Apply)
	}

	authenticated.POST("/onboarding/mentor", ctrl.Onboarding.SubmitMentor)

	profile := authenticated.Group("/profile")
	{
		profile.PATCH("", ctrl.Profile.UpdateProfile)
		profile.POST("/create", ctrl.Profile.CreateProfile)
		profile.POST("/update-role", ctrl.Profile.UpdateRole)
		profile.POST("/complete-onboarding", ctrl.Profile.CompleteOnboarding)
	}
}
