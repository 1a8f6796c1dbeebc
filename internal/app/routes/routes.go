package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergington/activities/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
) {
	// Root redirect to the static landing page
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})

	// Activity routes (public access)
	activities := router.Group("/activities")
	{
		activities.GET("", activityController.GetAllActivities)
		activities.GET("/:activity_name", activityController.GetActivityByName)
		activities.POST("/:activity_name/signup", activityController.SignUp)
		activities.DELETE("/:activity_name/unregister", activityController.Unregister)
	}
}
