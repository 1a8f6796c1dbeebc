package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/app/services"
	"github.com/mergington/activities/internal/middleware"
)

// ActivityController handles activity-related operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// GetAllActivities retrieves all activities with their participants
// @Summary List all activities
// @Description Returns every activity keyed by name, including schedule, capacity and registered participant emails
// @Tags activities
// @Produce json
// @Success 200 {object} dto.ActivityMap "Activities keyed by name"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	activities, err := c.activityService.GetAllActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// GetActivityByName retrieves a single activity by name
// @Summary Get activity details
// @Description Returns one activity's schedule, capacity and registered participant emails
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Success 200 {object} dto.ActivityDetail "Activity details"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{activity_name} [get]
func (c *ActivityController) GetActivityByName(ctx *gin.Context) {
	name := ctx.Param("activity_name")

	activity, err := c.activityService.GetActivityByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// SignUp signs a student up for an activity
// @Summary Sign up for an activity
// @Description Registers the given student email for the named activity
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Signup confirmation"
// @Failure 400 {object} dto.ErrorResponse "Student is already signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{activity_name}/signup [post]
func (c *ActivityController) SignUp(ctx *gin.Context) {
	activityName := ctx.Param("activity_name")
	email := ctx.Query("email")

	if err := c.activityService.SignUp(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister removes a student from an activity
// @Summary Unregister from an activity
// @Description Removes the given student email from the named activity
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Unregister confirmation"
// @Failure 400 {object} dto.ErrorResponse "Student is not signed up for this activity"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{activity_name}/unregister [delete]
func (c *ActivityController) Unregister(ctx *gin.Context) {
	activityName := ctx.Param("activity_name")
	email := ctx.Query("email")

	if err := c.activityService.Unregister(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}
