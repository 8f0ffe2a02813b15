package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardActivity returns the 5 most recent applications alongside
// the next 5 scheduled interviews
func (a *API) DashboardActivity(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var recent []recentApplication

	err := a.DB.
		Model(model.Application{}).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Limit(5).
		Find(&recent).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load recent applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var upcoming []model.Interview

	err = a.DB.
		Where("user_id = ? AND status = ? AND date >= ?", userID, model.InterviewStatusScheduled, time.Now()).
		Order("date ASC").
		Limit(5).
		Find(&upcoming).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load upcoming interviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	views, err := a.joinInterviews(userID, upcoming)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to join applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"recentApplications": recent,
			"upcomingInterviews": views,
		},
	})
}
