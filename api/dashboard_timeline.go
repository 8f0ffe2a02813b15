package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const timelineLimit = 10

// DashboardTimeline merges the newest applications and interviews into
// one chronological feed
func (a *API) DashboardTimeline(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var apps []model.Application

	err := a.DB.
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Limit(timelineLimit).
		Find(&apps).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var interviews []model.Interview

	err = a.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(timelineLimit).
		Find(&interviews).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load interviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ids := make([]uint, len(interviews))
	for i, iv := range interviews {
		ids[i] = iv.ApplicationID
	}

	summaries, err := a.appSummaries(userID, ids)
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
		"data":    service.BuildTimeline(apps, interviews, summaries, timelineLimit),
	})
}
