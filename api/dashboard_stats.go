package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) DashboardStats(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var apps []model.Application

	err := a.DB.
		Where("user_id = ?", userID).
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service.BuildDashboardStats(apps, interviews, time.Now()),
	})
}
