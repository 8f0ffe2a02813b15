package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterviewUpcoming returns the next 5 scheduled interviews
func (a *API) InterviewUpcoming(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var interviews []model.Interview

	err := a.DB.
		Where("user_id = ? AND status = ? AND date >= ?", userID, model.InterviewStatusScheduled, time.Now()).
		Order("date ASC").
		Limit(5).
		Find(&interviews).
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

	views, err := a.joinInterviews(userID, interviews)
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
		"data":    views,
	})
}
