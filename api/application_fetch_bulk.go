package api

import (
	"jobtrackr/api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type applicationStatusCounts struct {
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offered      int `json:"offered"`
	Rejected     int `json:"rejected"`
}

type applicationCounts struct {
	Total  int                     `json:"total"`
	Status applicationStatusCounts `json:"status"`
}

func (a *API) ApplicationFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var apps []model.Application

	err := a.DB.
		Where("user_id = ?", userID).
		Order("application_date DESC").
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

	stats := applicationCounts{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case model.AppStatusApplied:
			stats.Status.Applied++
		case model.AppStatusInterview:
			stats.Status.Interviewing++
		case model.AppStatusOffer:
			stats.Status.Offered++
		case model.AppStatusRejected:
			stats.Status.Rejected++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(apps),
		"stats":   stats,
		"data":    apps,
	})
}
