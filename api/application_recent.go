package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type recentApplication struct {
	ID              uint      `json:"id"`
	Company         string    `json:"company"`
	Position        string    `json:"position"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
}

func (a *API) ApplicationRecent(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    recent,
	})
}
