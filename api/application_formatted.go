package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// formattedApplication is the flat projection the frontend renders in
// its application table
type formattedApplication struct {
	ID          uint      `json:"id"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"appliedDate"`
	NextStep    string    `json:"nextStep"`
}

func (a *API) ApplicationFormatted(c *gin.Context) {
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

	formatted := make([]formattedApplication, len(apps))
	for i, app := range apps {
		formatted[i] = formattedApplication{
			ID:          app.ID,
			Company:     app.Company,
			Location:    app.Location,
			Position:    app.Position,
			Status:      app.Status,
			AppliedDate: app.ApplicationDate,
			NextStep:    app.NextStep,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    formatted,
	})
}
