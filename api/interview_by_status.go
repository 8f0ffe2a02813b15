package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// formattedInterview is the flat projection the frontend renders in its
// interview lists
type formattedInterview struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Platform    string    `json:"platform"`
	Interviewer string    `json:"interviewer"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
}

// InterviewByStatus splits the calendar in two: status=Upcoming gives
// future interviews soonest first, anything else gives past ones newest
// first
func (a *API) InterviewByStatus(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	status := c.DefaultQuery("status", "Upcoming")
	now := time.Now()

	q := a.DB.Where("user_id = ?", userID)
	if status == "Upcoming" {
		q = q.Where("date >= ?", now).Order("date ASC")
	} else {
		q = q.Where("date < ?", now).Order("date DESC")
	}

	var interviews []model.Interview

	if err := q.Find(&interviews).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load interviews", zap.Error(err), zap.String("requestID", requestID))
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

	formatted := make([]formattedInterview, len(views))
	for i, v := range views {
		formatted[i] = formattedInterview{
			ID:          v.ID,
			Type:        v.Type,
			Company:     v.Application.Company,
			Position:    v.Application.Position,
			Date:        v.Date,
			Time:        v.Time,
			Location:    v.Location,
			Platform:    v.Platform,
			Interviewer: v.Interviewer,
			Notes:       v.Notes,
			Status:      v.Status,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    formatted,
	})
}
