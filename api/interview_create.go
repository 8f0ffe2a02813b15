package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type createInterviewBody struct {
	ApplicationID uint       `json:"applicationId"`
	Type          string     `json:"type"`
	Date          *time.Time `json:"date"`
	Time          string     `json:"time"`
	Location      string     `json:"location"`
	Platform      string     `json:"platform"`
	Interviewer   string     `json:"interviewer"`
	Notes         string     `json:"notes"`
	Status        string     `json:"status"`
}

func (a *API) InterviewCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createInterviewBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.ApplicationID == 0 || data.Type == "" || data.Date == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Application, type and date are required",
			"requestID": requestID,
		})
		return
	}

	if data.Status != "" {
		if err := validators.InterviewStatusValidator(data.Status); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	// The application must exist and belong to the requester. Someone
	// else's application looks like a missing one.
	var app model.Application

	err := a.DB.
		Where("id = ? AND user_id = ?", data.ApplicationID, userID).
		First(&app).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success":   false,
				"error":     "Application not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check application ownership", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	interview := model.Interview{
		ApplicationID: app.ID,
		UserID:        userID,
		Type:          data.Type,
		Date:          *data.Date,
		Time:          data.Time,
		Location:      data.Location,
		Platform:      data.Platform,
		Interviewer:   data.Interviewer,
		Notes:         data.Notes,
		Status:        data.Status,
	}

	if interview.Status == "" {
		interview.Status = model.InterviewStatusScheduled
	}

	if err := a.DB.Create(&interview).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create interview", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Second write of the saga: the application now has an interview.
	// Not atomic with the create, a crash in between leaves the status
	// stale until the next transition.
	err = a.DB.
		Model(model.Application{}).
		Where("id = ?", app.ID).
		Update("status", model.AppStatusInterview).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update application status", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    interview,
	})
}
