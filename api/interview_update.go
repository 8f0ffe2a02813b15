package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/validators"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateInterviewBody struct {
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Location    *string    `json:"location"`
	Platform    *string    `json:"platform"`
	Interviewer *string    `json:"interviewer"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`
}

func (a *API) InterviewUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	interviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid interview ID",
			"requestID": requestID,
		})
		return
	}

	var data updateInterviewBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	patch := map[string]any{}
	if data.Type != nil {
		patch["type"] = *data.Type
	}
	if data.Date != nil {
		patch["date"] = *data.Date
	}
	if data.Time != nil {
		patch["time"] = *data.Time
	}
	if data.Location != nil {
		patch["location"] = *data.Location
	}
	if data.Platform != nil {
		patch["platform"] = *data.Platform
	}
	if data.Interviewer != nil {
		patch["interviewer"] = *data.Interviewer
	}
	if data.Notes != nil {
		patch["notes"] = *data.Notes
	}
	if data.Status != nil {
		if err := validators.InterviewStatusValidator(*data.Status); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		patch["status"] = *data.Status
	}

	var interview model.Interview

	err = a.DB.
		Where("id = ? AND user_id = ?", interviewID, userID).
		First(&interview).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success":   false,
				"error":     "Interview not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check interview ownership", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if len(patch) > 0 {
		err = a.DB.
			Model(&interview).
			Updates(patch).
			Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":   false,
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update interview", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	views, err := a.joinInterviews(userID, []model.Interview{interview})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to join application", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    views[0],
	})
}
