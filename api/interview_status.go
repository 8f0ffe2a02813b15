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

type interviewStatusBody struct {
	Status string `json:"status"`
}

func (a *API) InterviewStatus(c *gin.Context) {
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

	var data interviewStatusBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.InterviewStatusValidator(data.Status); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
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

	patch := map[string]any{"status": data.Status}
	if data.Status == model.InterviewStatusCompleted {
		patch["completed_at"] = time.Now()
	} else {
		patch["completed_at"] = nil
	}

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

		zap.L().Error("Failed to update interview status", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// "Interview" on the application means "has had or has an
	// interview", so a completed one re-asserts it. Cancelling or
	// re-scheduling deliberately leaves the application alone.
	if data.Status == model.InterviewStatusCompleted {
		err = a.DB.
			Model(model.Application{}).
			Where("id = ?", interview.ApplicationID).
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
