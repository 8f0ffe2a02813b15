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

type updateApplicationBody struct {
	Company         *string    `json:"company"`
	Position        *string    `json:"position"`
	Location        *string    `json:"location"`
	Status          *string    `json:"status"`
	ApplicationDate *time.Time `json:"applicationDate"`
	NextStep        *string    `json:"nextStep"`
}

func (a *API) ApplicationUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid application ID",
			"requestID": requestID,
		})
		return
	}

	var data updateApplicationBody
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
	if data.Company != nil {
		patch["company"] = *data.Company
	}
	if data.Position != nil {
		patch["position"] = *data.Position
	}
	if data.Location != nil {
		patch["location"] = *data.Location
	}
	if data.Status != nil {
		if err := validators.ApplicationStatusValidator(*data.Status); err != nil || *data.Status == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"error":     validators.ErrApplicationStatusInvalid.Error(),
				"requestID": requestID,
			})
			return
		}
		patch["status"] = *data.Status
	}
	if data.ApplicationDate != nil {
		patch["application_date"] = *data.ApplicationDate
	}
	if data.NextStep != nil {
		patch["next_step"] = *data.NextStep
	}

	var app model.Application

	// Not-owned looks exactly like not-found on purpose
	err = a.DB.
		Where("id = ? AND user_id = ?", appID, userID).
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

	if len(patch) > 0 {
		err = a.DB.
			Model(&app).
			Updates(patch).
			Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":   false,
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update application", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    app,
	})
}
