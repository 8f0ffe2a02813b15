package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createApplicationBody struct {
	Company         string     `json:"company"`
	Position        string     `json:"position"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
	ApplicationDate *time.Time `json:"applicationDate"`
	NextStep        string     `json:"nextStep"`
}

func (a *API) ApplicationCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createApplicationBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Company == "" || data.Position == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Company and position are required",
			"requestID": requestID,
		})
		return
	}

	if err := validators.ApplicationStatusValidator(data.Status); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	app := model.Application{
		// Owner always comes from the verified token, never from the body
		UserID:          userID,
		Company:         data.Company,
		Position:        data.Position,
		Location:        data.Location,
		Status:          data.Status,
		NextStep:        data.NextStep,
		ApplicationDate: time.Now(),
	}

	if app.Status == "" {
		app.Status = model.AppStatusApplied
	}

	if app.NextStep == "" {
		app.NextStep = model.DefaultNextStep
	}

	if data.ApplicationDate != nil {
		app.ApplicationDate = *data.ApplicationDate
	}

	if err := a.DB.Create(&app).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create application", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    app,
	})
}
