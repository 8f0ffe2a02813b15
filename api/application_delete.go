package api

import (
	"jobtrackr/api/internal/model"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ApplicationDelete(c *gin.Context) {
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

	res := a.DB.
		Where("id = ? AND user_id = ?", appID, userID).
		Delete(model.Application{})
	if res.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete application", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"success":   false,
			"error":     "Application not found",
			"requestID": requestID,
		})
		return
	}

	// Second write of the saga: take the orphaned interviews with it.
	// A crash in between leaves them behind until the next delete.
	err = a.DB.
		Where("application_id = ? AND user_id = ?", appID, userID).
		Delete(model.Interview{}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete attached interviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}
