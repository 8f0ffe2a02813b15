package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/pkg/security"
	"jobtrackr/api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type resetPasswordBody struct {
	Password string `json:"password"`
}

func (a *API) AuthResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	digest := security.HashResetToken(c.Param("resetToken"))

	var user model.User

	err := a.DB.
		Where("reset_password_token = ?", digest).
		First(&user).
		Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":   false,
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up reset token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid reset token",
			"requestID": requestID,
		})
		return
	}

	// Recompare in constant time, the lookup alone is a plain string
	// equality inside the database
	if user.ResetPasswordToken == nil || !security.ResetTokenMatches(*user.ResetPasswordToken, digest) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid reset token",
			"requestID": requestID,
		})
		return
	}

	// Expired tokens get the same answer as unknown ones
	if user.ResetPasswordExpire == nil || user.ResetPasswordExpire.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid reset token",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Single use: the digest is cleared in the same update that swaps
	// the password
	err = a.DB.
		Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_hash":         hash,
			"reset_password_token":  nil,
			"reset_password_expire": nil,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := a.issueToken(c, user.ID, requestID)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successful",
		"token":   token,
	})
}
