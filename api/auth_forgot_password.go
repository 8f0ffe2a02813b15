package api

import (
	"fmt"
	"jobtrackr/api/internal/model"
	"jobtrackr/api/pkg/security"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func (a *API) AuthForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Please provide an email address",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.
		Where("email = ?", strings.ToLower(strings.TrimSpace(data.Email))).
		First(&user).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success":   false,
				"error":     "No account found with that email",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	secret, digest, err := security.MakeResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	expire := time.Now().Add(time.Minute * time.Duration(viper.GetInt("reset.token_ttl_minutes")))

	err = a.DB.
		Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"reset_password_token":  digest,
			"reset_password_expire": expire,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The raw secret only ever leaves through the mail, never through
	// this response
	resetURL := fmt.Sprintf("%s/reset-password/%s", viper.GetString("host.frontend_url"), secret)

	if err := a.Mail.SendResetPasswordMail(user.Email, resetURL); err != nil {
		zap.L().Error("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))

		// Roll the token back so a half-done request can't be replayed
		rollbackErr := a.DB.
			Model(model.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]any{
				"reset_password_token":  nil,
				"reset_password_expire": nil,
			}).
			Error
		if rollbackErr != nil {
			zap.L().Error("Failed to roll back reset token", zap.Error(rollbackErr), zap.String("requestID", requestID))
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Failed to send password reset email",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset email sent",
	})
}
