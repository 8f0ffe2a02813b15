package service

import (
	"jobtrackr/api/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResetTokenCleanup defines a function used to periodically clear
// password reset digests whose window has passed
func ResetTokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Reset token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			n, err := SweepExpiredResets(db, time.Now())
			if err != nil {
				zap.L().Error("Failed to cleanup expired reset tokens", zap.Error(err))
				continue
			}

			if n > 0 {
				zap.L().Debug("Cleaned up expired reset tokens", zap.Int64("count", n))
			}
		}
	}()
}

// SweepExpiredResets clears the reset digest and expiry on every user
// whose window ended before now. Returns how many rows were touched.
func SweepExpiredResets(db *gorm.DB, now time.Time) (int64, error) {
	res := db.
		Model(model.User{}).
		Where("reset_password_expire < ?", now).
		Updates(map[string]any{
			"reset_password_token":  nil,
			"reset_password_expire": nil,
		})

	return res.RowsAffected, res.Error
}
