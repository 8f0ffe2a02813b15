package service

import (
	"fmt"
	"jobtrackr/api/internal/model"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := d.AutoMigrate(model.User{}, model.Application{}, model.Interview{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return d
}

func TestSweepExpiredResets(t *testing.T) {
	d := testDB(t)
	now := time.Now()

	expiredDigest := "expired-digest"
	expiredAt := now.Add(-time.Minute)
	liveDigest := "live-digest"
	liveAt := now.Add(10 * time.Minute)

	users := []model.User{
		{ID: "expired", Email: "expired@example.com", PasswordHash: "x", FirstName: "A", LastName: "B",
			ResetPasswordToken: &expiredDigest, ResetPasswordExpire: &expiredAt},
		{ID: "live", Email: "live@example.com", PasswordHash: "x", FirstName: "A", LastName: "B",
			ResetPasswordToken: &liveDigest, ResetPasswordExpire: &liveAt},
		{ID: "none", Email: "none@example.com", PasswordHash: "x", FirstName: "A", LastName: "B"},
	}
	if err := d.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	n, err := SweepExpiredResets(d, now)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("sweep touched %d rows, want 1", n)
	}

	var expired, live model.User
	if err := d.First(&expired, "id = ?", "expired").Error; err != nil {
		t.Fatal(err)
	}
	if expired.ResetPasswordToken != nil || expired.ResetPasswordExpire != nil {
		t.Fatal("expired reset state was not cleared")
	}

	if err := d.First(&live, "id = ?", "live").Error; err != nil {
		t.Fatal(err)
	}
	if live.ResetPasswordToken == nil || *live.ResetPasswordToken != liveDigest {
		t.Fatal("unexpired reset state was cleared")
	}
}

func TestSweepExpiredResetsNoop(t *testing.T) {
	d := testDB(t)

	n, err := SweepExpiredResets(d, time.Now())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("sweep touched %d rows on an empty table", n)
	}
}
