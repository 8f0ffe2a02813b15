package security

import (
	"testing"

	"github.com/spf13/viper"
)

func TestAuthTokenRoundtrip(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expiry_days", 30)

	token, err := MakeAuthToken("user123")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	userID, err := ParseAuthToken(token)
	if err != nil {
		t.Fatalf("failed to parse freshly signed token: %v", err)
	}

	if userID != "user123" {
		t.Fatalf("token resolved to %q, want user123", userID)
	}
}

func TestAuthTokenTampered(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expiry_days", 30)

	token, err := MakeAuthToken("user123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAuthToken(token + "x"); err == nil {
		t.Fatal("tampered token parsed successfully")
	}
}

func TestAuthTokenWrongSecret(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expiry_days", 30)

	token, err := MakeAuthToken("user123")
	if err != nil {
		t.Fatal(err)
	}

	viper.Set("jwt.secret", "different-secret")
	if _, err := ParseAuthToken(token); err == nil {
		t.Fatal("token signed with another secret parsed successfully")
	}
}

func TestAuthTokenExpired(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expiry_days", -1)

	token, err := MakeAuthToken("user123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAuthToken(token); err == nil {
		t.Fatal("expired token parsed successfully")
	}
}

func TestAuthTokenGarbage(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	if _, err := ParseAuthToken("not.a.token"); err == nil {
		t.Fatal("garbage token parsed successfully")
	}
}
