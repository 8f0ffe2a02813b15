package validators

import (
	"errors"
	"strings"
	"testing"
)

func TestEmailValidator(t *testing.T) {
	if err := EmailValidator("user@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if !errors.Is(EmailValidator(""), ErrEmailEmpty) {
		t.Error("empty email not rejected")
	}
	if !errors.Is(EmailValidator("not-an-email"), ErrEmailInvalid) {
		t.Error("malformed email not rejected")
	}
}

func TestPasswordValidator(t *testing.T) {
	if err := PasswordValidator("longenough"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if !errors.Is(PasswordValidator(""), ErrPasswordEmpty) {
		t.Error("empty password not rejected")
	}
	if !errors.Is(PasswordValidator("short"), ErrPasswordTooShort) {
		t.Error("short password not rejected")
	}
	if !errors.Is(PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong) {
		t.Error("overlong password not rejected")
	}
}

func TestNameValidator(t *testing.T) {
	if err := NameValidator("Ada"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if !errors.Is(NameValidator("   "), ErrNameEmpty) {
		t.Error("blank name not rejected")
	}
	if !errors.Is(NameValidator(strings.Repeat("a", 51)), ErrNameTooLong) {
		t.Error("overlong name not rejected")
	}
}

func TestApplicationStatusValidator(t *testing.T) {
	if err := ApplicationStatusValidator("Offer"); err != nil {
		t.Errorf("known status rejected: %v", err)
	}

	// Empty passes so partial updates can omit it
	if err := ApplicationStatusValidator(""); err != nil {
		t.Errorf("empty status rejected: %v", err)
	}

	if !errors.Is(ApplicationStatusValidator("Ghosted"), ErrApplicationStatusInvalid) {
		t.Error("unknown status not rejected")
	}

	// Statuses are case sensitive
	if ApplicationStatusValidator("applied") == nil {
		t.Error("lowercase status accepted")
	}
}

func TestInterviewStatusValidator(t *testing.T) {
	if err := InterviewStatusValidator("Cancelled"); err != nil {
		t.Errorf("known status rejected: %v", err)
	}
	if !errors.Is(InterviewStatusValidator(""), ErrInterviewStatusInvalid) {
		t.Error("empty status not rejected")
	}
	if !errors.Is(InterviewStatusValidator("Done"), ErrInterviewStatusInvalid) {
		t.Error("unknown status not rejected")
	}
}
