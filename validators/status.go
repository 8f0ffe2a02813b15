package validators

import (
	"errors"
	"jobtrackr/api/internal/model"
	"slices"
)

var (
	ErrApplicationStatusInvalid = errors.New("invalid application status provided")
	ErrInterviewStatusInvalid   = errors.New("invalid interview status provided")
)

// ApplicationStatusValidator accepts the empty string so that partial
// updates without a status pass through untouched
func ApplicationStatusValidator(s string) error {
	if s == "" {
		return nil
	}

	if !slices.Contains(model.ApplicationStatuses, s) {
		return ErrApplicationStatusInvalid
	}

	return nil
}

func InterviewStatusValidator(s string) error {
	if !slices.Contains(model.InterviewStatuses, s) {
		return ErrInterviewStatusInvalid
	}

	return nil
}
