package validators

import (
	"errors"
	"strings"
)

var (
	ErrNameEmpty   = errors.New("first and last name are required")
	ErrNameTooLong = errors.New("names cannot exceed 50 characters")
)

func NameValidator(n string) error {
	if strings.TrimSpace(n) == "" {
		return ErrNameEmpty
	}

	if len(n) > 50 {
		return ErrNameTooLong
	}

	return nil
}
