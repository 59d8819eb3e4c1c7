package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

// Limits match the audit_events columns.
const (
	maxNameLength = 100
	maxIDLength   = 64
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z ]{2,}$`)
	nonAlphaNums = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// SanitizeName trims input and accepts only letters and spaces, at least two characters.
func SanitizeName(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: name cannot be empty", domain.ErrInputValidation)
	}
	if len(input) > maxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", domain.ErrInputValidation, maxNameLength)
	}
	if !namePattern.MatchString(input) {
		return "", fmt.Errorf("%w: name must be at least 2 letters and contain only letters", domain.ErrInputValidation)
	}
	return input, nil
}

// SanitizeID strips every non-alphanumeric character from a bike ID.
func SanitizeID(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("%w: bike ID cannot be blank", domain.ErrInputValidation)
	}
	id := nonAlphaNums.ReplaceAllString(input, "")
	if id == "" {
		return "", fmt.Errorf("%w: bike ID has no alphanumeric characters", domain.ErrInputValidation)
	}
	if len(id) > maxIDLength {
		return "", fmt.Errorf("%w: bike ID must be at most %d characters", domain.ErrInputValidation, maxIDLength)
	}
	return id, nil
}
