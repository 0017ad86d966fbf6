// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var tacPattern = regexp.MustCompile(`^\d{6}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[0-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateTAC checks the verification-code format. Any six digits pass;
// the code itself is never checked against what was issued.
func ValidateTAC(code string) bool {
	return tacPattern.MatchString(code)
}
