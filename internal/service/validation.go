package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"lol-stats/internal/domain"
)

const (
	MaxGameNameLength = 50
	MaxTagLineLength  = 20
	MaxRegionLength   = 10
)

// ValidateLookup checks a riot id and region before any upstream call. The
// region is returned lowercased.
func ValidateLookup(gameName, tagLine, region string) (string, error) {
	if err := validateGameName(gameName); err != nil {
		return "", err
	}
	if err := validateTagLine(tagLine); err != nil {
		return "", err
	}

	region = strings.ToLower(region)
	if region == "" || len(region) > MaxRegionLength {
		return "", invalid("region", "must be 1-%d characters", MaxRegionLength)
	}
	for _, r := range region {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return "", invalid("region", "contains invalid characters")
		}
	}
	return region, nil
}

func validateGameName(gameName string) error {
	n := utf8.RuneCountInString(gameName)
	if n == 0 || n > MaxGameNameLength {
		return invalid("gameName", "must be 1-%d characters", MaxGameNameLength)
	}
	if strings.TrimSpace(gameName) != gameName {
		return invalid("gameName", "cannot start or end with whitespace")
	}
	if strings.Contains(gameName, "  ") {
		return invalid("gameName", "cannot contain consecutive spaces")
	}
	for _, r := range gameName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(" _-.", r) {
			continue
		}
		return invalid("gameName", "contains invalid characters")
	}
	return nil
}

func validateTagLine(tagLine string) error {
	n := utf8.RuneCountInString(tagLine)
	if n == 0 || n > MaxTagLineLength {
		return invalid("tagLine", "must be 1-%d characters", MaxTagLineLength)
	}
	for _, r := range tagLine {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			continue
		}
		return invalid("tagLine", "contains invalid characters")
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, field, fmt.Sprintf(format, args...))
}
