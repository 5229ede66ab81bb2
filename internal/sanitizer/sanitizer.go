// Package sanitizer validates free-text query parameters before they reach
// the search queries.
package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the maximum number of characters accepted after trimming.
const MaxInputLength = 100

// Letters, digits, spaces, hyphens and basic punctuation only.
var safeInputPattern = regexp.MustCompile(`^[a-zA-Z0-9 \-.,:;()]*$`)

// ValidationError reports input rejected at the API boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Sanitize trims the input and checks its length and character set.
// A nil input is returned unchanged.
func Sanitize(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	cleaned, err := clean("", *input)
	if err != nil {
		return nil, err
	}
	return &cleaned, nil
}

// SanitizeQuery sanitizes a query parameter as returned by gin's GetQuery.
// An absent parameter yields "" with no error.
func SanitizeQuery(field, value string, present bool) (string, error) {
	if !present {
		return "", nil
	}
	return clean(field, value)
}

func clean(field, input string) (string, error) {
	input = strings.TrimSpace(input)

	if utf8.RuneCountInString(input) > MaxInputLength {
		return "", &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("input exceeds maximum length of %d characters", MaxInputLength),
		}
	}

	if !safeInputPattern.MatchString(input) {
		return "", &ValidationError{
			Field:   field,
			Message: "input contains invalid characters; only letters, numbers, spaces, hyphens, and basic punctuation are allowed",
		}
	}

	return input, nil
}
