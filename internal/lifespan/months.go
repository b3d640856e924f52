package lifespan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknown marks a response that explicitly declared no answer. Treated as
// stage failure, never surfaced past the cascade.
var ErrUnknown = errors.New("response declared unknown")

var digitRun = regexp.MustCompile(`\d+`)

// ParseMonths extracts a month count from free-form model output. Accepts
// "12", "12 months", "~12" and the like by scanning for the first run of
// digits; an UNKNOWN sentinel or pure prose fails the parse.
func ParseMonths(s string) (int, error) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty response")
	}
	if strings.Contains(cleaned, "unknown") {
		return 0, ErrUnknown
	}

	match := digitRun.FindString(cleaned)
	if match == "" {
		return 0, fmt.Errorf("no digits in response %q", s)
	}

	months, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", match, err)
	}
	if months < 1 {
		return 0, fmt.Errorf("non-positive months %d", months)
	}
	return months, nil
}
