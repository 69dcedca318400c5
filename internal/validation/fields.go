package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/utils"
)

// Field validators in the shape huh's Validate expects.

func Required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// IntRange accepts whole numbers in [min, max]. Empty input fails.
func IntRange(field string, min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", field)
		}
		if n < min || n > max {
			return fmt.Errorf("%s must be between %d and %d", field, min, max)
		}
		return nil
	}
}

func NonNegativeInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", field)
		}
		if n < 0 {
			return fmt.Errorf("%s cannot be negative", field)
		}
		return nil
	}
}

// OptionalIntRange is IntRange that also accepts an empty string.
func OptionalIntRange(field string, min, max int) func(string) error {
	check := IntRange(field, min, max)
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return check(s)
	}
}

// OptionalDate accepts "" or YYYY-MM-DD.
func OptionalDate(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := utils.ParseDate(s); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		return nil
	}
}

// DateTime accepts YYYY-MM-DD HH:MM in loc.
func DateTime(field string, loc *time.Location) func(string) error {
	return func(s string) error {
		if _, err := utils.ParseDateTimeInLocation(s, loc); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		return nil
	}
}
