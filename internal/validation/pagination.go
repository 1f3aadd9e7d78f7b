package validation

import (
	"github.com/hackernews-graphql-api/internal/apperrors"
)

// Pagination bounds for the feed
const (
	DefaultTake = 30
	MinTake     = 1
	MaxTake     = 50
	DefaultSkip = 0
)

// ValidateTake returns the page size to use. A nil take falls back to DefaultTake;
// values outside [MinTake, MaxTake] are rejected, never clamped.
func ValidateTake(take *int) (int, error) {
	if take == nil {
		return DefaultTake, nil
	}
	if *take < MinTake || *take > MaxTake {
		return 0, &apperrors.InvalidArgumentError{
			Argument: "take",
			Value:    *take,
			Min:      MinTake,
			Max:      MaxTake,
			HasMax:   true,
		}
	}
	return *take, nil
}

// ValidateSkip returns the offset to use. A nil skip falls back to DefaultSkip.
func ValidateSkip(skip *int) (int, error) {
	if skip == nil {
		return DefaultSkip, nil
	}
	if *skip < 0 {
		return 0, &apperrors.InvalidArgumentError{Argument: "skip", Value: *skip, Min: 0}
	}
	return *skip, nil
}
