package market

import "errors"

// ErrorKind classifies population and segment validation failures so the
// boundary layer can map them to transport-level responses without
// parsing messages.
type ErrorKind string

const (
	// KindInvalidSegment marks a segment with a negative count, inverted
	// or out-of-range price bounds, or an unknown distribution tag.
	KindInvalidSegment ErrorKind = "invalid_segment"

	// KindPopulationTooLarge marks input that exceeds a configured
	// ceiling on participant or segment counts.
	KindPopulationTooLarge ErrorKind = "population_too_large"

	// KindEmptyPopulation marks input that produces zero participants on
	// both sides of the market.
	KindEmptyPopulation ErrorKind = "empty_population"

	// KindInvalidDistribution marks normal-distribution parameters that
	// cannot produce valid draws.
	KindInvalidDistribution ErrorKind = "invalid_distribution_parameters"
)

// Error is a classified validation failure. Field names the offending
// input when known, e.g. "buyer_segments[1]".
type Error struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// KindOf extracts the ErrorKind from err, unwrapping as needed. The
// second return is false when err carries no market classification.
func KindOf(err error) (ErrorKind, bool) {
	var merr *Error
	if errors.As(err, &merr) {
		return merr.Kind, true
	}
	return "", false
}

// withField returns a copy of err with Field set, when err is a market
// Error; other errors pass through unchanged.
func withField(err error, field string) error {
	var merr *Error
	if errors.As(err, &merr) {
		return &Error{Kind: merr.Kind, Field: field, Msg: merr.Msg}
	}
	return err
}
