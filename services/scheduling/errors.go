package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound is returned when the pricing engine's service lookup
	// yields no service for the requested ID.
	ErrServiceNotFound = errors.New("service not found")

	// ErrPricingUnavailable is returned when currency conversion was requested
	// but no exchange rate exists for the (base, target) pair. Callers decide
	// whether to fall back to the base currency; the engine never substitutes
	// a rate of 1.
	ErrPricingUnavailable = errors.New("pricing unavailable: no exchange rate for requested currency")

	// ErrInvalidPattern is returned for recurrence patterns that cannot be
	// expanded (non-positive interval, unknown frequency, out-of-range weekday).
	ErrInvalidPattern = errors.New("invalid recurrence pattern")
)

// ConfigurationError reports invalid scheduling configuration (bad time zone,
// malformed business-hours map). It is surfaced to the caller immediately and
// never defaulted around.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scheduling configuration invalid: %s: %s", e.Field, e.Reason)
}
