package domain

import "errors"

var (
	ErrInvalidValue            = errors.New("invalid value")
	ErrNoPriceData             = errors.New("no price data")
	ErrNoTradingDates          = errors.New("no trading dates in range")
	ErrInvalidRunID            = errors.New("invalid run id")
	ErrRunNotFound             = errors.New("simulation run not found")
	ErrRunLimitReached         = errors.New("simulation run limit reached")
	ErrUnknownTicker           = errors.New("unknown ticker")
	ErrInvalidTimeframe        = errors.New("invalid timeframe")
	ErrSimulationNotConfigured = errors.New("simulation not configured")
	ErrInvalidStrategy         = errors.New("invalid strategy")
)

// IsValidationError reports whether err is caused by bad caller input
// rather than the store or missing data
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidValue,
		ErrInvalidRunID,
		ErrUnknownTicker,
		ErrInvalidTimeframe,
		ErrInvalidStrategy,
		ErrSimulationNotConfigured,
		ErrRunLimitReached,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
