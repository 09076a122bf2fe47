package pnl

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateCurrency checks that a currency code is a known ISO 4217
// three-letter code.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency code %q: must be 3 letters", code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("invalid currency code %q: must be uppercase letters", code)
		}
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// CheckAlignment verifies the caller contract that MarketData row i
// describes PositionBook row i, by comparing row counts. The engine
// only enforces it for the two mark-to-X computations; callers that
// want to fail fast can run it right after loading the datasets.
func CheckAlignment(market *MarketData, book *PositionBook) error {
	if market.Len() != book.Len() {
		return fmt.Errorf("%w: %d mark rows for %d positions", ErrMisaligned, market.Len(), book.Len())
	}
	return nil
}
