package calculation

import (
	"errors"
	"fmt"

	"github.com/ffplan/freedom-planner/internal/domain"
)

var (
	// ErrEmptyPolicySchedule is returned when there is no policy year to plan against.
	ErrEmptyPolicySchedule = errors.New("policy schedule is empty")
	// ErrMissingMortgage is returned when a property is declared without a mortgage.
	ErrMissingMortgage = errors.New("property has no mortgage")
	// ErrInvalidTerm is returned for an amortizing loan without a positive term.
	ErrInvalidTerm = errors.New("loan term must be positive")
	// ErrMissingStartDate is returned for an amortizing loan without a start date.
	ErrMissingStartDate = errors.New("loan start date is required")
)

// ValidateLoan checks that a loan can be amortized.
func ValidateLoan(l domain.Loan) error {
	if l.LengthInMonths <= 0 {
		return fmt.Errorf("loan %q: %w", l.Name, ErrInvalidTerm)
	}
	if l.StartDate.IsZero() {
		return fmt.Errorf("loan %q: %w", l.Name, ErrMissingStartDate)
	}
	if l.FinancedAmount.IsNegative() {
		return fmt.Errorf("loan %q: financed amount cannot be negative", l.Name)
	}
	return nil
}
