package calculation

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

func mortgageBalance(p *domain.Property) decimal.Decimal {
	if p == nil || p.Mortgage == nil {
		return zero
	}
	return p.Mortgage.CurrentBalance
}

func helocBalance(p *domain.Property) decimal.Decimal {
	if p == nil || p.Heloc == nil {
		return zero
	}
	return p.Heloc.Balance
}

// Equity is the property value less the mortgage balance.
func Equity(p *domain.Property) decimal.Decimal {
	if p == nil {
		return zero
	}
	return p.CurrentValue.Sub(mortgageBalance(p))
}

// RoomAvailable is how much more may be drawn on the HELOC:
// (1 - minimum equity) x value - mortgage balance - HELOC balance.
// The property's own minimum equity wins over defaultMinEquity. The result
// is negative when the property is over-leveraged.
func RoomAvailable(p *domain.Property, defaultMinEquity decimal.Decimal) decimal.Decimal {
	if p == nil {
		return zero
	}
	minEquity := money.OrDefault(p.MinimumEquity, defaultMinEquity)
	ceiling := one.Sub(minEquity).Mul(p.CurrentValue)
	return ceiling.Sub(mortgageBalance(p)).Sub(helocBalance(p))
}

// refreshProperty recomputes equity and HELOC room in place and returns
// the room.
func refreshProperty(p *domain.Property, defaultMinEquity decimal.Decimal) decimal.Decimal {
	if p == nil {
		return zero
	}
	ensureHeloc(p)
	p.CurrentEquity = money.Cents(Equity(p))
	room := RoomAvailable(p, defaultMinEquity)
	p.Heloc.RoomAvailable = money.Cents(room)
	return room
}

func ensureHeloc(p *domain.Property) *domain.Heloc {
	if p.Heloc == nil {
		p.Heloc = &domain.Heloc{}
	}
	return p.Heloc
}

// drawHeloc adds amount to the HELOC balance.
func drawHeloc(h *domain.Heloc, amount decimal.Decimal) {
	h.Balance = h.Balance.Add(money.NonNegative(amount))
}

// repayHeloc applies up to amount against the HELOC and returns what was used.
func repayHeloc(h *domain.Heloc, amount decimal.Decimal) decimal.Decimal {
	pay := money.Min(money.NonNegative(amount), h.Balance)
	h.Balance = h.Balance.Sub(pay)
	return pay
}

// accrueHelocInterest adds one month of interest and returns it.
func accrueHelocInterest(h *domain.Heloc) decimal.Decimal {
	interest := money.Cents(h.Balance.Mul(money.PercentToMonthlyRate(money.NonNegative(h.InterestRate))))
	h.Balance = h.Balance.Add(interest)
	return interest
}
