package loan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var months12 = decimal.NewFromInt(12)

// MonthlyPayment computes the fixed installment of an amortizing loan.
// annualRatePercent is a whole-percentage figure (6 means 6% p.a.).
// A zero rate degrades to straight-line principal/term; a degenerate divisor
// from extreme inputs yields zero rather than an infinity.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(termMonths)), 2)
	}
	monthlyRate := annualRatePercent.InexactFloat64() / 12 / 100
	divisor := 1 - math.Pow(1+monthlyRate, float64(-termMonths))
	if divisor == 0 {
		return decimal.Zero
	}
	payment := principal.InexactFloat64() * monthlyRate / divisor
	return decimal.NewFromFloat(payment).Round(2)
}

type Installment struct {
	Number           int             `json:"installment"`
	DueDate          time.Time       `json:"due_date"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	Payment          decimal.Decimal `json:"payment"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Schedule expands a loan into its per-month installment breakdown. The final
// installment absorbs accumulated rounding drift: its principal portion is
// forced to the exact remaining balance, so the schedule always closes at
// zero and the principal portions sum to the original principal.
func Schedule(principal, annualRatePercent decimal.Decimal, termMonths int, monthlyPayment decimal.Decimal, start time.Time) []Installment {
	if termMonths <= 0 {
		return nil
	}
	monthlyRate := annualRatePercent.Div(months12).Div(decimal.NewFromInt(100))

	rows := make([]Installment, 0, termMonths)
	remaining := principal
	for i := 1; i <= termMonths; i++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := monthlyPayment.Sub(interest)

		if i == termMonths {
			principalPart = remaining
			interest = monthlyPayment.Sub(principalPart)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		rows = append(rows, Installment{
			Number:           i,
			DueDate:          DueDate(start, i),
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			Payment:          monthlyPayment,
			RemainingBalance: remaining,
		})
	}
	return rows
}
