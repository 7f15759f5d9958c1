// Package schedule computes loan amortization schedules. It implements the
// fixed-EMI amortization model: the monthly installment is computed once from
// the original terms and yearly prepayments shorten the tenure instead of
// lowering the installment.
package schedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrInvalidTenure indicates a loan tenure of zero or fewer years.
var ErrInvalidTenure = errors.New("loan tenure must be at least one year")

// Terms holds the immutable parameters of a single loan.
type Terms struct {
	Principal   float64 // amount borrowed
	AnnualRate  float64 // annual interest rate in percent
	TenureYears int
}

// Prepayment describes an optional yearly lump-sum payment applied toward
// principal at the end of each loan year. The zero value disables prepayment.
type Prepayment struct {
	YearlyAmount float64
	StartYear    int // first loan year the prepayment applies, 1-based
}

// Active reports whether the policy contributes any payment.
func (p Prepayment) Active() bool {
	return p.YearlyAmount > 0
}

// Entry holds the ledger values for one month of a schedule.
type Entry struct {
	Month     int // 1-based
	EMI       float64
	Principal float64 // principal portion, including any prepayment
	Interest  float64
	Balance   float64 // outstanding balance after this payment, never negative
}

// Schedule is the month-by-month amortization of a loan.
type Schedule struct {
	EMI     float64
	Entries []Entry

	// Truncated is set when the iteration cap was reached before the balance
	// amortized; FinalBalance then carries the outstanding remainder so
	// callers can warn rather than silently show an incomplete payoff.
	Truncated    bool
	FinalBalance float64
}

// Months returns the schedule length in months.
func (s *Schedule) Months() int {
	return len(s.Entries)
}

// TotalInterest sums the interest portions over the whole schedule.
func (s *Schedule) TotalInterest() float64 {
	var total float64
	for _, entry := range s.Entries {
		total += entry.Interest
	}
	return total
}

// TotalPrincipal sums the principal portions over the whole schedule.
func (s *Schedule) TotalPrincipal() float64 {
	var total float64
	for _, entry := range s.Entries {
		total += entry.Principal
	}
	return total
}

// ComputeEMI calculates the equated monthly installment for a loan using the
// standard amortization formula. For a zero interest rate the principal is
// divided evenly across the term. Callers are responsible for validating
// parameter bounds; the formula itself is defined for any positive inputs.
func ComputeEMI(principal, annualRate float64, tenureYears int) float64 {
	payments := float64(tenureYears * constants.MonthsPerYear)
	if annualRate == 0 {
		return principal / payments
	}

	monthlyRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+monthlyRate, payments)
	return principal * monthlyRate * power / (power - 1.00)
}

// Generator produces amortization schedules.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate simulates a loan month by month until the balance is extinguished
// and returns the resulting schedule. The EMI is fixed from the original
// terms and is not recalculated when prepayments shrink the balance.
//
// A yearly prepayment is added to the principal portion of the last month of
// each loan year (months 12, 24, ...) once StartYear is reached. The
// principal portion is capped to the outstanding balance so the final payment
// never overpays. Generation stops unconditionally after
// TenureYears * 12 * ScheduleCapFactor months; the schedule is then marked
// Truncated with the outstanding balance preserved.
func (g *Generator) Generate(terms Terms, prepay Prepayment) (*Schedule, error) {
	if terms.TenureYears <= 0 {
		return nil, fmt.Errorf("loan with principal %.2f: %w", terms.Principal, ErrInvalidTenure)
	}

	emi := ComputeEMI(terms.Principal, terms.AnnualRate, terms.TenureYears)
	monthlyRate := terms.AnnualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	maxMonths := terms.TenureYears * constants.MonthsPerYear * constants.ScheduleCapFactor

	schedule := &Schedule{EMI: emi}
	balance := terms.Principal

	for month := 1; balance > constants.BalanceEpsilon; month++ {
		if month > maxMonths {
			g.logger.Warn("schedule did not amortize within the iteration cap",
				zap.String("op", "schedule.Generate"),
				zap.Int("months", maxMonths),
				zap.Float64("balance", balance),
			)
			schedule.Truncated = true
			break
		}

		interest := balance * monthlyRate
		principalPaid := emi - interest

		currentYear := (month-1)/constants.MonthsPerYear + 1
		yearEnd := month%constants.MonthsPerYear == 0
		if yearEnd && currentYear >= prepay.StartYear && prepay.Active() {
			g.logger.Debug(fmt.Sprintf("month %d: applying yearly prepayment %.2f", month, prepay.YearlyAmount),
				zap.String("op", "schedule.Generate"),
			)
			principalPaid += prepay.YearlyAmount
		}

		if principalPaid > balance {
			principalPaid = balance
		}

		balance -= principalPaid
		schedule.Entries = append(schedule.Entries, Entry{
			Month:     month,
			EMI:       emi,
			Principal: principalPaid,
			Interest:  interest,
			Balance:   math.Max(balance, 0),
		})
	}

	schedule.FinalBalance = math.Max(balance, 0)
	if mathutil.WithinTolerance(schedule.FinalBalance, 0, constants.BalanceEpsilon) {
		schedule.FinalBalance = 0
	}

	return schedule, nil
}
