package report

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/schedule"
	"go.uber.org/zap"
)

// LoanResult bundles everything derived from one loan's schedules.
type LoanResult struct {
	Summary  Summary
	Schedule *schedule.Schedule
	Yearly   []YearRow
	Prepay   *PrepayResult // nil when no prepayment policy is configured
}

// PrepayResult holds the with-prepayment view of a loan.
type PrepayResult struct {
	Summary  Summary
	Schedule *schedule.Schedule
	Impact   Impact
	Yearly   []YearRow
}

// Comparison is the full side-by-side result set for all configured loans.
type Comparison struct {
	Loans      []LoanResult
	Prepayment schedule.Prepayment
}

// GetComparison derives the comparison results for all configured loans.
// Schedules must already be populated via Configuration.ProcessLoans.
func GetComparison(logger *zap.Logger, conf config.Configuration) (*Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	policy := conf.PrepaymentPolicy()
	comparison := &Comparison{Prepayment: policy}

	for i := range conf.Loans {
		loan := &conf.Loans[i]
		if loan.Schedule == nil {
			return nil, fmt.Errorf("loan %s has no amortization schedule; process loans first", loan.Name)
		}

		result := LoanResult{
			Summary:  Summarize(loan.Name, loan.Terms(), loan.Schedule),
			Schedule: loan.Schedule,
			Yearly:   YearlyRollup(loan.Schedule),
		}

		if loan.PrepaySchedule != nil {
			result.Prepay = &PrepayResult{
				Summary:  Summarize(loan.Name, loan.Terms(), loan.PrepaySchedule),
				Schedule: loan.PrepaySchedule,
				Impact:   ComparePrepayment(loan.Schedule, loan.PrepaySchedule, policy.YearlyAmount),
				Yearly:   YearlyRollup(loan.PrepaySchedule),
			}
		}

		logger.Debug(fmt.Sprintf("compared loan %s over %d months", loan.Name, result.Summary.Months),
			zap.String("op", "report.GetComparison"),
		)

		comparison.Loans = append(comparison.Loans, result)
	}

	return comparison, nil
}
