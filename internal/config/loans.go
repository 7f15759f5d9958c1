// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/schedule"
	"go.uber.org/zap"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name         string
	Principal    float64
	InterestRate float64 // percent per annum
	TenureYears  int

	// Computed by ProcessLoans.
	Schedule       *schedule.Schedule `yaml:"-"`
	PrepaySchedule *schedule.Schedule `yaml:"-"`
}

// Terms returns the loan's immutable input parameters.
func (loan *Loan) Terms() schedule.Terms {
	return schedule.Terms{
		Principal:   loan.Principal,
		AnnualRate:  loan.InterestRate,
		TenureYears: loan.TenureYears,
	}
}

// ProcessLoans iterates through all loans and produces the amortization
// schedules. When a prepayment policy is configured each loan additionally
// gets a with-prepayment schedule for comparison.
func (conf *Configuration) ProcessLoans(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	generator := schedule.NewGenerator(logger)
	policy := conf.PrepaymentPolicy()

	for i := range conf.Loans {
		loan := &conf.Loans[i]

		logger.Debug(fmt.Sprintf("generating amortization schedule for loan %s", loan.Name),
			zap.String("op", "config.ProcessLoans"),
		)

		s, err := generator.Generate(loan.Terms(), schedule.Prepayment{})
		if err != nil {
			return fmt.Errorf("loan %s: %w", loan.Name, err)
		}
		loan.Schedule = s

		if s.Truncated {
			logger.Warn(fmt.Sprintf("loan %s schedule truncated with outstanding balance %.2f", loan.Name, s.FinalBalance),
				zap.String("op", "config.ProcessLoans"),
			)
		}

		if policy.Active() {
			withPrepay, err := generator.Generate(loan.Terms(), policy)
			if err != nil {
				return fmt.Errorf("loan %s: %w", loan.Name, err)
			}
			loan.PrepaySchedule = withPrepay
		}
	}

	return nil
}

// PrepaymentPolicy converts the configured prepayment block into the
// engine's policy type. A missing start year defaults to the first loan
// year.
func (conf *Configuration) PrepaymentPolicy() schedule.Prepayment {
	startYear := conf.Prepayment.StartYear
	if startYear < 1 {
		startYear = 1
	}
	return schedule.Prepayment{
		YearlyAmount: conf.Prepayment.YearlyAmount,
		StartYear:    startYear,
	}
}
