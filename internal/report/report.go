// Package report derives aggregate statistics from amortization schedules:
// per-loan summaries, prepayment impact, and year-wise rollups for
// side-by-side loan comparison.
package report

import (
	"github.com/iwvelando/loan-compare/internal/schedule"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
)

// Summary holds the headline figures for one loan.
type Summary struct {
	Name          string
	Principal     float64
	AnnualRate    float64
	TenureYears   int
	EMI           float64
	Months        int
	TotalInterest float64
	TotalPayment  float64
	InterestShare float64 // total interest as a percentage of principal
	Truncated     bool
	FinalBalance  float64
}

// Summarize condenses a schedule into its headline figures. Total payment is
// EMI times the schedule length since the EMI is constant for the life of
// the loan. Accumulated totals are rounded to cents; the EMI itself is kept
// exact.
func Summarize(name string, terms schedule.Terms, s *schedule.Schedule) Summary {
	totalInterest := mathutil.Round(s.TotalInterest())
	return Summary{
		Name:          name,
		Principal:     terms.Principal,
		AnnualRate:    terms.AnnualRate,
		TenureYears:   terms.TenureYears,
		EMI:           s.EMI,
		Months:        s.Months(),
		TotalInterest: totalInterest,
		TotalPayment:  mathutil.Round(s.EMI * float64(s.Months())),
		InterestShare: mathutil.CalculatePercentage(totalInterest, terms.Principal),
		Truncated:     s.Truncated,
		FinalBalance:  s.FinalBalance,
	}
}

// Impact holds the deltas between a loan's schedule with and without a
// yearly prepayment policy.
type Impact struct {
	InterestSaved float64
	MonthsSaved   int
	NetBenefit    float64
}

// ComparePrepayment computes the savings a prepayment policy yields relative
// to the plain schedule. Net benefit discounts the interest saved by the
// prepayment capital committed over the full years of the shortened
// schedule.
func ComparePrepayment(without, with *schedule.Schedule, yearlyAmount float64) Impact {
	interestSaved := mathutil.Round(without.TotalInterest() - with.TotalInterest())
	fullYears := with.Months() / constants.MonthsPerYear
	return Impact{
		InterestSaved: interestSaved,
		MonthsSaved:   without.Months() - with.Months(),
		NetBenefit:    mathutil.Round(interestSaved - yearlyAmount*float64(fullYears)),
	}
}

// YearRow aggregates one 12-month block of a schedule.
type YearRow struct {
	Year      int // 1-based
	Principal float64
	Interest  float64
	TotalPaid float64
	Balance   float64 // outstanding balance at the end of the block
}

// YearlyRollup groups a schedule into 12-month blocks, summing principal and
// interest paid and carrying the balance at each block end. A trailing
// partial year forms its own row.
func YearlyRollup(s *schedule.Schedule) []YearRow {
	var rows []YearRow
	for _, entry := range s.Entries {
		year := (entry.Month-1)/constants.MonthsPerYear + 1
		if len(rows) < year {
			rows = append(rows, YearRow{Year: year})
		}
		row := &rows[year-1]
		row.Principal += entry.Principal
		row.Interest += entry.Interest
		row.TotalPaid += entry.Principal + entry.Interest
		row.Balance = entry.Balance
	}
	return rows
}

// BalanceSeries extracts the monthly outstanding balance, suitable for
// charting payoff curves.
func BalanceSeries(s *schedule.Schedule) []float64 {
	series := make([]float64, len(s.Entries))
	for i, entry := range s.Entries {
		series[i] = entry.Balance
	}
	return series
}

// FindSummary finds a summary by loan name in the results slice.
// Returns a pointer to the summary if found, nil otherwise.
func FindSummary(summaries []Summary, name string) *Summary {
	for i := range summaries {
		if summaries[i].Name == name {
			return &summaries[i]
		}
	}
	return nil
}
