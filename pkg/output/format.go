// Package output provides utilities for formatting and displaying loan
// comparison results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-compare/internal/report"
	"github.com/iwvelando/loan-compare/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(comparison *report.Comparison) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Loan Comparison ---\n")
	fmt.Printf("Loan            | Principal       | Rate    | Tenure | Monthly EMI   | Total Interest  | Total Payment\n")
	fmt.Printf("____            | _________       | ____    | ______ | ___________   | ______________  | _____________\n")
	for _, loan := range comparison.Loans {
		s := loan.Summary
		_, _ = p.Printf("%-15s | %15s | %6.2f%% | %3dy   | %13s | %15s | %s\n",
			s.Name, format.Currency(s.Principal), s.AnnualRate, s.TenureYears,
			format.Currency(s.EMI), format.Currency(s.TotalInterest), format.Currency(s.TotalPayment))
	}

	for _, loan := range comparison.Loans {
		if loan.Summary.Truncated {
			fmt.Printf("\nWARNING: schedule for %s did not amortize; outstanding balance %s\n",
				loan.Summary.Name, format.Currency(loan.Summary.FinalBalance))
		}
	}

	if comparison.Prepayment.Active() {
		fmt.Printf("\n--- Prepayment Benefits (%s yearly from year %d) ---\n",
			format.Currency(comparison.Prepayment.YearlyAmount), comparison.Prepayment.StartYear)
		fmt.Printf("Loan            | Interest Saved  | Time Saved | Net Benefit\n")
		fmt.Printf("____            | ______________  | __________ | ___________\n")
		for _, loan := range comparison.Loans {
			if loan.Prepay == nil {
				continue
			}
			impact := loan.Prepay.Impact
			_, _ = p.Printf("%-15s | %15s | %10s | %s\n",
				loan.Summary.Name, format.Currency(impact.InterestSaved),
				format.YearsMonths(impact.MonthsSaved), format.Currency(impact.NetBenefit))
		}
	}

	for _, loan := range comparison.Loans {
		fmt.Printf("\n--- Year-wise Summary for %s ---\n", loan.Summary.Name)
		fmt.Printf("Year | Total Paid      | Principal       | Interest        | Balance\n")
		fmt.Printf("____ | __________      | _________       | ________        | _______\n")
		for _, row := range loan.Yearly {
			_, _ = p.Printf("%4d | %15s | %15s | %15s | %s\n",
				row.Year, format.Currency(row.TotalPaid), format.Currency(row.Principal),
				format.Currency(row.Interest), format.Currency(row.Balance))
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(comparison *report.Comparison) {
	fmt.Print(CsvString(comparison))
}

// CsvString renders the monthly schedules in comma-separated value format
// with one column group per loan. Rows extend to the longest schedule;
// loans that pay off earlier leave their cells empty.
func CsvString(comparison *report.Comparison) string {
	var builder strings.Builder

	builder.WriteString(`"month"`)
	maxMonths := 0
	for _, loan := range comparison.Loans {
		name := loan.Summary.Name
		builder.WriteString(fmt.Sprintf(`,"emi (%s)","principal (%s)","interest (%s)","balance (%s)"`,
			name, name, name, name))
		if loan.Schedule.Months() > maxMonths {
			maxMonths = loan.Schedule.Months()
		}
	}
	builder.WriteString("\n")

	for month := 1; month <= maxMonths; month++ {
		builder.WriteString(fmt.Sprintf(`"%d"`, month))
		for _, loan := range comparison.Loans {
			if month > loan.Schedule.Months() {
				builder.WriteString(`,"","","",""`)
				continue
			}
			entry := loan.Schedule.Entries[month-1]
			builder.WriteString(fmt.Sprintf(`,"%s","%s","%s","%s"`,
				format.NumericCurrency(entry.EMI), format.NumericCurrency(entry.Principal),
				format.NumericCurrency(entry.Interest), format.NumericCurrency(entry.Balance)))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
