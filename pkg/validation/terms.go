package validation

import (
	"fmt"

	"github.com/iwvelando/loan-compare/pkg/constants"
)

// ValidateLoanTerms checks a loan's parameters against the supported bounds
// and returns warnings for anything out of range. The schedule engine
// imposes no bounds itself, so range enforcement happens here on the caller
// side.
func ValidateLoanTerms(name string, principal, annualRate float64, tenureYears int) []string {
	var warnings []string

	if principal <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has non-positive principal %.2f", name, principal))
	}
	if annualRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has negative interest rate %.2f%%", name, annualRate))
	}
	if annualRate > constants.MaxInterestRate {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' interest rate %.2f%% exceeds supported maximum of %.0f%%",
			name, annualRate, constants.MaxInterestRate))
	}
	if tenureYears < constants.MinTenureYears {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' tenure %d years is below the supported minimum of %d",
			name, tenureYears, constants.MinTenureYears))
	}
	if tenureYears > constants.MaxTenureYears {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' tenure %d years exceeds the supported maximum of %d",
			name, tenureYears, constants.MaxTenureYears))
	}

	return warnings
}

// ValidatePrepayment checks a prepayment policy's parameters and returns
// warnings for anything out of range.
func ValidatePrepayment(yearlyAmount float64, startYear int) []string {
	var warnings []string

	if yearlyAmount < 0 {
		warnings = append(warnings, fmt.Sprintf("Prepayment has negative yearly amount %.2f", yearlyAmount))
	}
	if yearlyAmount > 0 && startYear < 1 {
		warnings = append(warnings, fmt.Sprintf("Prepayment start year %d is below 1", startYear))
	}

	return warnings
}
