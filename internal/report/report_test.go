package report

import (
	"math"
	"testing"

	"github.com/iwvelando/loan-compare/internal/schedule"
	"go.uber.org/zap"
)

func generate(t *testing.T, terms schedule.Terms, prepay schedule.Prepayment) *schedule.Schedule {
	t.Helper()
	s, err := schedule.NewGenerator(zap.NewNop()).Generate(terms, prepay)
	if err != nil {
		t.Fatalf("Generate(%+v) returned error: %v", terms, err)
	}
	return s
}

func TestSummarize(t *testing.T) {
	terms := schedule.Terms{Principal: 2500000, AnnualRate: 8.5, TenureYears: 20}
	s := generate(t, terms, schedule.Prepayment{})

	summary := Summarize("Bank A", terms, s)

	if summary.Name != "Bank A" {
		t.Errorf("Name = %q, expected Bank A", summary.Name)
	}
	if summary.Months != 240 {
		t.Errorf("Months = %d, expected 240", summary.Months)
	}
	if summary.EMI < 21690 || summary.EMI > 21700 {
		t.Errorf("EMI = %.2f, expected range [21690, 21700]", summary.EMI)
	}
	expectedPayment := summary.EMI * 240
	if math.Abs(summary.TotalPayment-expectedPayment) > 0.01 {
		t.Errorf("TotalPayment = %.2f, expected %.2f", summary.TotalPayment, expectedPayment)
	}
	expectedInterest := expectedPayment - terms.Principal
	if math.Abs(summary.TotalInterest-expectedInterest) > 1.0 {
		t.Errorf("TotalInterest = %.2f, expected around %.2f", summary.TotalInterest, expectedInterest)
	}
	if summary.InterestShare <= 0 {
		t.Errorf("InterestShare = %.2f, expected positive", summary.InterestShare)
	}
	if summary.Truncated {
		t.Error("summary unexpectedly marked truncated")
	}
}

func TestSummarizeTruncated(t *testing.T) {
	// Built by hand: the generator only truncates on pathological input, but
	// downstream layers must carry the flag and the outstanding balance.
	s := &schedule.Schedule{
		EMI: 1000,
		Entries: []schedule.Entry{
			{Month: 1, EMI: 1000, Principal: 200, Interest: 800, Balance: 99800},
		},
		Truncated:    true,
		FinalBalance: 99800,
	}

	summary := Summarize("Stalled", schedule.Terms{Principal: 100000, AnnualRate: 9.6, TenureYears: 1}, s)

	if !summary.Truncated {
		t.Error("summary not marked truncated")
	}
	if summary.FinalBalance != 99800 {
		t.Errorf("FinalBalance = %.2f, expected 99800", summary.FinalBalance)
	}
}

func TestComparePrepayment(t *testing.T) {
	terms := schedule.Terms{Principal: 2500000, AnnualRate: 8.5, TenureYears: 20}
	without := generate(t, terms, schedule.Prepayment{})
	with := generate(t, terms, schedule.Prepayment{YearlyAmount: 100000, StartYear: 1})

	impact := ComparePrepayment(without, with, 100000)

	if impact.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", impact.InterestSaved)
	}
	if impact.MonthsSaved <= 0 {
		t.Errorf("MonthsSaved = %d, expected positive", impact.MonthsSaved)
	}
	expectedNet := impact.InterestSaved - 100000*float64(with.Months()/12)
	if math.Abs(impact.NetBenefit-expectedNet) > 0.01 {
		t.Errorf("NetBenefit = %.2f, expected %.2f", impact.NetBenefit, expectedNet)
	}
}

func TestComparePrepaymentNoPolicy(t *testing.T) {
	// Identical schedules yield a zero impact.
	terms := schedule.Terms{Principal: 800000, AnnualRate: 7.0, TenureYears: 15}
	a := generate(t, terms, schedule.Prepayment{})
	b := generate(t, terms, schedule.Prepayment{})

	impact := ComparePrepayment(a, b, 0)

	if impact.InterestSaved != 0 || impact.MonthsSaved != 0 || impact.NetBenefit != 0 {
		t.Errorf("impact = %+v, expected all zero", impact)
	}
}

func TestYearlyRollup(t *testing.T) {
	terms := schedule.Terms{Principal: 1200000, AnnualRate: 9.0, TenureYears: 10}
	s := generate(t, terms, schedule.Prepayment{})

	rows := YearlyRollup(s)

	if len(rows) != 10 {
		t.Fatalf("rollup rows = %d, expected 10", len(rows))
	}

	var totalPrincipal, totalInterest float64
	for i, row := range rows {
		if row.Year != i+1 {
			t.Errorf("row %d: year = %d, expected %d", i, row.Year, i+1)
		}
		if math.Abs(row.TotalPaid-(row.Principal+row.Interest)) > 0.01 {
			t.Errorf("year %d: total paid %.2f != principal %.2f + interest %.2f",
				row.Year, row.TotalPaid, row.Principal, row.Interest)
		}
		totalPrincipal += row.Principal
		totalInterest += row.Interest
	}

	if math.Abs(totalPrincipal-terms.Principal) > 1.0 {
		t.Errorf("rollup principal sum = %.2f, expected %.2f", totalPrincipal, terms.Principal)
	}
	if math.Abs(totalInterest-s.TotalInterest()) > 0.01 {
		t.Errorf("rollup interest sum = %.2f, expected %.2f", totalInterest, s.TotalInterest())
	}

	// Balance at each block end must match the underlying entry.
	if rows[len(rows)-1].Balance > 1.0 {
		t.Errorf("final year balance = %.2f, expected approximately zero", rows[len(rows)-1].Balance)
	}
}

func TestYearlyRollupPartialYear(t *testing.T) {
	// A prepaying loan rarely ends on a year boundary; the trailing partial
	// year gets its own row.
	terms := schedule.Terms{Principal: 2500000, AnnualRate: 8.5, TenureYears: 20}
	s := generate(t, terms, schedule.Prepayment{YearlyAmount: 100000, StartYear: 1})

	rows := YearlyRollup(s)
	expectedRows := (s.Months() + 11) / 12
	if len(rows) != expectedRows {
		t.Errorf("rollup rows = %d, expected %d for %d months", len(rows), expectedRows, s.Months())
	}
}

func TestBalanceSeries(t *testing.T) {
	terms := schedule.Terms{Principal: 500000, AnnualRate: 8.0, TenureYears: 5}
	s := generate(t, terms, schedule.Prepayment{})

	series := BalanceSeries(s)
	if len(series) != s.Months() {
		t.Fatalf("series length = %d, expected %d", len(series), s.Months())
	}
	for i, balance := range series {
		if balance != s.Entries[i].Balance {
			t.Fatalf("series[%d] = %.2f, expected %.2f", i, balance, s.Entries[i].Balance)
		}
	}
}

func TestFindSummary(t *testing.T) {
	summaries := []Summary{
		{Name: "Bank A"},
		{Name: "Bank B"},
	}

	if found := FindSummary(summaries, "Bank B"); found == nil || found.Name != "Bank B" {
		t.Errorf("FindSummary(Bank B) = %v, expected match", found)
	}
	if found := FindSummary(summaries, "Bank C"); found != nil {
		t.Errorf("FindSummary(Bank C) = %v, expected nil", found)
	}
}
