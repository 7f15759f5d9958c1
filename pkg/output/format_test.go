package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/report"
	"go.uber.org/zap"
)

func buildComparison(t *testing.T) *report.Comparison {
	t.Helper()
	conf := config.Configuration{
		Loans: []config.Loan{
			{Name: "Bank A", Principal: 2500000, InterestRate: 8.5, TenureYears: 20},
			{Name: "Bank B", Principal: 2500000, InterestRate: 9.0, TenureYears: 20},
		},
		Prepayment: config.PrepaymentConfig{YearlyAmount: 100000, StartYear: 1},
	}
	if err := conf.ProcessLoans(zap.NewNop()); err != nil {
		t.Fatalf("ProcessLoans() returned error: %v", err)
	}
	comparison, err := report.GetComparison(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetComparison() returned error: %v", err)
	}
	return comparison
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	comparison := buildComparison(t)

	out := captureStdout(t, func() {
		PrettyFormat(comparison)
	})

	for _, expected := range []string{
		"Loan Comparison",
		"Bank A",
		"Bank B",
		"Prepayment Benefits",
		"Interest Saved",
		"Year-wise Summary for Bank A",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("pretty output missing %q", expected)
		}
	}
}

func TestPrettyFormatNoPrepayment(t *testing.T) {
	conf := config.Configuration{
		Loans: []config.Loan{{Name: "Bank A", Principal: 100000, InterestRate: 8.0, TenureYears: 10}},
	}
	if err := conf.ProcessLoans(zap.NewNop()); err != nil {
		t.Fatalf("ProcessLoans() returned error: %v", err)
	}
	comparison, err := report.GetComparison(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetComparison() returned error: %v", err)
	}

	out := captureStdout(t, func() {
		PrettyFormat(comparison)
	})

	if strings.Contains(out, "Prepayment Benefits") {
		t.Error("prepayment block rendered without a policy")
	}
}

func TestPrettyFormatTruncatedWarning(t *testing.T) {
	// A schedule that never amortized must surface as an explicit warning,
	// not as a silently short table.
	comparison := &report.Comparison{
		Loans: []report.LoanResult{{
			Summary: report.Summary{Name: "Stalled", Truncated: true, FinalBalance: 12345.67},
		}},
	}

	out := captureStdout(t, func() {
		PrettyFormat(comparison)
	})

	if !strings.Contains(out, "WARNING") {
		t.Errorf("truncation warning missing from output:\n%s", out)
	}
	if !strings.Contains(out, "Stalled") || !strings.Contains(out, "12,345.67") {
		t.Errorf("warning missing loan name or outstanding balance:\n%s", out)
	}
}

func TestCsvString(t *testing.T) {
	comparison := buildComparison(t)

	csv := CsvString(comparison)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	header := lines[0]
	for _, expected := range []string{`"month"`, `"emi (Bank A)"`, `"balance (Bank B)"`} {
		if !strings.Contains(header, expected) {
			t.Errorf("CSV header missing %s", expected)
		}
	}

	// One row per month of the longest schedule plus the header.
	maxMonths := comparison.Loans[0].Schedule.Months()
	if m := comparison.Loans[1].Schedule.Months(); m > maxMonths {
		maxMonths = m
	}
	if len(lines) != maxMonths+1 {
		t.Errorf("CSV has %d lines, expected %d", len(lines), maxMonths+1)
	}

	// 1 month column + 4 columns per loan.
	expectedFields := 1 + 4*len(comparison.Loans)
	if fields := strings.Count(lines[1], ",") + 1; fields != expectedFields {
		t.Errorf("CSV row has %d fields, expected %d", fields, expectedFields)
	}
}

func TestCsvFormat(t *testing.T) {
	comparison := buildComparison(t)

	out := captureStdout(t, func() {
		CsvFormat(comparison)
	})

	if out != CsvString(comparison) {
		t.Error("CsvFormat output differs from CsvString")
	}
}
