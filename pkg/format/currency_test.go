package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1234.56, "$1,234.56"},
		{-1234.56, "-$1,234.56"},
		{0, "$0.00"},
		{999.9, "$999.90"},
		{2500000, "$2,500,000.00"},
	}

	for _, tt := range tests {
		if result := Currency(tt.input); result != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1234.56, "1234.56"},
		{-1234.56, "-1234.56"},
		{0, "0.00"},
		{2500000, "2500000.00"},
	}

	for _, tt := range tests {
		if result := NumericCurrency(tt.input); result != tt.expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestYearsMonths(t *testing.T) {
	tests := []struct {
		months   int
		expected string
	}{
		{0, "0y 0m"},
		{5, "0y 5m"},
		{12, "1y 0m"},
		{29, "2y 5m"},
		{-3, "0y 0m"},
	}

	for _, tt := range tests {
		if result := YearsMonths(tt.months); result != tt.expected {
			t.Errorf("YearsMonths(%d) = %q, expected %q", tt.months, result, tt.expected)
		}
	}
}
