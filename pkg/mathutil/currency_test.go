package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{-1.006, -1.01},
		{0.0, 0.0},
		{1234.5678, 1234.57},
	}

	for _, tt := range tests {
		if result := Round(tt.input); result != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true within tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
	if !IsZero(-0.005) {
		t.Error("IsZero(-0.005) = false, expected true within tolerance")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.5, 1.0) {
		t.Error("WithinTolerance(100, 100.5, 1) = false, expected true")
	}
	if WithinTolerance(100.0, 102.0, 1.0) {
		t.Error("WithinTolerance(100, 102, 1) = true, expected false")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if result := CalculatePercentage(25, 100); result != 25.0 {
		t.Errorf("CalculatePercentage(25, 100) = %v, expected 25", result)
	}
	if result := CalculatePercentage(10, 0); result != 0 {
		t.Errorf("CalculatePercentage(10, 0) = %v, expected 0", result)
	}
	if result := CalculatePercentage(10, 0.005); result != 0 {
		t.Errorf("CalculatePercentage(10, 0.005) = %v, expected 0 within tolerance", result)
	}
}
