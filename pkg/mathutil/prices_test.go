package mathutil

import "testing"

func TestMinInt(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"first smaller", 3, 7, 3},
		{"second smaller", 7, 3, 3},
		{"equal", 5, 5, 5},
		{"negative values", -4, -9, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinInt(tt.a, tt.b); got != tt.expected {
				t.Errorf("MinInt(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMaxInt(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"first larger", 7, 3, 7},
		{"second larger", 3, 7, 7},
		{"equal", 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxInt(tt.a, tt.b); got != tt.expected {
				t.Errorf("MaxInt(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		lo, hi   float64
		expected float64
	}{
		{"below range", 5.0, 10.0, 40.0, 10.0},
		{"above range", 55.5, 10.0, 40.0, 40.0},
		{"inside range", 22.5, 10.0, 40.0, 22.5},
		{"at lower bound", 10.0, 10.0, 40.0, 10.0},
		{"at upper bound", 40.0, 10.0, 40.0, 40.0},
		{"degenerate range", 17.0, 20.0, 20.0, 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFloat(tt.val, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("ClampFloat(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected int
	}{
		{"rounds down", 22.4, 22},
		{"rounds up", 22.6, 23},
		{"half rounds away from zero", 22.5, 23},
		{"negative half rounds away from zero", -22.5, -23},
		{"already integer", 30.0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundToInt(tt.val); got != tt.expected {
				t.Errorf("RoundToInt(%v) = %d, want %d", tt.val, got, tt.expected)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"fractional midpoint", 25, 20, 22.5},
		{"integer midpoint", 30, 20, 25.0},
		{"equal prices", 15, 15, 15.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Midpoint(tt.a, tt.b); got != tt.expected {
				t.Errorf("Midpoint(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		total    int
		expected float64
	}{
		{"partial", 4, 5, 0.8},
		{"full", 5, 5, 1.0},
		{"zero total", 4, 0, 0},
		{"zero value", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.value, tt.total); got != tt.expected {
				t.Errorf("Ratio(%d, %d) = %v, want %v", tt.value, tt.total, got, tt.expected)
			}
		})
	}
}
