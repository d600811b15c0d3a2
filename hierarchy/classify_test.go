package hierarchy

import "testing"

func TestFallbackLevel(t *testing.T) {
	tests := []struct {
		height   float64
		expected Level
	}{
		{25, Level1},
		{18.5, Level1},
		{18, Level2}, // boundary: strictly greater than 18 for H1
		{15, Level2},
		{14, Level3}, // boundary: strictly greater than 14 for H2
		{10, Level3},
		{0, Level3},
	}

	for _, tt := range tests {
		if got := fallbackLevel(tt.height); got != tt.expected {
			t.Errorf("fallbackLevel(%v) = %v, want %v", tt.height, got, tt.expected)
		}
	}
}

func TestClassifyLevelPatternPrecedence(t *testing.T) {
	table := DefaultPatterns()

	// "1.1 Overview" is lexically an H2 no matter how tall the region
	// is; the size fallback never runs when a pattern matches.
	for _, height := range []float64{5, 14, 30} {
		if got := classifyLevel(table, "1.1 Overview", height); got != Level2 {
			t.Errorf("classifyLevel(%q, height=%v) = %v, want %v", "1.1 Overview", height, got, Level2)
		}
	}
}

func TestClassifyLevelFallback(t *testing.T) {
	table := DefaultPatterns()

	tests := []struct {
		text     string
		height   float64
		expected Level
	}{
		{"Background", 22, Level1},
		{"Background", 16, Level2},
		{"Background", 12, Level3},
	}

	for _, tt := range tests {
		if got := classifyLevel(table, tt.text, tt.height); got != tt.expected {
			t.Errorf("classifyLevel(%q, height=%v) = %v, want %v", tt.text, tt.height, got, tt.expected)
		}
	}
}
