package hierarchy

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelUnassigned, "unassigned"},
		{Level1, "H1"},
		{Level2, "H2"},
		{Level3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelOrdinal(t *testing.T) {
	tests := []struct {
		level    Level
		expected int
	}{
		{Level1, 1},
		{Level2, 2},
		{Level3, 3},
		{LevelUnassigned, 3},
	}

	for _, tt := range tests {
		if got := tt.level.Ordinal(); got != tt.expected {
			t.Errorf("Level(%d).Ordinal() = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

func TestLevelFromOrdinal(t *testing.T) {
	tests := []struct {
		ordinal  int
		expected Level
	}{
		{1, Level1},
		{2, Level2},
		{3, Level3},
		{4, Level3}, // out of range clamps to deepest
		{0, Level3},
	}

	for _, tt := range tests {
		if got := levelFromOrdinal(tt.ordinal); got != tt.expected {
			t.Errorf("levelFromOrdinal(%d) = %v, want %v", tt.ordinal, got, tt.expected)
		}
	}
}

func TestOrdinalForName(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"H1", 1},
		{"H2", 2},
		{"H3", 3},
		{"H7", 3},
		{"", 3},
		{"h1", 3}, // wire form is uppercase
	}

	for _, tt := range tests {
		if got := ordinalForName(tt.name); got != tt.expected {
			t.Errorf("ordinalForName(%q) = %d, want %d", tt.name, got, tt.expected)
		}
	}
}
