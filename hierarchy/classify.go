package hierarchy

// classifyLevel determines the level of a single candidate. Lexical
// patterns take priority; glyph height is the fallback when no pattern
// matches, which marks the candidate as eligible for height-cluster
// refinement if it lands at the H3 default.
func classifyLevel(table PatternTable, text string, height float64) Level {
	if level := table.Classify(text); level != LevelUnassigned {
		return level
	}
	return fallbackLevel(height)
}

// fallbackLevel assigns a level purely from glyph height.
func fallbackLevel(height float64) Level {
	switch {
	case height > fallbackH1Height:
		return Level1
	case height > fallbackH2Height:
		return Level2
	default:
		return Level3
	}
}
