package hierarchy

// Level represents the hierarchical level of a heading
type Level int

const (
	LevelUnassigned Level = iota
	Level1                // H1 - chapter or top-level section
	Level2                // H2 - major subsection
	Level3                // H3 - minor subsection
)

// String returns the wire form of the level ("H1", "H2", "H3")
func (l Level) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return "unassigned"
	}
}

// Ordinal returns the numeric depth of the level: H1=1, H2=2, H3=3.
// Unassigned levels report the deepest ordinal.
func (l Level) Ordinal() int {
	switch l {
	case Level1:
		return 1
	case Level2:
		return 2
	case Level3:
		return 3
	default:
		return 3
	}
}

// levelFromOrdinal is the inverse of Ordinal for the 1..3 range
func levelFromOrdinal(n int) Level {
	switch n {
	case 1:
		return Level1
	case 2:
		return Level2
	default:
		return Level3
	}
}

// ordinalForName maps a wire-form level name to its depth, defaulting
// unrecognized names to the deepest ordinal.
func ordinalForName(name string) int {
	switch name {
	case "H1":
		return 1
	case "H2":
		return 2
	case "H3":
		return 3
	default:
		return 3
	}
}
