package hierarchy

// Size-fallback thresholds in page pixels at the rendering resolution.
// Regions taller than fallbackH1Height become H1, taller than
// fallbackH2Height become H2, everything else H3.
const (
	fallbackH1Height = 18.0
	fallbackH2Height = 14.0
)

// maxHeadingTextLen is the longest text still considered a heading;
// anything longer is body text regardless of its label.
const maxHeadingTextLen = 200

// Config holds the tunable parameters of the hierarchy engine.
type Config struct {
	// TitleHeightThreshold is the minimum region height (pixels) for a
	// paragraph_title to score as a document title candidate, and for a
	// first-page region to be excluded from the heading candidates as
	// the already-selected title.
	// Default: 20
	TitleHeightThreshold float64

	// Patterns is the lexical classification rule table.
	// Default: DefaultPatterns()
	Patterns PatternTable
}

// DefaultConfig returns the engine configuration used when no overrides
// are supplied.
func DefaultConfig() Config {
	return Config{
		TitleHeightThreshold: 20,
		Patterns:             DefaultPatterns(),
	}
}
