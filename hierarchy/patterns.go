package hierarchy

import "regexp"

// PatternTable holds the ordered regex families used for lexical level
// classification. Families are evaluated H1 first, then H2, then H3, and
// within a family in slice order; the first match wins. All patterns are
// anchored at the start of the heading text and case-insensitive.
//
// A PatternTable is immutable after construction and safe for concurrent
// use.
type PatternTable struct {
	h1 []*regexp.Regexp
	h2 []*regexp.Regexp
	h3 []*regexp.Regexp
}

// DefaultPatterns returns the built-in rule table covering common
// numbering and lettering conventions.
func DefaultPatterns() PatternTable {
	return PatternTable{
		h1: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\d+\.\s+`),       // "1. Introduction"
			regexp.MustCompile(`(?i)^[IVX]+\.\s+`),    // "I. Overview"
			regexp.MustCompile(`(?i)^Chapter\s+\d+`),  // "Chapter 1"
			regexp.MustCompile(`(?i)^Section\s+\d+`),  // "Section 1"
			regexp.MustCompile(`(?i)^Part\s+[IVX]+`),  // "Part I"
			regexp.MustCompile(`(?i)^\d+\s+[A-Z]`),    // "1 INTRODUCTION"
		},
		h2: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\d+\.\d+\s+`),    // "1.1 Overview"
			regexp.MustCompile(`(?i)^[A-Z]\.\s+`),     // "A. Methods"
			regexp.MustCompile(`(?i)^\d+\.\d+\.?\s+`), // "2.1. Results"
			regexp.MustCompile(`(?i)^\([A-Z]\)\s+`),   // "(A) Analysis"
		},
		h3: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\s+`),   // "1.1.1 Details"
			regexp.MustCompile(`(?i)^[a-z]\)\s+`),         // "a) Methods"
			regexp.MustCompile(`(?i)^\([a-z]\)\s+`),       // "(a) Results"
			regexp.MustCompile(`(?i)^[ivx]+\.\s+`),        // "i. Summary"
			regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\.\s+`), // "1.1.1. Item"
		},
	}
}

// CompilePatterns builds a PatternTable from raw pattern strings, one
// slice per level family. Patterns are compiled as written; callers that
// want the default anchoring and case behavior should include the ^
// anchor and (?i) flag themselves. Compilation failure of any pattern
// returns the error from regexp.Compile.
func CompilePatterns(h1, h2, h3 []string) (PatternTable, error) {
	compile := func(patterns []string) ([]*regexp.Regexp, error) {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, re)
		}
		return compiled, nil
	}

	var table PatternTable
	var err error
	if table.h1, err = compile(h1); err != nil {
		return PatternTable{}, err
	}
	if table.h2, err = compile(h2); err != nil {
		return PatternTable{}, err
	}
	if table.h3, err = compile(h3); err != nil {
		return PatternTable{}, err
	}
	return table, nil
}

// Classify matches text against the rule table and returns the level of
// the first matching family, or LevelUnassigned when nothing matches.
func (t PatternTable) Classify(text string) Level {
	families := []struct {
		level    Level
		patterns []*regexp.Regexp
	}{
		{Level1, t.h1},
		{Level2, t.h2},
		{Level3, t.h3},
	}

	for _, family := range families {
		for _, re := range family.patterns {
			if re.MatchString(text) {
				return family.level
			}
		}
	}
	return LevelUnassigned
}
