package hierarchy

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// ValidateOutline repairs level-skip violations in an ordered outline.
//
// Walking the entries in document order, any entry that deepens by more
// than one level relative to its predecessor is clamped to exactly one
// level deeper (an H3 directly after an H1 becomes an H2). The clamp is
// forward-only: levels may jump shallower without restriction. Entries
// whose trimmed text is empty are dropped. Subsequent entries are judged
// against the clamped depth of their predecessor, so a clamp propagates
// down the chain.
//
// The input slice is not modified; the repaired outline is returned as a
// new slice.
func ValidateOutline(outline []model.OutlineEntry) []model.OutlineEntry {
	cleaned := make([]model.OutlineEntry, 0, len(outline))
	prevOrdinal := 0

	for _, entry := range outline {
		if strings.TrimSpace(entry.Text) == "" {
			continue
		}

		ordinal := ordinalForName(entry.Level)
		if prevOrdinal > 0 && ordinal > prevOrdinal+1 {
			ordinal = prevOrdinal + 1
			entry.Level = levelFromOrdinal(ordinal).String()
		}

		prevOrdinal = ordinal
		cleaned = append(cleaned, entry)
	}

	return cleaned
}
