// Package hierarchy implements the heading classification and
// hierarchy-consistency engine for document outline extraction.
//
// The engine turns a flat stream of detected layout elements into a
// structured outline: a document title plus an ordered list of headings
// tagged H1, H2 or H3. Classification proceeds in stages:
//
//  1. Title selection scores first-page elements by label, position and
//     size and picks the single best candidate.
//  2. Candidate filtering narrows the element stream to heading-capable
//     regions, excluding the title region and degenerate text.
//  3. Pattern classification assigns levels from lexical conventions
//     ("1.2 Overview" is an H2); glyph height is the fallback when no
//     pattern matches.
//  4. Height-cluster refinement re-examines still-default candidates
//     using document-wide height buckets so visually consistent heading
//     sizes map to consistent levels.
//  5. Validation repairs level skips so the final outline never deepens
//     by more than one level between consecutive entries.
//
// The engine is a pure, synchronous computation over an in-memory slice:
// no I/O, no shared state across invocations, deterministic output for a
// given input. Construct one [Engine] per configuration and call
// [Engine.ExtractOutline] from any number of goroutines.
package hierarchy
