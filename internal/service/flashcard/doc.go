// Package flashcard runs review sessions over a fixed deck of vocabulary
// items. Each answer is scheduled through the srs package, the updated item
// replaces the original in the session's list, and the session moves to the
// next card. When the deck is exhausted the session reports its statistics
// and the updated items through an optional event emitter.
package flashcard
