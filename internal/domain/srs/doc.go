// Package srs implements the spaced repetition scheduling used for vocabulary
// review: a simplified SM-2 adaptation that maps a study result to the next
// review date and an updated difficulty, plus selection of the items due now.
//
// All functions are pure. The current time is always passed in by the caller,
// and items are never modified in place.
package srs
