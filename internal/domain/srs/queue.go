package srs

import (
	"sort"
	"time"

	"github.com/phrazzld/scry-vocab/internal/domain"
)

// DueForReview returns the items due at now, hardest first. Items with equal
// difficulty are ordered by review count, least practiced first.
//
// A fresh slice is built on every call and the input is left untouched, so the
// function can be called repeatedly as now advances.
func DueForReview(items []domain.VocabularyItem, now time.Time) []domain.VocabularyItem {
	due := make([]domain.VocabularyItem, 0, len(items))
	for _, item := range items {
		if item.IsDue(now) {
			due = append(due, item.Clone())
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].Difficulty != due[j].Difficulty {
			return due[i].Difficulty > due[j].Difficulty
		}
		return due[i].ReviewCount < due[j].ReviewCount
	})

	return due
}

// CountDue returns how many items are due at now.
func CountDue(items []domain.VocabularyItem, now time.Time) int {
	count := 0
	for _, item := range items {
		if item.IsDue(now) {
			count++
		}
	}
	return count
}
