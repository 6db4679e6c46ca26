package srs

import (
	"math"
	"time"

	"github.com/phrazzld/scry-vocab/internal/domain"
)

// Schedule is the outcome of scheduling one review.
type Schedule struct {
	NextReviewDate time.Time `json:"next_review_date"`
	NewDifficulty  float64   `json:"new_difficulty"`
	IntervalDays   int       `json:"interval_days"`
}

// calculateInterval returns the number of days until the next review.
//
// Algorithm behavior:
//   - "correct" on a first review: params.FirstReviewInterval (1 day)
//   - "correct" on a second review: params.SecondReviewInterval (6 days)
//   - "correct" afterwards: round(base * (2.5 + 0.13 * (5 - difficulty)^2)); the base is
//     a constant, so later intervals stay within a few days of each other
//   - "partial": max(1, round(base * 0.5))
//   - "incorrect": 1 day
func calculateInterval(item domain.VocabularyItem, result domain.StudyResult, params *Params) int {
	switch result {
	case domain.StudyResultCorrect:
		switch item.ReviewCount {
		case 0:
			return params.FirstReviewInterval
		case 1:
			return params.SecondReviewInterval
		default:
			spread := params.EasePivot - item.Difficulty
			ease := params.EaseBase + params.EaseCoefficient*spread*spread
			return int(math.Round(params.IntervalBase * ease))
		}
	case domain.StudyResultPartial:
		return max(1, int(math.Round(params.IntervalBase*params.PartialIntervalMultiplier)))
	default:
		return 1
	}
}

// calculateDifficulty returns the item's difficulty after a review.
//
// Correct answers make the item easier, incorrect answers harder, and partial
// answers leave it as it was. The result is always within
// [params.MinDifficulty, params.MaxDifficulty].
func calculateDifficulty(current float64, result domain.StudyResult, params *Params) float64 {
	newDifficulty := current

	switch result {
	case domain.StudyResultCorrect:
		newDifficulty = math.Max(params.MinDifficulty, current-params.CorrectDifficultyStep)
	case domain.StudyResultIncorrect:
		newDifficulty = math.Min(params.MaxDifficulty, current+params.IncorrectDifficultyStep)
	}

	// Only out-of-range inputs (e.g. a partial answer on a 0.0 item) are moved here.
	return math.Min(params.MaxDifficulty, math.Max(params.MinDifficulty, newDifficulty))
}

// calculateNextReview computes the schedule for item after a review with the given result.
// It is pure: the only side input is now.
func calculateNextReview(
	item domain.VocabularyItem,
	result domain.StudyResult,
	now time.Time,
	params *Params,
) Schedule {
	interval := calculateInterval(item, result, params)

	return Schedule{
		NextReviewDate: now.AddDate(0, 0, interval),
		NewDifficulty:  calculateDifficulty(item.Difficulty, result, params),
		IntervalDays:   interval,
	}
}

// applySchedule returns a new item carrying the schedule. The review count is
// incremented exactly once per call.
func applySchedule(item domain.VocabularyItem, schedule Schedule) domain.VocabularyItem {
	updated := item.Clone()
	next := schedule.NextReviewDate

	updated.Difficulty = schedule.NewDifficulty
	updated.ReviewCount++
	updated.NextReview = &next

	return updated
}
