package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/scry-vocab/internal/domain"
)

// Common errors
var (
	// ErrInvalidResult is domain.ErrInvalidStudyResult, re-exported for callers of Service.
	ErrInvalidResult = domain.ErrInvalidStudyResult
	ErrInvalidDays   = errors.New("postpone days must be at least 1")
)

// Service defines the interface for scheduling operations
type Service interface {
	// CalculateNextReview computes the schedule for an item after a review
	CalculateNextReview(
		item domain.VocabularyItem,
		result domain.StudyResult,
		now time.Time,
	) (Schedule, error)

	// ApplyReview returns a new item with the schedule applied and its review count incremented
	ApplyReview(
		item domain.VocabularyItem,
		result domain.StudyResult,
		now time.Time,
	) (domain.VocabularyItem, Schedule, error)

	// PostponeReview pushes the next review time forward by a specified number of days
	PostponeReview(
		item domain.VocabularyItem,
		days int,
		now time.Time,
	) (domain.VocabularyItem, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface
func (s *defaultService) CalculateNextReview(
	item domain.VocabularyItem,
	result domain.StudyResult,
	now time.Time,
) (Schedule, error) {
	if !result.IsValid() {
		return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidResult, result)
	}

	return calculateNextReview(item, result, now, s.params), nil
}

// ApplyReview implements the Service interface
func (s *defaultService) ApplyReview(
	item domain.VocabularyItem,
	result domain.StudyResult,
	now time.Time,
) (domain.VocabularyItem, Schedule, error) {
	schedule, err := s.CalculateNextReview(item, result, now)
	if err != nil {
		return domain.VocabularyItem{}, Schedule{}, err
	}

	return applySchedule(item, schedule), schedule, nil
}

// PostponeReview implements the Service interface.
// Overdue and never-scheduled items are postponed relative to now.
func (s *defaultService) PostponeReview(
	item domain.VocabularyItem,
	days int,
	now time.Time,
) (domain.VocabularyItem, error) {
	if days < 1 {
		return domain.VocabularyItem{}, ErrInvalidDays
	}

	from := now
	if item.NextReview != nil && item.NextReview.After(now) {
		from = *item.NextReview
	}

	postponed := item.Clone()
	next := from.AddDate(0, 0, days)
	postponed.NextReview = &next

	return postponed, nil
}
