package mocks

import (
	"sync"
	"time"

	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/phrazzld/scry-vocab/internal/domain/srs"
)

// MockSRSService implements srs.Service for testing.
// Methods without a custom function delegate to the real default service,
// so tests only override the behavior they care about.
type MockSRSService struct {
	// Custom behavior functions
	CalculateNextReviewFn func(item domain.VocabularyItem, result domain.StudyResult, now time.Time) (srs.Schedule, error)
	ApplyReviewFn         func(item domain.VocabularyItem, result domain.StudyResult, now time.Time) (domain.VocabularyItem, srs.Schedule, error)
	PostponeReviewFn      func(item domain.VocabularyItem, days int, now time.Time) (domain.VocabularyItem, error)

	// Call tracking for verification
	ApplyReviewCalls struct {
		mu      sync.Mutex
		Count   int
		Items   []domain.VocabularyItem
		Results []domain.StudyResult
		Times   []time.Time
	}

	once     sync.Once
	fallback srs.Service
}

var _ srs.Service = (*MockSRSService)(nil)

// NewMockSRSService creates a mock that behaves like srs.NewDefaultService until overridden.
func NewMockSRSService() *MockSRSService {
	return &MockSRSService{}
}

func (m *MockSRSService) real() srs.Service {
	m.once.Do(func() {
		m.fallback = srs.NewDefaultService()
	})
	return m.fallback
}

// CalculateNextReview implements the srs.Service interface
func (m *MockSRSService) CalculateNextReview(
	item domain.VocabularyItem,
	result domain.StudyResult,
	now time.Time,
) (srs.Schedule, error) {
	if m.CalculateNextReviewFn != nil {
		return m.CalculateNextReviewFn(item, result, now)
	}
	return m.real().CalculateNextReview(item, result, now)
}

// ApplyReview implements the srs.Service interface
func (m *MockSRSService) ApplyReview(
	item domain.VocabularyItem,
	result domain.StudyResult,
	now time.Time,
) (domain.VocabularyItem, srs.Schedule, error) {
	m.ApplyReviewCalls.mu.Lock()
	m.ApplyReviewCalls.Count++
	m.ApplyReviewCalls.Items = append(m.ApplyReviewCalls.Items, item)
	m.ApplyReviewCalls.Results = append(m.ApplyReviewCalls.Results, result)
	m.ApplyReviewCalls.Times = append(m.ApplyReviewCalls.Times, now)
	m.ApplyReviewCalls.mu.Unlock()

	if m.ApplyReviewFn != nil {
		return m.ApplyReviewFn(item, result, now)
	}
	return m.real().ApplyReview(item, result, now)
}

// PostponeReview implements the srs.Service interface
func (m *MockSRSService) PostponeReview(
	item domain.VocabularyItem,
	days int,
	now time.Time,
) (domain.VocabularyItem, error) {
	if m.PostponeReviewFn != nil {
		return m.PostponeReviewFn(item, days, now)
	}
	return m.real().PostponeReview(item, days, now)
}

// ApplyReviewCount returns the number of ApplyReview calls so far.
func (m *MockSRSService) ApplyReviewCount() int {
	m.ApplyReviewCalls.mu.Lock()
	defer m.ApplyReviewCalls.mu.Unlock()
	return m.ApplyReviewCalls.Count
}

// Reset clears the call tracking state
func (m *MockSRSService) Reset() {
	m.ApplyReviewCalls.mu.Lock()
	m.ApplyReviewCalls.Count = 0
	m.ApplyReviewCalls.Items = nil
	m.ApplyReviewCalls.Results = nil
	m.ApplyReviewCalls.Times = nil
	m.ApplyReviewCalls.mu.Unlock()
}
