package storage

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azaliaz/feedbackly/internal/domain/models"
	"github.com/azaliaz/feedbackly/internal/logger"
	storerrros "github.com/azaliaz/feedbackly/internal/storage/errors"
)

// MemStorage is the fallback store used when the database is unreachable.
// The order slice keeps insertion order for paginated listing.
type MemStorage struct {
	mu           sync.RWMutex
	feedbackStor map[string]models.Feedback
	order        []string
}

func New() *MemStorage {
	return &MemStorage{
		feedbackStor: make(map[string]models.Feedback),
	}
}

func (ms *MemStorage) SaveFeedback(feedback models.CreateFeedback) (models.Feedback, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	fb := models.Feedback{
		ID:        uuid.New().String(),
		Text:      feedback.Text,
		Rating:    feedback.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ms.feedbackStor[fb.ID] = fb
	ms.order = append(ms.order, fb.ID)
	return fb, nil
}

func (ms *MemStorage) GetFeedbacks(limit, offset int) ([]models.Feedback, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	feedbacks := make([]models.Feedback, 0, limit)
	if offset < 0 || offset >= len(ms.order) {
		return feedbacks, nil
	}
	for _, id := range ms.order[offset:] {
		if len(feedbacks) == limit {
			break
		}
		feedbacks = append(feedbacks, ms.feedbackStor[id])
	}
	return feedbacks, nil
}

func (ms *MemStorage) GetFeedback(feedbackID string) (models.Feedback, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	fb, exists := ms.feedbackStor[feedbackID]
	if !exists {
		return models.Feedback{}, storerrros.ErrFeedbackNotFound
	}
	return fb, nil
}

func (ms *MemStorage) UpdateFeedback(feedbackID string, upd models.UpdateFeedback) (models.Feedback, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	fb, exists := ms.feedbackStor[feedbackID]
	if !exists {
		return models.Feedback{}, storerrros.ErrFeedbackNotFound
	}
	if upd.Text != nil {
		fb.Text = *upd.Text
	}
	if upd.Rating != nil {
		fb.Rating = *upd.Rating
	}
	fb.UpdatedAt = time.Now()
	ms.feedbackStor[feedbackID] = fb
	return fb, nil
}

func (ms *MemStorage) DeleteFeedback(feedbackID string) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.feedbackStor[feedbackID]; !exists {
		log.Warn().Str("feedbackID", feedbackID).Msg("feedback not found")
		return storerrros.ErrFeedbackNotFound
	}

	delete(ms.feedbackStor, feedbackID)
	ms.order = slices.DeleteFunc(ms.order, func(id string) bool { return id == feedbackID })
	log.Info().Str("feedbackID", feedbackID).Msg("feedback deleted successfully")

	return nil
}
