package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"swms/internal/domain"
	internalRedis "swms/internal/redis"
	"swms/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK CLASSIFICATION REPOSITORY
// ──────────────────────────────────────────────

// MockClassificationRepository is a mock implementation of ClassificationRepository.
type MockClassificationRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Classification

	// Counters for verification
	CreateCallCount    int32
	GetByUserCallCount int32

	// Error injection
	CreateError error
}

// NewMockClassificationRepository creates a new mock classification repository.
func NewMockClassificationRepository() *MockClassificationRepository {
	return &MockClassificationRepository{
		records: make(map[string]*domain.Classification),
	}
}

// AddRecord adds a record to the mock repository.
func (m *MockClassificationRepository) AddRecord(c *domain.Classification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[c.ID] = c
}

func (m *MockClassificationRepository) Create(ctx context.Context, c *domain.Classification) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[c.ID] = c
	return nil
}

func (m *MockClassificationRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Classification, error) {
	atomic.AddInt32(&m.GetByUserCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Classification
	for _, c := range m.records {
		if c.UserID == userID {
			copy := *c
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockClassificationRepository) DeleteByID(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok || record.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *MockClassificationRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, record := range m.records {
		if record.UserID == userID {
			delete(m.records, id)
			deleted++
		}
	}
	return deleted, nil
}

// CountRecords returns the number of stored records, for test assertions.
func (m *MockClassificationRepository) CountRecords() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// ──────────────────────────────────────────────
// MOCK QUIZ RESULT REPOSITORY
// ──────────────────────────────────────────────

// MockQuizResultRepository is a mock implementation of QuizResultRepository.
type MockQuizResultRepository struct {
	mu      sync.RWMutex
	results map[string]*domain.QuizResult

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockQuizResultRepository creates a new mock quiz result repository.
func NewMockQuizResultRepository() *MockQuizResultRepository {
	return &MockQuizResultRepository{
		results: make(map[string]*domain.QuizResult),
	}
}

func (m *MockQuizResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.ID] = result
	return nil
}

func (m *MockQuizResultRepository) GetByID(ctx context.Context, id string) (*domain.QuizResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.results[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *result
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK HISTORY CACHE
// ──────────────────────────────────────────────

// MockHistoryCache is an in-memory implementation of the classification
// history cache.
type MockHistoryCache struct {
	mu      sync.RWMutex
	entries map[string][]internalRedis.CachedClassification

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockHistoryCache creates a new mock history cache.
func NewMockHistoryCache() *MockHistoryCache {
	return &MockHistoryCache{
		entries: make(map[string][]internalRedis.CachedClassification),
	}
}

func (m *MockHistoryCache) GetHistory(ctx context.Context, userID string) ([]internalRedis.CachedClassification, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[userID], nil
}

func (m *MockHistoryCache) SetHistory(ctx context.Context, userID string, history []internalRedis.CachedClassification) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = history
	return nil
}

func (m *MockHistoryCache) InvalidateHistory(ctx context.Context, userID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}
