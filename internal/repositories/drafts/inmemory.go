package drafts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
)

// InMemoryConfig configures the in-memory repository
type InMemoryConfig struct {
	TimeProvider TimeProvider  // Optional, defaults to wall clock
	TTL          time.Duration // Optional, defaults to DefaultTTL
}

type inMemoryRepository struct {
	mu           sync.RWMutex
	drafts       map[string]*draft.Draft // userID -> draft
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewInMemoryRepository creates a process-local draft store
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	r := &inMemoryRepository{
		drafts:       make(map[string]*draft.Draft),
		timeProvider: RealTimeProvider(),
		ttl:          DefaultTTL,
	}
	if cfg != nil {
		if cfg.TimeProvider != nil {
			r.timeProvider = cfg.TimeProvider
		}
		if cfg.TTL > 0 {
			r.ttl = cfg.TTL
		}
	}
	return r
}

func (r *inMemoryRepository) Get(_ context.Context, userID string) (*draft.Draft, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	r.mu.RLock()
	d, exists := r.drafts[userID]
	r.mu.RUnlock()

	if !exists || r.expired(d) {
		return nil, NewDraftNotFoundError(userID)
	}

	return d.Clone(), nil
}

func (r *inMemoryRepository) Save(_ context.Context, d *draft.Draft) error {
	if d == nil {
		return fmt.Errorf("draft cannot be nil")
	}
	if d.UserID == "" {
		return fmt.Errorf("draft user ID is required")
	}

	now := r.timeProvider.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts[d.UserID] = d.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(_ context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, userID)
	return nil
}

func (r *inMemoryRepository) expired(d *draft.Draft) bool {
	return r.timeProvider.Now().Sub(d.UpdatedAt) > r.ttl
}
