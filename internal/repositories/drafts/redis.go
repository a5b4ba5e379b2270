package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
)

// KeyPrefix namespaces draft keys in Redis
const KeyPrefix = "counterpick:draft:"

// Data is the stored form of a draft
type Data struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Step      string    `json:"step"`
	Allies    []string  `json:"allies"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient // Required
	TimeProvider TimeProvider          // Optional, defaults to wall clock
	TTL          time.Duration         // Optional, defaults to DefaultTTL
}

type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedis creates a Redis-backed repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a Redis-backed draft repository. Drafts expire
// on their own after TTL of inactivity.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	r := &redisRepository{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
		ttl:          cfg.TTL,
	}
	if r.timeProvider == nil {
		r.timeProvider = RealTimeProvider()
	}
	if r.ttl == 0 {
		r.ttl = DefaultTTL
	}
	return r
}

func draftKey(userID string) string {
	return KeyPrefix + userID
}

func (r *redisRepository) Get(ctx context.Context, userID string) (*draft.Draft, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	raw, err := r.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, NewDraftNotFoundError(userID)
		}
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft data: %w", err)
	}

	return toDraft(&data), nil
}

func (r *redisRepository) Save(ctx context.Context, d *draft.Draft) error {
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

	payload, err := json.Marshal(toDraftData(d))
	if err != nil {
		return fmt.Errorf("failed to marshal draft data: %w", err)
	}

	if err := r.client.Set(ctx, draftKey(d.UserID), string(payload), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft in Redis: %w", err)
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}

	if err := r.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}

	return nil
}

func toDraftData(d *draft.Draft) *Data {
	allies := d.Allies
	if allies == nil {
		allies = []string{}
	}
	return &Data{
		ID:        d.ID,
		UserID:    d.UserID,
		Step:      string(d.Step),
		Allies:    allies,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDraft(data *Data) *draft.Draft {
	step := draft.Step(data.Step)
	if !step.IsValid() {
		step = draft.StepNone
	}
	allies := data.Allies
	if allies == nil {
		allies = []string{}
	}
	return &draft.Draft{
		ID:        data.ID,
		UserID:    data.UserID,
		Step:      step,
		Allies:    allies,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
