package drafts

//go:generate mockgen -destination=mock/mock_repository.go -package=mockdrafts -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
)

// DefaultTTL is how long an idle draft survives
const DefaultTTL = 30 * time.Minute

// Repository stores one wizard draft per user
type Repository interface {
	// Get returns the user's draft or a not found error
	Get(ctx context.Context, userID string) (*draft.Draft, error)

	// Save creates or replaces the user's draft
	Save(ctx context.Context, d *draft.Draft) error

	// Delete removes the user's draft. Deleting a missing draft is not an error.
	Delete(ctx context.Context, userID string) error
}
