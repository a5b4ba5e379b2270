package drafts

import (
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
)

// NewDraftNotFoundError reports a missing draft for a user
func NewDraftNotFoundError(userID string) error {
	return apperr.NotFoundf("draft not found for user %s", userID).
		WithMeta("user_id", userID)
}
