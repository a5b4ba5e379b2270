package drafts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	mockdrafts "github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts/mock"
)

func TestInMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	d := draft.New("draft-1", "user-1", draft.StepAllies)
	require.NoError(t, repo.Save(ctx, d))
	assert.False(t, d.CreatedAt.IsZero())
	assert.Equal(t, d.CreatedAt, d.UpdatedAt)

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "draft-1", got.ID)
	assert.Equal(t, draft.StepAllies, got.Step)
	assert.Empty(t, got.Allies)
}

func TestInMemoryRepository_StoresCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	d := draft.New("draft-1", "user-1", draft.StepEnemies)
	d.Allies = []string{"layla"}
	require.NoError(t, repo.Save(ctx, d))

	d.Allies[0] = "changed"
	d.Step = draft.StepHero

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"layla"}, got.Allies)
	assert.Equal(t, draft.StepEnemies, got.Step)

	got.Allies = append(got.Allies, "tigreal")
	again, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"layla"}, again.Allies)
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	got, err := repo.Get(context.Background(), "nobody")
	assert.Nil(t, got)
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	require.NoError(t, repo.Save(ctx, draft.New("draft-1", "user-1", draft.StepHero)))
	require.NoError(t, repo.Delete(ctx, "user-1"))

	_, err := repo.Get(ctx, "user-1")
	assert.True(t, apperr.IsNotFound(err))

	// Deleting again is fine
	assert.NoError(t, repo.Delete(ctx, "user-1"))
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	assert.Error(t, repo.Save(ctx, nil))
	assert.Error(t, repo.Save(ctx, &draft.Draft{ID: "x"}))
	assert.Error(t, repo.Delete(ctx, ""))
	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
	assert.False(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_Expiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mockdrafts.NewMockTimeProvider(ctrl)
	repo := NewInMemoryRepository(&InMemoryConfig{
		TimeProvider: clock,
		TTL:          time.Minute,
	})

	ctx := context.Background()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	gomock.InOrder(
		clock.EXPECT().Now().Return(start),                     // Save
		clock.EXPECT().Now().Return(start.Add(time.Minute)),    // Get at the boundary
		clock.EXPECT().Now().Return(start.Add(61*time.Second)), // Get after expiry
	)

	require.NoError(t, repo.Save(ctx, draft.New("draft-1", "user-1", draft.StepHero)))

	_, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)

	_, err = repo.Get(ctx, "user-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := draft.New("draft", "user-1", draft.StepAllies)
			_ = repo.Save(ctx, d)
			_, _ = repo.Get(ctx, "user-1")
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, draft.StepAllies, got.Step)
}
