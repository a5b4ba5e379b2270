package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	mockdrafts "github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mockdrafts.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockdrafts.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now).Times(2)

	d := draft.New("draft-id", "user-id", draft.StepEnemies)
	d.Allies = []string{"layla", "tigreal"}

	expected, err := json.Marshal(Data{
		ID:        "draft-id",
		UserID:    "user-id",
		Step:      "enemies_input",
		Allies:    []string{"layla", "tigreal"},
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("counterpick:draft:user-id", string(expected), DefaultTTL).SetVal("OK")

	err = s.repo.Save(ctx, d)
	s.NoError(err)
	s.Equal(now, d.CreatedAt)
	s.Equal(now, d.UpdatedAt)

	// Dependency error
	s.mock.ExpectSet("counterpick:draft:user-id", string(expected), DefaultTTL).SetErr(errors.New("redis error"))

	err = s.repo.Save(ctx, d)
	s.Error(err)

	// Input validation
	s.Error(s.repo.Save(ctx, nil))
	s.Error(s.repo.Save(ctx, &draft.Draft{}))
}

func (s *RedisRepoTestSuite) TestSave_KeepsCreatedAt() {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(5 * time.Minute)
	s.timeProvider.EXPECT().Now().Return(now)

	d := draft.New("draft-id", "user-id", draft.StepHero)
	d.CreatedAt = created

	expected, err := json.Marshal(Data{
		ID:        "draft-id",
		UserID:    "user-id",
		Step:      "hero_info",
		Allies:    []string{},
		CreatedAt: created,
		UpdatedAt: now,
	})
	s.Require().NoError(err)

	s.mock.ExpectSet("counterpick:draft:user-id", string(expected), DefaultTTL).SetVal("OK")

	s.NoError(s.repo.Save(ctx, d))
	s.Equal(created, d.CreatedAt)
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	data := Data{
		ID:        "draft-id",
		UserID:    "user-id",
		Step:      "allies_input",
		Allies:    []string{"layla"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	raw, err := json.Marshal(data)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("counterpick:draft:user-id").SetVal(string(raw))

	got, err := s.repo.Get(ctx, "user-id")
	s.Require().NoError(err)
	s.Equal("draft-id", got.ID)
	s.Equal(draft.StepAllies, got.Step)
	s.Equal([]string{"layla"}, got.Allies)
	s.Equal(now, got.UpdatedAt)

	// Not found
	s.mock.ExpectGet("counterpick:draft:user-id").RedisNil()

	got, err = s.repo.Get(ctx, "user-id")
	s.Nil(got)
	s.True(apperr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("counterpick:draft:user-id").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "user-id")
	s.Error(err)
	s.False(apperr.IsNotFound(err))

	// Corrupt payload
	s.mock.ExpectGet("counterpick:draft:user-id").SetVal("{not json")

	_, err = s.repo.Get(ctx, "user-id")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGet_UnknownStepFallsBackToNone() {
	raw, err := json.Marshal(Data{ID: "draft-id", UserID: "user-id", Step: "bogus"})
	s.Require().NoError(err)

	s.mock.ExpectGet("counterpick:draft:user-id").SetVal(string(raw))

	got, err := s.repo.Get(context.Background(), "user-id")
	s.Require().NoError(err)
	s.Equal(draft.StepNone, got.Step)
	s.NotNil(got.Allies)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("counterpick:draft:user-id").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "user-id"))

	// Deleting a missing draft is not an error
	s.mock.ExpectDel("counterpick:draft:user-id").SetVal(0)
	s.NoError(s.repo.Delete(ctx, "user-id"))

	s.mock.ExpectDel("counterpick:draft:user-id").SetErr(errors.New("redis error"))
	s.Error(s.repo.Delete(ctx, "user-id"))

	s.Error(s.repo.Delete(ctx, ""))
}

func (s *RedisRepoTestSuite) TestCustomTTL() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	repo := NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
		TTL:          10 * time.Minute,
	})

	d := draft.New("draft-id", "user-id", draft.StepHero)
	expected, err := json.Marshal(toDraftData(&draft.Draft{
		ID:        "draft-id",
		UserID:    "user-id",
		Step:      draft.StepHero,
		CreatedAt: now,
		UpdatedAt: now,
	}))
	s.Require().NoError(err)

	s.mock.ExpectSet("counterpick:draft:user-id", string(expected), 10*time.Minute).SetVal("OK")
	s.NoError(repo.Save(context.Background(), d))
}

func (s *RedisRepoTestSuite) TestNewRedisRepository_RequiresClient() {
	s.Panics(func() {
		NewRedisRepository(&RedisRepoConfig{})
	})
}
