// Package wizard drives the step-by-step conversation: pick a mode, send
// names, get an answer. Each user has at most one draft in flight.
package wizard

//go:generate mockgen -destination=mock/mock_service.go -package=mockwizard -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	"github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts"
	"github.com/KirkDiggler/counterpick-bot/internal/services/counters"
	"github.com/KirkDiggler/counterpick-bot/internal/uuid"
)

// Service manages per-user wizard state
type Service interface {
	// Current returns the user's draft, or a fresh StepNone draft when
	// nothing is in progress
	Current(ctx context.Context, userID string) (*draft.Draft, error)

	// Reset drops whatever the user was doing
	Reset(ctx context.Context, userID string) error

	// BeginHeroInfo puts the user in the hero info step
	BeginHeroInfo(ctx context.Context, userID string) (*draft.Draft, error)

	// SubmitHeroName looks up a hero. On success the draft is cleared; a
	// not found error leaves the user in the same step to try again.
	SubmitHeroName(ctx context.Context, userID, name string) (*engine.Profile, error)

	// BeginRecommend starts collecting allies
	BeginRecommend(ctx context.Context, userID string) (*draft.Draft, error)

	// SubmitAllies records whitespace separated ally names and moves on to
	// enemies
	SubmitAllies(ctx context.Context, userID, text string) (*draft.Draft, error)

	// SubmitEnemies records enemy names, runs the analysis and clears the
	// draft
	SubmitEnemies(ctx context.Context, userID, text string) (*counters.Report, error)
}

type service struct {
	repository    drafts.Repository
	counters      counters.Service
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository      drafts.Repository // Required
	CountersService counters.Service  // Required
	UUIDGenerator   uuid.Generator    // Optional, will use default if nil
}

// NewService creates a new wizard service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.CountersService == nil {
		panic("counters service is required")
	}

	svc := &service{
		repository: cfg.Repository,
		counters:   cfg.CountersService,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Current(ctx context.Context, userID string) (*draft.Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	d, err := s.repository.Get(ctx, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return draft.New("", userID, draft.StepNone), nil
		}
		return nil, apperr.Wrap(err, "failed to load draft").
			WithMeta("user_id", userID)
	}
	return d, nil
}

func (s *service) Reset(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	if err := s.repository.Delete(ctx, userID); err != nil {
		return apperr.Wrap(err, "failed to reset draft").
			WithMeta("user_id", userID)
	}
	return nil
}

func (s *service) BeginHeroInfo(ctx context.Context, userID string) (*draft.Draft, error) {
	return s.begin(ctx, userID, draft.StepHero)
}

func (s *service) BeginRecommend(ctx context.Context, userID string) (*draft.Draft, error) {
	return s.begin(ctx, userID, draft.StepAllies)
}

// begin replaces any existing draft; switching modes abandons the old one
func (s *service) begin(ctx context.Context, userID string, step draft.Step) (*draft.Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	d := draft.New(s.uuidGenerator.New(), userID, step)
	if err := s.repository.Save(ctx, d); err != nil {
		return nil, apperr.Wrap(err, "failed to save draft").
			WithMeta("user_id", userID).
			WithMeta("step", string(step))
	}
	return d, nil
}

func (s *service) SubmitHeroName(ctx context.Context, userID, name string) (*engine.Profile, error) {
	if _, err := s.expect(ctx, userID, draft.StepHero); err != nil {
		return nil, err
	}

	profile, err := s.counters.LookupProfile(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.Reset(ctx, userID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) SubmitAllies(ctx context.Context, userID, text string) (*draft.Draft, error) {
	d, err := s.expect(ctx, userID, draft.StepAllies)
	if err != nil {
		return nil, err
	}

	d.Allies = hero.SplitNames(text)
	d.Step = draft.StepEnemies
	if err := s.repository.Save(ctx, d); err != nil {
		return nil, apperr.Wrap(err, "failed to save allies").
			WithMeta("user_id", userID)
	}
	return d, nil
}

func (s *service) SubmitEnemies(ctx context.Context, userID, text string) (*counters.Report, error) {
	d, err := s.expect(ctx, userID, draft.StepEnemies)
	if err != nil {
		return nil, err
	}

	report, err := s.counters.Analyze(ctx, d.Allies, hero.SplitNames(text))
	if err != nil {
		return nil, err
	}

	if err := s.Reset(ctx, userID); err != nil {
		return nil, err
	}
	return report, nil
}

// expect loads the user's draft and checks it is at the given step
func (s *service) expect(ctx context.Context, userID string, step draft.Step) (*draft.Draft, error) {
	d, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d.Step != step {
		return nil, apperr.FailedPreconditionf("expected step %q but user is at %q", step, d.Step).
			WithMeta("user_id", userID).
			WithMeta("step", string(d.Step))
	}
	return d, nil
}
