package counters

//go:generate mockgen -destination=mock/mock_service.go -package=mockcounters -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
)

// Service answers counter questions against the current catalog
type Service interface {
	// LookupProfile returns a character's merged profile
	LookupProfile(ctx context.Context, name string) (*engine.Profile, error)

	// Analyze produces warnings and a tank recommendation for a matchup
	Analyze(ctx context.Context, allies, enemies []string) (*Report, error)

	// Stats reports the size of the loaded catalog
	Stats(ctx context.Context) *CatalogStats
}

// Report is the full answer to a matchup
type Report struct {
	Allies         []string
	Enemies        []string
	Warnings       []engine.Warning
	Recommendation *engine.Recommendation
}

// CatalogStats describes the snapshot a service is answering from
type CatalogStats struct {
	Characters int
	Tanks      int
}

type service struct {
	catalog catalog.Source
	engine  *engine.Engine
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog catalog.Source // Required
	Engine  *engine.Engine // Optional, defaults to engine.New(nil)
}

// NewService creates a new counters service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog source is required")
	}

	svc := &service{
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
	}
	if svc.engine == nil {
		svc.engine = engine.New(nil)
	}
	return svc
}

func (s *service) LookupProfile(_ context.Context, name string) (*engine.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.InvalidArgument("hero name is required")
	}

	profile, ok := s.engine.LookupProfile(s.catalog.Snapshot(), name)
	if !ok {
		return nil, apperr.NotFoundf("character '%s' not found", strings.TrimSpace(name)).
			WithMeta("name", hero.Canonical(name))
	}
	return profile, nil
}

func (s *service) Analyze(_ context.Context, allies, enemies []string) (*Report, error) {
	allies = hero.CanonicalNames(allies)
	enemies = hero.CanonicalNames(enemies)

	// One snapshot for both passes so a reload can't split the answer
	snap := s.catalog.Snapshot()

	return &Report{
		Allies:         allies,
		Enemies:        enemies,
		Warnings:       s.engine.DetectWarnings(snap, allies, enemies),
		Recommendation: s.engine.Recommend(snap, allies, enemies),
	}, nil
}

func (s *service) Stats(_ context.Context) *CatalogStats {
	snap := s.catalog.Snapshot()
	return &CatalogStats{
		Characters: snap.CharacterCount(),
		Tanks:      snap.TankCount(),
	}
}
