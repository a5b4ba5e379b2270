package services

import (
	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	"github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts"
	"github.com/KirkDiggler/counterpick-bot/internal/services/counters"
	"github.com/KirkDiggler/counterpick-bot/internal/services/wizard"
	"github.com/KirkDiggler/counterpick-bot/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CountersService counters.Service
	WizardService   wizard.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog         catalog.Source    // Required
	RoamerTag       string            // Optional
	DraftRepository drafts.Repository // Optional, in-memory if nil
	UUIDGenerator   uuid.Generator    // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = drafts.NewInMemoryRepository(nil)
	}

	countersSvc := counters.NewService(&counters.ServiceConfig{
		Catalog: cfg.Catalog,
		Engine:  engine.New(&engine.Config{RoamerTag: cfg.RoamerTag}),
	})

	wizardSvc := wizard.NewService(&wizard.ServiceConfig{
		Repository:      draftRepo,
		CountersService: countersSvc,
		UUIDGenerator:   cfg.UUIDGenerator,
	})

	return &Provider{
		CountersService: countersSvc,
		WizardService:   wizardSvc,
	}
}
