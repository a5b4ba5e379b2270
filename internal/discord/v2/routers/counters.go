package routers

import (
	"errors"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/counterpick-bot/internal/services"
)

// Domain is both the slash command name and the custom ID prefix
const Domain = "counters"

// CountersRouter handles /counters commands and the wizard's buttons and
// modals
type CountersRouter struct {
	router  *core.Router
	handler *handlers.CountersHandler
}

type CountersRouterConfig struct {
	Pipeline   *core.Pipeline
	Provider   *services.Provider
	RoamerTag  string
	Middleware []core.Middleware // Optional, applied to every route
}

func (cfg *CountersRouterConfig) Validate() error {
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil {
		return errors.New("provider is required")
	}
	if cfg.Provider.CountersService == nil {
		return errors.New("provider.CountersService is required")
	}
	if cfg.Provider.WizardService == nil {
		return errors.New("provider.WizardService is required")
	}
	return nil
}

// NewCountersRouter creates the router and registers it with the pipeline
func NewCountersRouter(cfg *CountersRouterConfig) (*CountersRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter(Domain, cfg.Pipeline)

	handler, err := handlers.NewCountersHandler(&handlers.CountersHandlerConfig{
		CountersService: cfg.Provider.CountersService,
		WizardService:   cfg.Provider.WizardService,
		RoamerTag:       cfg.RoamerTag,
		CustomIDBuilder: router.CustomIDs(),
	})
	if err != nil {
		return nil, err
	}

	cr := &CountersRouter{
		router:  router,
		handler: handler,
	}

	router.Use(cfg.Middleware...)
	cr.registerRoutes()
	router.Register()

	return cr, nil
}

func (r *CountersRouter) registerRoutes() {
	// Slash commands
	r.router.Subcommand("menu", r.handler.HandleMenu)
	r.router.Subcommand("hero", r.handler.HandleHero)
	r.router.Subcommand("recommend", r.handler.HandleRecommend)
	r.router.Subcommand("stats", r.handler.HandleStats)

	// Buttons
	r.router.Component(handlers.ActionRecommendMode, r.handler.HandleRecommendMode)
	r.router.Component(handlers.ActionChange, r.handler.HandleRecommendMode)
	r.router.Component(handlers.ActionHeroInfoMode, r.handler.HandleHeroInfoMode)
	r.router.Component(handlers.ActionRetry, r.handler.HandleRetry)
	r.router.Component(handlers.ActionEnemiesInput, r.handler.HandleEnemiesInput)
	r.router.Component(handlers.ActionBack, r.handler.HandleBack)

	// Modals
	r.router.Modal(handlers.ModalHero, r.handler.HandleSubmitHero)
	r.router.Modal(handlers.ModalAllies, r.handler.HandleSubmitAllies)
	r.router.Modal(handlers.ModalEnemies, r.handler.HandleSubmitEnemies)
}

// Handler exposes the built route table, mainly for tests
func (r *CountersRouter) Handler() core.Handler {
	return r.router.Build()
}
