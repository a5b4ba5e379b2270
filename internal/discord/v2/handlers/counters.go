package handlers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	"github.com/KirkDiggler/counterpick-bot/internal/render"
	"github.com/KirkDiggler/counterpick-bot/internal/services/counters"
	"github.com/KirkDiggler/counterpick-bot/internal/services/wizard"
)

// Button actions
const (
	ActionRecommendMode = "recommend_mode"
	ActionHeroInfoMode  = "hero_info_mode"
	ActionBack          = "back"
	ActionRetry         = "retry"
	ActionChange        = "change"
	ActionEnemiesInput  = "enemies_input"
)

// Modal actions
const (
	ModalHero    = "hero"
	ModalAllies  = "allies"
	ModalEnemies = "enemies"
)

// Text input IDs, shared with the slash command option names
const (
	InputName    = "name"
	InputAllies  = "allies"
	InputEnemies = "enemies"
)

const menuText = "Choose a mode:"

// CountersHandler answers /counters commands and drives the wizard buttons
// and modals
type CountersHandler struct {
	counters        counters.Service
	wizard          wizard.Service
	roamerTag       string
	customIDBuilder *core.CustomIDBuilder
}

// CountersHandlerConfig holds the configuration
type CountersHandlerConfig struct {
	CountersService counters.Service
	WizardService   wizard.Service
	RoamerTag       string
	CustomIDBuilder *core.CustomIDBuilder
}

// NewCountersHandler creates a new counters handler
func NewCountersHandler(cfg *CountersHandlerConfig) (*CountersHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.CountersService == nil {
		return nil, fmt.Errorf("counters service is required")
	}
	if cfg.WizardService == nil {
		return nil, fmt.Errorf("wizard service is required")
	}

	customIDBuilder := cfg.CustomIDBuilder
	if customIDBuilder == nil {
		customIDBuilder = core.NewCustomIDBuilder("counters")
	}

	return &CountersHandler{
		counters:        cfg.CountersService,
		wizard:          cfg.WizardService,
		roamerTag:       cfg.RoamerTag,
		customIDBuilder: customIDBuilder,
	}, nil
}

// HandleMenu shows the main menu and drops any half finished wizard
func (h *CountersHandler) HandleMenu(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if err := h.wizard.Reset(ctx.Context, ctx.UserID); err != nil {
		return nil, err
	}
	return core.Respond(h.menu()), nil
}

// HandleHero answers /counters hero name:<name>
func (h *CountersHandler) HandleHero(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := ctx.GetStringParam(InputName)

	profile, err := h.counters.LookupProfile(ctx.Context, name)
	if err != nil {
		if apperr.IsNotFound(err) {
			return core.Respond(core.NewEphemeralResponse(render.NotFound(name))), nil
		}
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.ProfileEmbed(profile))), nil
}

// HandleRecommend answers /counters recommend allies:<..> enemies:<..>
func (h *CountersHandler) HandleRecommend(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	allies := hero.SplitNames(ctx.GetStringParam(InputAllies))
	enemies := hero.SplitNames(ctx.GetStringParam(InputEnemies))

	report, err := h.counters.Analyze(ctx.Context, allies, enemies)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.ReportEmbed(report.Warnings, report.Recommendation))), nil
}

// HandleStats shows the size of the loaded catalog
func (h *CountersHandler) HandleStats(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	stats := h.counters.Stats(ctx.Context)
	embed := builders.StatsEmbed(stats.Characters, stats.Tanks, h.roamerTag)
	return core.Respond(core.NewEmbedResponse(embed).AsEphemeral()), nil
}

// HandleHeroInfoMode enters hero info mode and asks for a name
func (h *CountersHandler) HandleHeroInfoMode(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := h.wizard.BeginHeroInfo(ctx.Context, ctx.UserID); err != nil {
		return nil, err
	}
	return core.Respond(core.NewModalResponse(h.heroModal())), nil
}

// HandleRetry asks for a hero name again without touching the draft
func (h *CountersHandler) HandleRetry(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return core.Respond(core.NewModalResponse(h.heroModal())), nil
}

// HandleRecommendMode starts a recommendation and asks for allies. Change
// selection uses the same path.
func (h *CountersHandler) HandleRecommendMode(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := h.wizard.BeginRecommend(ctx.Context, ctx.UserID); err != nil {
		return nil, err
	}
	return core.Respond(core.NewModalResponse(h.alliesModal())), nil
}

// HandleEnemiesInput opens the enemies form. Discord does not allow a
// modal in reply to a modal, so allies and enemies are two round trips.
func (h *CountersHandler) HandleEnemiesInput(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return core.Respond(core.NewModalResponse(h.enemiesModal())), nil
}

// HandleBack clears the draft and returns to the menu in place
func (h *CountersHandler) HandleBack(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if err := h.wizard.Reset(ctx.Context, ctx.UserID); err != nil {
		return nil, err
	}
	return core.Respond(h.menu().AsUpdate()), nil
}

// HandleSubmitHero answers the hero info modal
func (h *CountersHandler) HandleSubmitHero(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := ctx.GetStringParam(InputName)

	profile, err := h.wizard.SubmitHeroName(ctx.Context, ctx.UserID, name)
	if err != nil {
		if apperr.IsNotFound(err) {
			log.Printf("[Counters] User %s asked for unknown hero %q", ctx.UserID, name)
			components := builders.NewComponentBuilder(h.customIDBuilder).
				PrimaryButton("Try again", ActionRetry).
				SecondaryButton("Back", ActionBack).
				Build()
			return core.Respond(core.NewEphemeralResponse(render.NotFound(name)).WithComponents(components...)), nil
		}
		return nil, err
	}

	components := builders.NewComponentBuilder(h.customIDBuilder).
		SecondaryButton("Back", ActionBack).
		Build()
	return core.Respond(core.NewEphemeralResponse(render.Profile(profile)).WithComponents(components...)), nil
}

// HandleSubmitAllies records allies and prompts for enemies
func (h *CountersHandler) HandleSubmitAllies(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	d, err := h.wizard.SubmitAllies(ctx.Context, ctx.UserID, ctx.GetStringParam(InputAllies))
	if err != nil {
		return nil, err
	}

	allies := render.DisplayList(d.Allies)
	if allies == "" {
		allies = "none"
	}

	components := builders.NewComponentBuilder(h.customIDBuilder).
		PrimaryButton("Enter enemies", ActionEnemiesInput).
		SecondaryButton("Back", ActionBack).
		Build()
	content := fmt.Sprintf("Allies: %s\nNow enter the enemy characters.", allies)
	return core.Respond(core.NewEphemeralResponse(content).WithComponents(components...)), nil
}

// HandleSubmitEnemies finishes a recommendation
func (h *CountersHandler) HandleSubmitEnemies(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	report, err := h.wizard.SubmitEnemies(ctx.Context, ctx.UserID, ctx.GetStringParam(InputEnemies))
	if err != nil {
		return nil, err
	}

	components := builders.NewComponentBuilder(h.customIDBuilder).
		PrimaryButton("Change selection", ActionChange).
		SecondaryButton("Back", ActionBack).
		Build()
	content := render.Report(report.Warnings, report.Recommendation)
	return core.Respond(core.NewEphemeralResponse(content).WithComponents(components...)), nil
}

func (h *CountersHandler) menu() *core.Response {
	components := builders.NewComponentBuilder(h.customIDBuilder).
		PrimaryButton("Allies & enemies", ActionRecommendMode).
		PrimaryButton("Hero info", ActionHeroInfoMode).
		Build()
	return core.NewEphemeralResponse(menuText).WithComponents(components...)
}

func (h *CountersHandler) heroModal() *core.Modal {
	return builders.NewModal(h.customIDBuilder.Modal(ModalHero), "Hero info").
		ShortInput(InputName, "Hero name", "e.g. tigreal", true).
		Build()
}

func (h *CountersHandler) alliesModal() *core.Modal {
	return builders.NewModal(h.customIDBuilder.Modal(ModalAllies), "Your team").
		ParagraphInput(InputAllies, "Allied characters", "Names separated by spaces", false).
		Build()
}

func (h *CountersHandler) enemiesModal() *core.Modal {
	return builders.NewModal(h.customIDBuilder.Modal(ModalEnemies), "Enemy team").
		ParagraphInput(InputEnemies, "Enemy characters", "Names separated by spaces", false).
		Build()
}
