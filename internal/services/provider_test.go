package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/draft"
	"github.com/KirkDiggler/counterpick-bot/internal/services"
)

func TestNewProvider_Defaults(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{
		Catalog: catalog.NewStore(catalog.Empty()),
	})
	require.NotNil(t, p.CountersService)
	require.NotNil(t, p.WizardService)

	d, err := p.WizardService.BeginHeroInfo(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, draft.StepHero, d.Step)
	assert.NotEmpty(t, d.ID)
}

func TestNewProvider_RequiresCatalog(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
