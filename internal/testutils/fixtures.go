package testutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
)

// TestRoster is a small roster in the heroes file format
const TestRoster = `Franco. tank, roam. Layla, Miya. Diggie. Eudora
Layla. marksman. . Franco, Saber. Tigreal
Tigreal. tank. Fanny. Diggie. Layla
`

// TestTanks is a small tank list in the tanks file format
const TestTanks = `Franco. Layla. Valir. Eudora
Tigreal. Fanny, Saber. Diggie. Layla
Atlas. Miya. Khufra. Pharsa
`

// CreateTestCatalog parses TestRoster and TestTanks
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(TestRoster), strings.NewReader(TestTanks))
	require.NoError(t, err)
	return cat
}

// CreateTestStore wraps CreateTestCatalog in a Store
func CreateTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(CreateTestCatalog(t))
}
