package engine_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
)

func loadCatalog(t *testing.T, roster, tanks string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(roster), strings.NewReader(tanks))
	require.NoError(t, err)
	return cat
}

func names(entries []engine.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestEngine_LookupProfile(t *testing.T) {
	roster := strings.Join([]string{
		"Atlas. Tank, Roam. Fanny. Khufra. Lolita",
		"Tigreal. Tank. Ling. Diggie. Pharsa",
		"Layla. Marksman",
	}, "\n")
	tanks := strings.Join([]string{
		"Atlas. Ling, Fanny. Chou. Floryn",
		"Tigreal. Gusion. Valir. Odette",
	}, "\n")
	cat := loadCatalog(t, roster, tanks)
	e := engine.New(nil)

	t.Run("roamer in both datasets gets the union", func(t *testing.T) {
		p, ok := e.LookupProfile(cat, "ATLAS")
		require.True(t, ok)

		assert.Equal(t, "atlas", p.Name)
		assert.Equal(t, []string{"tank", "roam"}, p.Roles)
		assert.Equal(t, []string{"fanny", "ling"}, p.Counters.Sorted())
		assert.Equal(t, []string{"chou", "khufra"}, p.CounteredBy.Sorted())
		assert.Equal(t, []string{"floryn", "lolita"}, p.Synergy.Sorted())
	})

	t.Run("non roamer in both datasets keeps roster values only", func(t *testing.T) {
		p, ok := e.LookupProfile(cat, "tigreal")
		require.True(t, ok)

		assert.Equal(t, []string{"ling"}, p.Counters.Sorted())
		assert.Equal(t, []string{"diggie"}, p.CounteredBy.Sorted())
		assert.Equal(t, []string{"pharsa"}, p.Synergy.Sorted())
	})

	t.Run("name and roles only", func(t *testing.T) {
		p, ok := e.LookupProfile(cat, " layla ")
		require.True(t, ok)
		assert.Equal(t, []string{"marksman"}, p.Roles)
		assert.Zero(t, p.Counters.Len())
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		p, ok := e.LookupProfile(cat, "nobody")
		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("profile does not alias catalog data", func(t *testing.T) {
		p, ok := e.LookupProfile(cat, "atlas")
		require.True(t, ok)
		p.Counters.Add("someone")

		again, _ := e.LookupProfile(cat, "atlas")
		assert.False(t, again.Counters.Has("someone"))
	})

	t.Run("custom roamer tag", func(t *testing.T) {
		custom := engine.New(&engine.Config{RoamerTag: "Tank"})
		assert.Equal(t, "tank", custom.RoamerTag())

		p, ok := custom.LookupProfile(cat, "tigreal")
		require.True(t, ok)
		assert.Equal(t, []string{"gusion", "ling"}, p.Counters.Sorted())
	})
}

func TestEngine_LookupProfile_RoundTrip(t *testing.T) {
	lines := []string{
		"Khufra. Tank, Roam. Fanny, Ling. Diggie. Atlas",
		"Lolita. Tank. Miya. Chou, Kaja. Floryn, Angela",
		"Hylos. Tank. Alucard. Karrie. Estes",
	}
	cat := loadCatalog(t, strings.Join(lines, "\n"), "")
	e := engine.New(nil)

	for _, line := range lines {
		parts := strings.Split(line, ". ")
		t.Run(parts[0], func(t *testing.T) {
			p, ok := e.LookupProfile(cat, parts[0])
			require.True(t, ok)

			assert.Equal(t, splitLower(parts[1]), p.Roles)
			assert.ElementsMatch(t, splitLower(parts[2]), p.Counters.Sorted())
			assert.ElementsMatch(t, splitLower(parts[3]), p.CounteredBy.Sorted())
			assert.ElementsMatch(t, splitLower(parts[4]), p.Synergy.Sorted())
		})
	}
}

func splitLower(field string) []string {
	var out []string
	for _, tok := range strings.Split(field, ",") {
		out = append(out, strings.ToLower(strings.TrimSpace(tok)))
	}
	return out
}

func TestEngine_DetectWarnings(t *testing.T) {
	tanks := strings.Join([]string{
		"Atlas. Fanny, Ling. Chou. Floryn",
		"Khufra. Ling, Layla. Diggie. Atlas",
	}, "\n")
	cat := loadCatalog(t, "", tanks)
	e := engine.New(nil)

	t.Run("ordered by enemy then ally", func(t *testing.T) {
		got := e.DetectWarnings(cat, []string{"Ling", "Layla", "Fanny"}, []string{"khufra", "nobody", "Atlas"})
		assert.Equal(t, []engine.Warning{
			{Enemy: "khufra", Ally: "ling"},
			{Enemy: "khufra", Ally: "layla"},
			{Enemy: "atlas", Ally: "ling"},
			{Enemy: "atlas", Ally: "fanny"},
		}, got)
	})

	t.Run("repeated ally warned once per occurrence", func(t *testing.T) {
		got := e.DetectWarnings(cat, []string{"ling", "Ling"}, []string{"khufra"})
		assert.Equal(t, []engine.Warning{
			{Enemy: "khufra", Ally: "ling"},
			{Enemy: "khufra", Ally: "ling"},
		}, got)
	})

	t.Run("empty when no enemies", func(t *testing.T) {
		assert.Empty(t, e.DetectWarnings(cat, []string{"ling"}, nil))
	})

	t.Run("empty when no enemy is a tank", func(t *testing.T) {
		assert.Empty(t, e.DetectWarnings(cat, []string{"ling"}, []string{"layla", "miya"}))
	})

	t.Run("empty when allies are not countered", func(t *testing.T) {
		assert.Empty(t, e.DetectWarnings(cat, []string{"miya"}, []string{"atlas"}))
	})
}

func TestEngine_Recommend(t *testing.T) {
	e := engine.New(nil)

	t.Run("counter and synergy add up", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. x. q. p")

		rec := e.Recommend(cat, []string{"p"}, []string{"x"})
		require.Equal(t, engine.StatusRanked, rec.Status)
		require.Len(t, rec.Entries, 1)

		entry := rec.Entries[0]
		assert.Equal(t, "a", entry.Name)
		assert.Equal(t, []string{"x"}, entry.Counters)
		assert.Equal(t, []string{"p"}, entry.Synergy)
		assert.Equal(t, 1.5, entry.Priority)
		assert.Equal(t, 1.0, entry.CounterPoints())
		assert.Equal(t, 0.5, entry.SynergyPoints())
		assert.Empty(t, entry.Roles)
	})

	t.Run("countered tank is excluded even with the best score", func(t *testing.T) {
		cat := loadCatalog(t, "", strings.Join([]string{
			"A. x, y, z. x. p",
			"B. y. q. r",
		}, "\n"))

		rec := e.Recommend(cat, []string{"p"}, []string{"x", "y", "z"})
		assert.Equal(t, []string{"b"}, names(rec.Entries))
	})

	t.Run("countered tank is excluded regardless of allies", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. y. x. p")

		rec := e.Recommend(cat, []string{"p"}, []string{"x"})
		assert.Equal(t, engine.StatusNoMatch, rec.Status)
		assert.False(t, rec.HasEntries())
		assert.Empty(t, rec.Entries)
	})

	t.Run("zero priority is dropped", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. x. q. p\nB. y. q. r")

		rec := e.Recommend(cat, nil, []string{"x"})
		assert.Equal(t, []string{"a"}, names(rec.Entries))
	})

	t.Run("no inputs yields no match", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. x. q. p\nB. y. q. r")

		rec := e.Recommend(cat, nil, nil)
		assert.Equal(t, engine.StatusNoMatch, rec.Status)
		assert.Equal(t, "no_match", rec.Status.String())
	})

	t.Run("empty catalog yields no match", func(t *testing.T) {
		rec := e.Recommend(catalog.Empty(), []string{"p"}, []string{"x"})
		assert.Equal(t, engine.StatusNoMatch, rec.Status)
	})

	t.Run("sorted by priority with stable ties", func(t *testing.T) {
		cat := loadCatalog(t, "", strings.Join([]string{
			"T1. x. q. none",
			"T2. x, y. q. none",
			"T3. none. q. p",
			"T4. y. q. none",
			"T5. x. q. p",
		}, "\n"))

		rec := e.Recommend(cat, []string{"p"}, []string{"x", "y"})
		assert.Equal(t, []string{"t2", "t5", "t1", "t4", "t3"}, names(rec.Entries))
		assert.Equal(t, []float64{2, 1.5, 1, 1, 0.5}, priorities(rec.Entries))
	})

	t.Run("truncated to five and non increasing", func(t *testing.T) {
		var lines []string
		for i := 0; i < 9; i++ {
			lines = append(lines, fmt.Sprintf("T%d. x. q. p", i))
		}
		lines = append(lines, "Best. x, y. q. p")
		cat := loadCatalog(t, "", strings.Join(lines, "\n"))

		rec := e.Recommend(cat, []string{"p"}, []string{"x", "y"})
		require.Len(t, rec.Entries, engine.MaxRecommendations)
		assert.Equal(t, []string{"best", "t0", "t1", "t2", "t3"}, names(rec.Entries))
		for i := 1; i < len(rec.Entries); i++ {
			assert.GreaterOrEqual(t, rec.Entries[i-1].Priority, rec.Entries[i].Priority)
		}
	})

	t.Run("matches keep input order", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. c, a, b. q. z, y")

		rec := e.Recommend(cat, []string{"Y", "Z"}, []string{"b", "A", "c"})
		require.Len(t, rec.Entries, 1)
		assert.Equal(t, []string{"b", "a", "c"}, rec.Entries[0].Counters)
		assert.Equal(t, []string{"y", "z"}, rec.Entries[0].Synergy)
		assert.Equal(t, 4.0, rec.Entries[0].Priority)
	})

	t.Run("repeated input names count once", func(t *testing.T) {
		cat := loadCatalog(t, "", "A. x. q. p")

		rec := e.Recommend(cat, []string{"p", "P"}, []string{"x", "x"})
		require.Len(t, rec.Entries, 1)
		assert.Equal(t, 1.5, rec.Entries[0].Priority)
	})
}

func priorities(entries []engine.Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Priority
	}
	return out
}
