package achievements

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalogJSON() []byte {
	return []byte(`[
		{
			"id": "custom-streak",
			"name": "Custom Streak",
			"description": "Keep a 5-day streak",
			"icon": "🔥",
			"category": "consistency",
			"rarity": "rare",
			"xpReward": 80,
			"requirements": [
				{"stat": "streak_days", "threshold": 5}
			]
		}
	]`)
}

func TestParseCatalogValid(t *testing.T) {
	catalog, err := ParseCatalog(validCatalogJSON())
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	a := catalog[0]
	assert.Equal(t, "custom-streak", a.ID)
	assert.Equal(t, RarityRare, a.Rarity)
	assert.Equal(t, 80, a.XPReward)
	require.Len(t, a.Requirements, 1)
	assert.Equal(t, StatCurrentStreak, a.Requirements[0].Stat)
	assert.Equal(t, 5, a.Requirements[0].Threshold)
}

func TestParseCatalogRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"not an array", `{"id": "x"}`},
		{"missing name", `[{"id": "x", "rarity": "common", "requirements": []}]`},
		{"unknown rarity", `[{"id": "x", "name": "X", "rarity": "mythic", "requirements": []}]`},
		{"unknown stat", `[{"id": "x", "name": "X", "rarity": "common",
			"requirements": [{"stat": "friends", "threshold": 1}]}]`},
		{"zero threshold", `[{"id": "x", "name": "X", "rarity": "common",
			"requirements": [{"stat": "level", "threshold": 0}]}]`},
		{"unknown field", `[{"id": "x", "name": "X", "rarity": "common",
			"requirements": [], "secret": true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, validCatalogJSON(), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
