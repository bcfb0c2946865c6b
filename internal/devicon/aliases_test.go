package devicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAlias_KnownVariants(t *testing.T) {
	assert.Equal(t, "nodejs", NormalizeAlias("Node.js"))
	assert.Equal(t, "nodejs", NormalizeAlias("node"))
	assert.Equal(t, "javascript", NormalizeAlias("JS"))
	assert.Equal(t, "kubernetes", NormalizeAlias("k8s"))
	assert.Equal(t, "cplusplus", NormalizeAlias("C++"))
	assert.Equal(t, "amazonwebservices", NormalizeAlias("AWS"))
	assert.Equal(t, "rails", NormalizeAlias("Ruby on Rails"))
}

func TestNormalizeAlias_PassThrough(t *testing.T) {
	// Unknown inputs come back lowercased and trimmed, never an error.
	assert.Equal(t, "python", NormalizeAlias("  Python "))
	assert.Equal(t, "quantum-flux-analyzer-9000", NormalizeAlias("quantum-flux-analyzer-9000"))
	assert.Equal(t, "", NormalizeAlias("   "))
}

func TestNormalizeAlias_TranscriptionTypos(t *testing.T) {
	assert.Equal(t, "supabase", NormalizeAlias("Superbase"))
	assert.Equal(t, "vercel", NormalizeAlias("versel"))
}

func TestNormalizeAlias_CuratedEntriesResolveInCatalog(t *testing.T) {
	// Every curated target must exist in the dataset, otherwise the
	// rewrite sends a resolvable skill into the fallback tiers.
	catalog := LoadCatalog()
	for surface, canonical := range aliasMap {
		assert.True(t, catalog.Has(canonical),
			"alias %q maps to %q which is missing from the catalog", surface, canonical)
	}
}

func TestNormalizeAlias_UmbrellaTerms(t *testing.T) {
	assert.Equal(t, "tensorflow", NormalizeAlias("Machine Learning"))
	assert.Equal(t, "pytorch", NormalizeAlias("deep learning"))
}
