package devicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-forge/internal/taxonomy"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	resolver, err := NewResolver(LoadCatalog(), ResolverOptions{})
	require.NoError(t, err)
	return resolver
}

func TestResolve_ExactTier(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("python")
	assert.Equal(t, "python", resolved.CanonicalName)
	assert.Equal(t, TierExact, resolved.Tier)
	assert.Equal(t, taxonomy.CategoryLanguage, resolved.Category)
	assert.Equal(t,
		"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/python/python-original.svg",
		resolved.IconURL)
}

func TestResolve_CuratedAliasHitsExactTier(t *testing.T) {
	r := newTestResolver(t)

	// "node.js" is in the curated table, so the rewrite lands on the
	// exact tier rather than the catalog-alias tier.
	resolved := r.Resolve("Node.js")
	assert.Equal(t, "nodejs", resolved.CanonicalName)
	assert.Equal(t, TierExact, resolved.Tier)
	assert.Contains(t, resolved.IconURL, "/nodejs/nodejs-original.svg")
}

func TestResolve_CatalogAliasTier(t *testing.T) {
	catalog, err := newCatalog([]byte(`[
		{"name": "nodejs", "altnames": ["nodey"], "versions": {"svg": ["original"]}}
	]`))
	require.NoError(t, err)
	r, err := NewResolver(catalog, ResolverOptions{})
	require.NoError(t, err)

	// "nodey" is only a dataset altname, not a curated alias.
	resolved := r.Resolve("nodey")
	assert.Equal(t, "nodejs", resolved.CanonicalName)
	assert.Equal(t, TierAlias, resolved.Tier)
}

func TestResolve_CustomOverrideTier(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("Power BI")
	assert.Empty(t, resolved.CanonicalName)
	assert.Equal(t, TierCustomOverride, resolved.Tier)
	assert.Contains(t, resolved.IconURL, "Power_BI")
	assert.Equal(t, taxonomy.CategoryDataML, resolved.Category)
}

func TestResolve_BadgeFallbackTier(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("quantum-flux-analyzer-9000")
	assert.Empty(t, resolved.CanonicalName)
	assert.Equal(t, TierBadgeFallback, resolved.Tier)
	assert.Equal(t, taxonomy.CategoryOther, resolved.Category)
	assert.True(t, strings.HasPrefix(resolved.IconURL, "https://img.shields.io/badge/"))
	// Literal dashes are doubled per shields escaping.
	assert.Contains(t, resolved.IconURL, "quantum--flux--analyzer--9000")
}

func TestResolve_EmptyInputIsTotal(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("")
	assert.Equal(t, TierBadgeFallback, resolved.Tier)
	assert.Equal(t, taxonomy.CategoryOther, resolved.Category)
	assert.NotEmpty(t, resolved.IconURL)
}

func TestResolve_Deterministic(t *testing.T) {
	r := newTestResolver(t)

	a := r.Resolve("Python")
	b := r.Resolve("  python  ")
	c := r.Resolve("PYTHON")

	assert.Equal(t, a.CanonicalName, b.CanonicalName)
	assert.Equal(t, a.CanonicalName, c.CanonicalName)
	assert.Equal(t, a.Category, b.Category)
	assert.Equal(t, a.IconURL, c.IconURL)
}

func TestResolve_SecondCallServedFromCache(t *testing.T) {
	r := newTestResolver(t)

	first := r.Resolve("docker")
	require.Equal(t, 1, r.CacheLen())

	second := r.Resolve("Docker")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CacheLen())
}

func TestResolve_TierMonotonicity(t *testing.T) {
	r := newTestResolver(t)

	// Anything the catalog can find exactly must never fall through to
	// the override or badge tiers.
	for _, input := range []string{"python", "golang", "node.js", "PostgreSQL", "css"} {
		resolved := r.Resolve(input)
		assert.Contains(t, []ResolutionTier{TierExact, TierAlias}, resolved.Tier,
			"input %q resolved at tier %s", input, resolved.Tier)
	}
}

func TestResolveBatch_OrderPreservedAndDeduplicated(t *testing.T) {
	r := newTestResolver(t)

	results := r.ResolveBatch([]string{"Python", "docker", "python", "PYTHON"})
	require.Len(t, results, 4)

	assert.Equal(t, "python", results[0].CanonicalName)
	assert.Equal(t, "docker", results[1].CanonicalName)
	assert.Equal(t, results[0], results[2])
	assert.Equal(t, results[0], results[3])

	// Two distinct normalized inputs, two cache entries.
	assert.Equal(t, 2, r.CacheLen())
}

func TestResolveBatch_EmptyInput(t *testing.T) {
	r := newTestResolver(t)

	assert.Empty(t, r.ResolveBatch(nil))
	assert.Empty(t, r.ResolveBatch([]string{}))
}

func TestResolve_EmptyCatalogDegradesToBadges(t *testing.T) {
	r, err := NewResolver(emptyCatalog(), ResolverOptions{})
	require.NoError(t, err)

	resolved := r.Resolve("python")
	assert.Equal(t, TierBadgeFallback, resolved.Tier)
	// Category still comes from the keyword rules, not the catalog.
	assert.Equal(t, taxonomy.CategoryLanguage, resolved.Category)
	assert.NotEmpty(t, resolved.IconURL)
}

func TestResolve_BoundedCacheEvicts(t *testing.T) {
	catalog := LoadCatalog()
	r, err := NewResolver(catalog, ResolverOptions{CacheSize: 2})
	require.NoError(t, err)

	r.Resolve("python")
	r.Resolve("go")
	r.Resolve("rust")

	assert.Equal(t, 2, r.CacheLen())
}

func TestClearCache(t *testing.T) {
	r := newTestResolver(t)

	r.Resolve("python")
	require.Equal(t, 1, r.CacheLen())

	r.ClearCache()
	assert.Equal(t, 0, r.CacheLen())
}

func TestSearch_ProxiesCatalog(t *testing.T) {
	r := newTestResolver(t)

	results := r.Search("react", 5)
	assert.Contains(t, results, "react")
}

func TestResolverOptions_CustomHosts(t *testing.T) {
	r, err := NewResolver(LoadCatalog(), ResolverOptions{
		CDNBase:    "https://icons.example.com/devicon",
		BadgeHost:  "https://badges.example.com",
		BadgeColor: "ff0000",
		BadgeStyle: "for-the-badge",
	})
	require.NoError(t, err)

	resolved := r.Resolve("python")
	assert.Equal(t, "https://icons.example.com/devicon/python/python-original.svg", resolved.IconURL)

	badge := r.Resolve("unknown-thing-xyz")
	assert.Contains(t, badge.IconURL, "https://badges.example.com/badge/")
	assert.Contains(t, badge.IconURL, "ff0000")
	assert.Contains(t, badge.IconURL, "style=for-the-badge")
}
