package devicon

import (
	"fmt"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jonathan/profile-forge/internal/taxonomy"
)

// ResolutionTier records which fallback stage satisfied a lookup.
type ResolutionTier string

// Resolution tiers in cascade order.
const (
	TierExact          ResolutionTier = "exact"
	TierAlias          ResolutionTier = "alias"
	TierCustomOverride ResolutionTier = "custom_override"
	TierBadgeFallback  ResolutionTier = "badge_fallback"
)

// ResolvedSkill is the per-skill result of resolution. Category is
// always set and IconURL is always non-empty: a skill that matches no
// tier still yields a synthetic text badge, never a hole in the
// rendered document.
type ResolvedSkill struct {
	InputText     string            `json:"input_text"`
	CanonicalName string            `json:"canonical_name,omitempty"`
	IconURL       string            `json:"icon_url"`
	Category      taxonomy.Category `json:"category"`
	Tier          ResolutionTier    `json:"resolution_tier"`
}

// Resolved reports whether a dedicated icon (any tier before the badge
// fallback) was found.
func (s ResolvedSkill) Resolved() bool {
	return s.Tier != TierBadgeFallback
}

const (
	// DefaultCacheSize bounds the resolution cache. The catalog is
	// static, so entries never expire; eviction only matters for
	// long-lived deployments fed high-cardinality input.
	DefaultCacheSize = 1024

	defaultCDNBase    = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons"
	defaultBadgeHost  = "https://img.shields.io"
	defaultBadgeColor = "3b82f6"
	defaultBadgeStyle = "flat"
)

// ResolverOptions tune the resolver. The zero value selects defaults.
type ResolverOptions struct {
	CacheSize  int    // bounded LRU capacity, DefaultCacheSize when <= 0
	CDNBase    string // icon CDN base URL
	BadgeHost  string // badge host for the fallback tier
	BadgeColor string // badge background color (hex, no '#')
	BadgeStyle string // badge style parameter
}

func (o ResolverOptions) withDefaults() ResolverOptions {
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.CDNBase == "" {
		o.CDNBase = defaultCDNBase
	}
	if o.BadgeHost == "" {
		o.BadgeHost = defaultBadgeHost
	}
	if o.BadgeColor == "" {
		o.BadgeColor = defaultBadgeColor
	}
	if o.BadgeStyle == "" {
		o.BadgeStyle = defaultBadgeStyle
	}
	return o
}

// Resolver turns raw skill strings into ResolvedSkills via a cascading
// fallback chain: cache, curated-alias + exact catalog lookup, catalog
// alias, custom override, text badge. Resolution is deterministic and
// pure in-memory; the resolver is safe for concurrent use (the cache
// is internally locked, everything else is read-only).
type Resolver struct {
	catalog    *Catalog
	classifier *taxonomy.Classifier
	cache      *lru.Cache[string, ResolvedSkill]
	opts       ResolverOptions
}

// NewResolver builds a Resolver over a loaded catalog.
func NewResolver(catalog *Catalog, opts ResolverOptions) (*Resolver, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	opts = opts.withDefaults()

	cache, err := lru.New[string, ResolvedSkill](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution cache: %w", err)
	}

	classifier := taxonomy.NewClassifier(func(s string) bool {
		return catalog.Has(NormalizeAlias(s))
	})

	return &Resolver{
		catalog:    catalog,
		classifier: classifier,
		cache:      cache,
		opts:       opts,
	}, nil
}

// Resolve maps one raw skill string to its icon and category. It is
// total: any input, including the empty string, produces a result with
// a category and an icon URL, and no condition is reported as an error.
func (r *Resolver) Resolve(raw string) ResolvedSkill {
	key := normalize(raw)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	resolved := r.resolve(raw, key)
	r.cache.Add(key, resolved)
	return resolved
}

func (r *Resolver) resolve(raw, key string) ResolvedSkill {
	resolved := ResolvedSkill{
		InputText: raw,
		Category:  r.classifier.ResolveCategory(raw),
	}

	// Exact tier: curated alias rewrite, then catalog lookup.
	if entry := r.catalog.LookupExact(NormalizeAlias(raw)); entry != nil {
		resolved.CanonicalName = entry.Name
		resolved.IconURL = r.iconURL(entry)
		resolved.Tier = TierExact
		return resolved
	}

	// Alias tier: the raw string itself may be a dataset altname the
	// curated table does not carry.
	if entry := r.catalog.LookupExact(key); entry != nil {
		resolved.CanonicalName = entry.Name
		resolved.IconURL = r.iconURL(entry)
		resolved.Tier = TierAlias
		return resolved
	}

	// Custom override tier: well-known tools absent from the dataset.
	if overrideURL := lookupOverride(key); overrideURL != "" {
		resolved.IconURL = overrideURL
		resolved.Tier = TierCustomOverride
		return resolved
	}

	// Badge fallback tier: always matches.
	resolved.IconURL = r.badgeURL(raw)
	resolved.Tier = TierBadgeFallback
	return resolved
}

// ResolveBatch resolves raws in order. Duplicates (after normalization)
// are computed once and served from the cache.
func (r *Resolver) ResolveBatch(raws []string) []ResolvedSkill {
	results := make([]ResolvedSkill, len(raws))
	for i, raw := range raws {
		results[i] = r.Resolve(raw)
	}
	return results
}

// Search proxies catalog substring search for interactive pickers.
func (r *Resolver) Search(query string, limit int) []string {
	return r.catalog.Search(query, limit)
}

// ClearCache drops all memoized resolutions. Only needed if the
// catalog is ever swapped; the dataset itself never changes at runtime.
func (r *Resolver) ClearCache() {
	r.cache.Purge()
}

// CacheLen returns the current number of memoized resolutions.
func (r *Resolver) CacheLen() int {
	return r.cache.Len()
}

// iconURL builds the CDN URL for an entry's default variant. The
// format is embedded in persisted documents, so it must stay stable.
func (r *Resolver) iconURL(entry *Entry) string {
	variant := entry.DefaultVariant()
	return fmt.Sprintf("%s/%s/%s-%s.svg", r.opts.CDNBase, entry.Name, entry.Name, variant)
}

// badgeURL synthesizes a generic text-badge URL for skills without a
// dedicated icon. Shields escaping doubles literal dashes before the
// label is URL-encoded.
func (r *Resolver) badgeURL(raw string) string {
	label := strings.TrimSpace(raw)
	if label == "" {
		label = "skill"
	}
	escaped := url.PathEscape(strings.ReplaceAll(label, "-", "--"))
	logo := url.QueryEscape(strings.ToLower(label))
	return fmt.Sprintf("%s/badge/%s-%s?style=%s&logo=%s",
		r.opts.BadgeHost, escaped, r.opts.BadgeColor, r.opts.BadgeStyle, logo)
}
