// Package resolver converts raw content-service tag representations into
// canonical facet values and normalizes whole records into Recipes. All tag
// resolution is lossy by design: a tag that cannot be mapped is dropped and
// counted, never guessed at, and never fails the containing record.
package resolver

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/cookpedia/pantry/internal/facet"
	"github.com/cookpedia/pantry/internal/metrics"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ResolveCategories maps raw category tags (numeric identifiers or textual
// labels) to canonical slugs. Unknown and malformed elements are dropped.
// Duplicates are removed, preserving first-seen order.
func ResolveCategories(raw []any) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range raw {
		slug, ok := resolveCategory(v)
		if !ok {
			metrics.Default.TagsDropped.WithLabelValues("category").Inc()
			logDroppedCategory(v)
			continue
		}
		if !seen[slug] {
			seen[slug] = true
			out = append(out, slug)
		}
	}
	return out
}

// resolveCategory maps one raw tag to a canonical slug. Numeric JSON values
// arrive as float64; numeric strings are treated as identifiers too.
func resolveCategory(v any) (string, bool) {
	switch t := v.(type) {
	case int:
		return facet.SlugForID(t)
	case float64:
		return facet.SlugForID(int(t))
	case string:
		if digitsOnly.MatchString(t) {
			id, err := strconv.Atoi(t)
			if err != nil {
				return "", false
			}
			return facet.SlugForID(id)
		}
		candidate := facet.NormalizeLabel(t)
		if facet.IsSlug(candidate) {
			return candidate, true
		}
		return "", false
	default:
		return "", false
	}
}

// logDroppedCategory logs an unresolvable category tag at warn level. For
// textual tags it includes the nearest known slug as a hint; the hint is
// never applied.
func logDroppedCategory(v any) {
	s, ok := v.(string)
	if !ok {
		slog.Warn("dropping unresolvable category tag", "tag", v)
		return
	}
	candidate := facet.NormalizeLabel(s)
	nearest, best := "", -1
	for _, slug := range facet.Slugs() {
		if d := levenshtein.Distance(candidate, slug, nil); best < 0 || d < best {
			nearest, best = slug, d
		}
	}
	slog.Warn("dropping unresolvable category tag", "tag", s, "nearest", nearest)
}

// ResolveIngredientTags produces the record's ingredient tag list using the
// first applicable strategy, never merging them:
//
//  1. pre-resolved names, deduplicated in first-seen order;
//  2. numeric identifiers mapped through the ingredient facet table, in
//     order of first identifier seen;
//  3. free-text tags deduplicated as-is.
func ResolveIngredientTags(names []string, raw []any) []string {
	if len(names) > 0 {
		return dedupe(names)
	}

	var ids []int
	seenID := make(map[int]bool)
	for _, v := range raw {
		id, ok := numericTag(v)
		if !ok {
			continue
		}
		if !seenID[id] {
			seenID[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) > 0 {
		var out []string
		for _, id := range ids {
			name, ok := facet.IngredientNameForID(id)
			if !ok {
				metrics.Default.TagsDropped.WithLabelValues("ingredient").Inc()
				slog.Warn("dropping unresolvable ingredient tag", "id", id)
				continue
			}
			out = append(out, name)
		}
		return out
	}

	var texts []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				texts = append(texts, s)
			}
		}
	}
	return dedupe(texts)
}

// numericTag reports whether a raw ingredient tag is an identifier: a JSON
// number or a string of digits.
func numericTag(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	case string:
		if digitsOnly.MatchString(t) {
			id, err := strconv.Atoi(t)
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}

// EncodeCategories maps display labels (or slugs) back to numeric
// identifiers for outbound submission. Unknown labels are dropped, matching
// the lossy inbound direction, so encode after decode round-trips.
func EncodeCategories(labels []string) []int {
	var out []int
	seen := make(map[int]bool)
	for _, label := range labels {
		slug := facet.NormalizeLabel(label)
		id, ok := facet.IDForSlug(slug)
		if !ok {
			metrics.Default.TagsDropped.WithLabelValues("category").Inc()
			slog.Warn("dropping unknown category label on submission", "label", label)
			continue
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func dedupe(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
