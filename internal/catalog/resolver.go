package catalog

import (
	"sort"

	"cinescan/internal/similarity"
	"cinescan/internal/textnorm"
)

// DefaultResolveLimit bounds Resolve results when the caller passes a
// non-positive limit.
const DefaultResolveLimit = 5

// Match is one ranked resolver result.
type Match struct {
	Film         Film    `json:"film"`
	MatchedAlias string  `json:"matchedAlias"`
	Score        float64 `json:"score"`
}

// Resolver answers single free-text queries against a built index. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	index     *Index
	scorer    similarity.Scorer
	threshold float64
}

// NewResolver builds a resolver over an already-loaded index. The threshold
// is the minimum accepted score in [0,100].
func NewResolver(index *Index, scorer similarity.Scorer, threshold float64) *Resolver {
	return &Resolver{index: index, scorer: scorer, threshold: threshold}
}

// Resolve returns up to limit catalog matches for the query, most similar
// first, all scoring at or above the resolver threshold. An empty or
// all-punctuation query yields no matches, not an error.
func (r *Resolver) Resolve(query string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultResolveLimit
	}
	normalized := textnorm.Normalize(query)
	if normalized == "" {
		return nil
	}

	type candidate struct {
		key   string
		score float64
	}
	candidates := make([]candidate, 0, limit)
	for _, key := range r.index.Aliases() {
		score := r.scorer.Ratio(normalized, key)
		if score < r.threshold {
			continue
		}
		candidates = append(candidates, candidate{key: key, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].key < candidates[j].key
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		film, err := r.index.FilmForAlias(c.key)
		if err != nil {
			continue
		}
		displayForm, err := r.index.DisplayAlias(c.key)
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			Film:         film,
			MatchedAlias: displayForm,
			Score:        c.score,
		})
	}
	return matches
}

// HasMatch reports whether the query resolves to at least one confident
// match.
func (r *Resolver) HasMatch(query string) bool {
	return len(r.Resolve(query, 1)) > 0
}
