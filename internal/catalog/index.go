package catalog

import (
	"errors"
	"sort"
	"strings"

	"cinescan/internal/textnorm"
)

// ErrUnknownAlias is returned by Index lookups for keys the index does not
// hold. Callers wanting best-effort matching should use Resolver or the
// mention detector instead, which never fail on a miss.
var ErrUnknownAlias = errors.New("catalog: unknown alias")

// DefaultLocalePriority is the locale order consulted for localized titles
// when Options does not override it.
var DefaultLocalePriority = []string{"ru", "en"}

// Options configures index construction.
type Options struct {
	// LocalePriority lists locale codes whose "title_<locale>" values
	// contribute aliases, in priority order. Nil selects
	// DefaultLocalePriority.
	LocalePriority []string
}

// Index is the immutable normalized-alias index built from a catalog. Every
// normalized alias maps to its owning film and to the original alias text
// for display. Safe for concurrent reads.
type Index struct {
	byAlias        map[string]Film
	display        map[string]string
	aliases        []string
	maxAliasTokens int
}

// BuildIndex folds catalog records into an Index snapshot. Candidate aliases
// per record are the title, the original title, explicit aliases, and one
// localized title per configured locale; empty values and empty normalized
// forms are skipped. When two records normalize to the same alias the
// later record wins (last-write-wins, in record order).
func BuildIndex(records []Record, opts Options) *Index {
	locales := opts.LocalePriority
	if locales == nil {
		locales = DefaultLocalePriority
	}

	byAlias := make(map[string]Film)
	display := make(map[string]string)
	maxTokens := 1

	for _, record := range records {
		film := record.Film()
		for _, alias := range candidateAliases(record, locales) {
			normalized := textnorm.Normalize(alias)
			if normalized == "" {
				continue
			}
			byAlias[normalized] = film
			display[normalized] = alias
			if n := len(strings.Fields(normalized)); n > maxTokens {
				maxTokens = n
			}
		}
	}

	aliases := make([]string, 0, len(byAlias))
	for key := range byAlias {
		aliases = append(aliases, key)
	}
	sort.Strings(aliases)

	return &Index{
		byAlias:        byAlias,
		display:        display,
		aliases:        aliases,
		maxAliasTokens: maxTokens,
	}
}

// candidateAliases returns the record's alias candidates in a deterministic
// order, deduplicated on the raw string.
func candidateAliases(record Record, locales []string) []string {
	candidates := make([]string, 0, 2+len(record.Aliases)+len(locales))
	seen := make(map[string]struct{})
	add := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	add(record.Title)
	add(record.OriginalTitle)
	for _, alias := range record.Aliases {
		add(alias)
	}
	for _, locale := range locales {
		add(record.LocalizedTitles[locale])
	}
	return candidates
}

// Aliases returns all normalized alias keys in sorted order. The returned
// slice is shared; callers must not modify it.
func (x *Index) Aliases() []string {
	return x.aliases
}

// Len reports the number of distinct normalized aliases.
func (x *Index) Len() int {
	return len(x.byAlias)
}

// MaxAliasTokens is the largest whitespace-token count over all normalized
// aliases, at least 1. It bounds the mention detector's window size.
func (x *Index) MaxAliasTokens() int {
	return x.maxAliasTokens
}

// FilmForAlias returns the film owning the normalized alias key.
func (x *Index) FilmForAlias(key string) (Film, error) {
	film, ok := x.byAlias[key]
	if !ok {
		return Film{}, ErrUnknownAlias
	}
	return film, nil
}

// DisplayAlias returns the original display form recorded for the
// normalized alias key.
func (x *Index) DisplayAlias(key string) (string, error) {
	displayForm, ok := x.display[key]
	if !ok {
		return "", ErrUnknownAlias
	}
	return displayForm, nil
}
