package similarity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Scorer computes an approximate similarity between two strings, returning a
// score in [0,100] where 100 is an exact match.
type Scorer interface {
	Ratio(a, b string) float64
}

// Names of the built-in scorers accepted by ForName.
const (
	NameWeighted    = "weighted"
	NameJaroWinkler = "jaro-winkler"
	NameCosine      = "cosine"
)

// ForName returns the scorer registered under name. An empty name selects
// WeightedRatio.
func ForName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameWeighted:
		return WeightedRatio{}, nil
	case NameJaroWinkler:
		return JaroWinkler{}, nil
	case NameCosine:
		return TokenCosine{}, nil
	default:
		return nil, fmt.Errorf("similarity: unknown scorer %q", name)
	}
}

// WeightedRatio blends several similarity measures and keeps the best one.
// Strings of comparable length are compared whole plus via token-sort and
// token-set variants; strongly unbalanced lengths switch to partial
// (best-substring) comparison with a penalty, so a short query can still
// match inside a long alias without scoring 100 outright.
type WeightedRatio struct{}

// Ratio implements Scorer.
func (WeightedRatio) Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}

	best := ratio(a, b)

	longer, shorter := float64(la), float64(lb)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	lengthRatio := longer / shorter

	const tokenScale = 0.95
	if lengthRatio < 1.5 {
		if v := tokenSortRatio(a, b) * tokenScale; v > best {
			best = v
		}
		if v := tokenSetRatio(a, b) * tokenScale; v > best {
			best = v
		}
		return best
	}

	// Pure containment of one string in the other tops out at 80 here,
	// under the default acceptance threshold.
	partialScale := 0.8
	if lengthRatio >= 8 {
		partialScale = 0.6
	}
	if v := partialRatio(a, b) * partialScale; v > best {
		best = v
	}
	if v := partialTokenSortRatio(a, b) * tokenScale * partialScale; v > best {
		best = v
	}
	if v := partialTokenSetRatio(a, b) * tokenScale * partialScale; v > best {
		best = v
	}
	return best
}

// JaroWinkler scales matchr's Jaro-Winkler similarity to [0,100].
type JaroWinkler struct{}

// Ratio implements Scorer.
func (JaroWinkler) Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false) * 100
}

// ratio is the indel-distance similarity: 100 * 2*LCS / (len(a)+len(b)).
// Insertions and deletions count, substitutions do not, so a transposed
// letter pair costs two edits out of the combined length rather than
// flattening the score the way substitution distance would.
func ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := lcsLength(ra, rb)
	return 100 * float64(2*lcs) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a rolling
// single-row table.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// partialRatio slides a window the length of the shorter string across the
// longer one and returns the best window ratio.
func partialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	if len(shorter) == len(longer) {
		return ratio(string(shorter), string(longer))
	}
	var best float64
	short := string(shorter)
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := string(longer[start : start+len(shorter)])
		if v := ratio(short, window); v > best {
			best = v
			if best == 100 {
				break
			}
		}
	}
	return best
}

func tokenSortRatio(a, b string) float64 {
	return ratio(sortTokens(a), sortTokens(b))
}

func partialTokenSortRatio(a, b string) float64 {
	return partialRatio(sortTokens(a), sortTokens(b))
}

// tokenSetRatio compares the shared-token core against each side's full
// sorted token string, so word reordering and extra words on one side do not
// ruin the score.
func tokenSetRatio(a, b string) float64 {
	return tokenSet(a, b, ratio)
}

func partialTokenSetRatio(a, b string) float64 {
	return tokenSet(a, b, partialRatio)
}

func tokenSet(a, b string, compare func(string, string) float64) float64 {
	setA := tokenSetOf(a)
	setB := tokenSetOf(b)

	var common, onlyA, onlyB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	core := strings.Join(common, " ")
	combinedA := strings.TrimSpace(core + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(core + " " + strings.Join(onlyB, " "))

	best := compare(core, combinedA)
	if v := compare(core, combinedB); v > best {
		best = v
	}
	if v := compare(combinedA, combinedB); v > best {
		best = v
	}
	return best
}

func tokenSetOf(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}
