package similarity

import (
	"math"
	"strings"
)

// TokenCosine scores strings by the cosine similarity of their term-frequency
// vectors. Word order and repetition counts matter, character-level edits do
// not, which suits longer multi-word titles where typo tolerance is less
// important than shared vocabulary.
type TokenCosine struct{}

// Ratio implements Scorer.
func (TokenCosine) Ratio(a, b string) float64 {
	va, na := termVector(a)
	vb, nb := termVector(b)
	if na == 0 || nb == 0 {
		if na == 0 && nb == 0 {
			return 100
		}
		return 0
	}

	var dot float64
	for term, count := range va {
		if other, ok := vb[term]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return 100 * dot / (na * nb)
}

func termVector(s string) (map[string]float64, float64) {
	terms := strings.Fields(s)
	if len(terms) == 0 {
		return nil, 0
	}
	counts := make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return counts, math.Sqrt(norm)
}
