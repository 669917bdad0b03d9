package mentions

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"cinescan/internal/catalog"
	"cinescan/internal/logging"
	"cinescan/internal/similarity"
	"cinescan/internal/textnorm"
)

// wordPattern captures maximal word runs: letters, digits, and underscores,
// with apostrophes and hyphens allowed between word characters. Leading and
// trailing punctuation never joins a token, so quoted titles keep clean
// spans.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['-]+[\p{L}\p{N}_]+)*`)

// minPhraseLength discards window phrases too short to score meaningfully.
const minPhraseLength = 2

// Mention is one accepted, positioned match of a text window to a film.
// Start and End are byte offsets into the original input; Text is always
// input[Start:End].
type Mention struct {
	Film  catalog.Film `json:"film"`
	Text  string       `json:"text"`
	Score float64      `json:"score"`
	Start int          `json:"start"`
	End   int          `json:"end"`
}

// Detector finds film mentions in arbitrary text. It is immutable after
// construction and safe for concurrent use.
type Detector struct {
	index     *catalog.Index
	scorer    similarity.Scorer
	threshold float64
	maxWindow int
	logger    *slog.Logger
}

// Options configures detector construction.
type Options struct {
	// Threshold is the minimum accepted similarity score in [0,100].
	Threshold float64
	// Logger receives per-scan diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// New builds a detector over a loaded index. The window size bound is taken
// from the index's maximum alias token count.
func New(index *catalog.Index, scorer similarity.Scorer, opts Options) *Detector {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Detector{
		index:     index,
		scorer:    scorer,
		threshold: opts.Threshold,
		maxWindow: index.MaxAliasTokens(),
		logger:    logger,
	}
}

type token struct {
	start      int
	end        int
	normalized string
}

// Detect returns all accepted film mentions in text, sorted ascending by
// start offset with ties broken by descending score. Empty text, text
// without word tokens, and an empty index all yield an empty result.
func (d *Detector) Detect(text string) []Mention {
	if d.index.Len() == 0 {
		return nil
	}
	tokens := d.tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	type spanKey struct{ start, end int }
	accepted := make(map[spanKey]Mention)

	for startIdx := range tokens {
		for window := 1; window <= d.maxWindow; window++ {
			endIdx := startIdx + window
			if endIdx > len(tokens) {
				break
			}
			phrase := joinNormalized(tokens[startIdx:endIdx])
			if len([]rune(phrase)) < minPhraseLength {
				continue
			}
			aliasKey, score, ok := d.bestAlias(phrase)
			if !ok || score < d.threshold {
				continue
			}
			film, err := d.index.FilmForAlias(aliasKey)
			if err != nil {
				continue
			}
			start := tokens[startIdx].start
			end := tokens[endIdx-1].end
			key := spanKey{start, end}
			if prev, exists := accepted[key]; exists && prev.Score >= score {
				continue
			}
			accepted[key] = Mention{
				Film:  film,
				Text:  text[start:end],
				Score: score,
				Start: start,
				End:   end,
			}
		}
	}

	result := make([]Mention, 0, len(accepted))
	for _, mention := range accepted {
		result = append(result, mention)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Start != result[j].Start {
			return result[i].Start < result[j].Start
		}
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].End < result[j].End
	})

	if len(result) > 0 {
		d.logger.Debug("mention scan complete",
			logging.Int("tokens", len(tokens)),
			logging.Int("mentions", len(result)),
			logging.Float64("threshold", d.threshold))
	}
	return result
}

// AnyMatch reports whether text contains at least one accepted mention.
func (d *Detector) AnyMatch(text string) bool {
	return len(d.Detect(text)) > 0
}

// tokenize records every word token with its byte span in the original
// text. Tokens whose normalized form is empty are dropped and do not occupy
// a window slot.
func (d *Detector) tokenize(text string) []token {
	spans := wordPattern.FindAllStringIndex(text, -1)
	tokens := make([]token, 0, len(spans))
	for _, span := range spans {
		normalized := textnorm.Normalize(text[span[0]:span[1]])
		if normalized == "" {
			continue
		}
		tokens = append(tokens, token{start: span[0], end: span[1], normalized: normalized})
	}
	return tokens
}

// bestAlias returns the highest-scoring index alias for the phrase.
func (d *Detector) bestAlias(phrase string) (string, float64, bool) {
	var (
		bestKey   string
		bestScore float64
		found     bool
	)
	for _, key := range d.index.Aliases() {
		score := d.scorer.Ratio(phrase, key)
		if !found || score > bestScore {
			bestKey = key
			bestScore = score
			found = true
		}
	}
	return bestKey, bestScore, found
}

func joinNormalized(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.normalized
	}
	return strings.Join(parts, " ")
}
