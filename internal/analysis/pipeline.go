package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"cinescan/internal/logging"
	"cinescan/internal/mentions"
)

// PostAnalysis is the combined per-text result.
type PostAnalysis struct {
	Text      string             `json:"text"`
	Entities  []Entity           `json:"entities,omitempty"`
	Mentions  []mentions.Mention `json:"filmMentions"`
	Embedding []float64          `json:"embedding,omitempty"`
}

// Result is the outcome of one batch analysis.
type Result struct {
	Posts      []PostAnalysis `json:"posts"`
	Clustering *Clustering    `json:"clustering,omitempty"`
}

// PostsByTopic returns the posts assigned the given cluster label. Without
// clustering the result is empty.
func (r *Result) PostsByTopic(label int) []PostAnalysis {
	if r == nil || r.Clustering == nil {
		return nil
	}
	var posts []PostAnalysis
	for i, l := range r.Clustering.Labels {
		if l == label && i < len(r.Posts) {
			posts = append(posts, r.Posts[i])
		}
	}
	return posts
}

// Pipeline sequences the analysis stages over a batch of texts. The mention
// detector is required; extractor, embedder, and clusterer are optional and
// their stages are skipped when nil.
type Pipeline struct {
	detector  *mentions.Detector
	extractor EntityExtractor
	embedder  Embedder
	clusterer TopicClusterer
	logger    *slog.Logger
}

// PipelineOptions wires optional collaborators into a pipeline.
type PipelineOptions struct {
	Extractor EntityExtractor
	Embedder  Embedder
	Clusterer TopicClusterer
	Logger    *slog.Logger
}

// NewPipeline builds a pipeline around the given mention detector.
func NewPipeline(detector *mentions.Detector, opts PipelineOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		detector:  detector,
		extractor: opts.Extractor,
		embedder:  opts.Embedder,
		clusterer: opts.Clusterer,
		logger:    logger,
	}
}

// Analyze runs every wired stage over texts and zips the per-text results
// positionally. Clustering runs only when requested, a clusterer and an
// embedder are wired, and more than one text is supplied.
func (p *Pipeline) Analyze(ctx context.Context, texts []string, cluster bool) (*Result, error) {
	var entitiesPerPost [][]Entity
	if p.extractor != nil {
		var err error
		entitiesPerPost, err = p.extractor.ExtractBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("extract entities: %w", err)
		}
		if len(entitiesPerPost) != len(texts) {
			return nil, fmt.Errorf("extract entities: got %d results for %d texts", len(entitiesPerPost), len(texts))
		}
	}

	mentionsPerPost := make([][]mentions.Mention, len(texts))
	for i, text := range texts {
		mentionsPerPost[i] = p.detector.Detect(text)
	}

	var embeddings [][]float64
	if p.embedder != nil {
		var err error
		embeddings, err = p.embedder.Embed(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed texts: %w", err)
		}
		if len(embeddings) != len(texts) {
			return nil, fmt.Errorf("embed texts: got %d rows for %d texts", len(embeddings), len(texts))
		}
	}

	posts := make([]PostAnalysis, len(texts))
	for i, text := range texts {
		post := PostAnalysis{Text: text, Mentions: mentionsPerPost[i]}
		if entitiesPerPost != nil {
			post.Entities = entitiesPerPost[i]
		}
		if embeddings != nil {
			post.Embedding = embeddings[i]
		}
		posts[i] = post
	}

	result := &Result{Posts: posts}
	if cluster && p.clusterer != nil && embeddings != nil && len(texts) > 1 {
		clustering, err := p.clusterer.Cluster(ctx, texts, embeddings)
		if err != nil {
			return nil, fmt.Errorf("cluster topics: %w", err)
		}
		result.Clustering = clustering
	}

	p.logger.Debug("batch analysis complete",
		logging.Int("texts", len(texts)),
		logging.Bool("clustered", result.Clustering != nil))
	return result, nil
}
