package analysis

import (
	"context"
	"errors"
	"testing"

	"cinescan/internal/catalog"
	"cinescan/internal/mentions"
	"cinescan/internal/similarity"
)

type stubExtractor struct {
	err error
}

func (s stubExtractor) ExtractBatch(_ context.Context, texts []string) ([][]Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	results := make([][]Entity, len(texts))
	for i, text := range texts {
		if len(text) >= 4 {
			results[i] = []Entity{{Text: text[:4], Label: "MISC", Start: 0, End: 4}}
		}
	}
	return results, nil
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	rows := make([][]float64, len(texts))
	for i := range texts {
		rows[i] = []float64{float64(i), 1}
	}
	return rows, nil
}

type stubClusterer struct{}

func (stubClusterer) Cluster(_ context.Context, texts []string, _ [][]float64) (*Clustering, error) {
	labels := make([]int, len(texts))
	for i := range labels {
		if i%2 == 1 {
			labels[i] = NoCluster
		}
	}
	return &Clustering{
		Labels:       labels,
		Topics:       map[int][]string{0: {"films"}},
		ClusterSizes: map[int]int{0: (len(texts) + 1) / 2},
	}, nil
}

func testDetector() *mentions.Detector {
	idx := catalog.BuildIndex([]catalog.Record{
		{ID: "tt1375666", Title: "Inception"},
	}, catalog.Options{})
	return mentions.New(idx, similarity.WeightedRatio{}, mentions.Options{Threshold: 85})
}

func TestAnalyzeMentionOnly(t *testing.T) {
	p := NewPipeline(testDetector(), PipelineOptions{})
	texts := []string{"thoughts on Inception", "no films here"}

	result, err := p.Analyze(context.Background(), texts, true)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(result.Posts) != 2 {
		t.Fatalf("Posts = %d, want 2", len(result.Posts))
	}
	if len(result.Posts[0].Mentions) == 0 {
		t.Error("first post has no mentions, want Inception")
	}
	if len(result.Posts[1].Mentions) != 0 {
		t.Errorf("second post mentions = %+v, want none", result.Posts[1].Mentions)
	}
	if result.Clustering != nil {
		t.Error("clustering present without an embedder")
	}
	if result.Posts[0].Entities != nil || result.Posts[0].Embedding != nil {
		t.Error("collaborator outputs present without collaborators")
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	p := NewPipeline(testDetector(), PipelineOptions{
		Extractor: stubExtractor{},
		Embedder:  stubEmbedder{},
		Clusterer: stubClusterer{},
	})
	texts := []string{"watched Inception today", "something else entirely", "third text"}

	result, err := p.Analyze(context.Background(), texts, true)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for i, post := range result.Posts {
		if post.Text != texts[i] {
			t.Errorf("post %d text = %q, want positional zip", i, post.Text)
		}
		if len(post.Embedding) != 2 {
			t.Errorf("post %d embedding = %v", i, post.Embedding)
		}
		if len(post.Entities) == 0 {
			t.Errorf("post %d has no entities", i)
		}
	}
	if result.Clustering == nil {
		t.Fatal("clustering missing")
	}
	if got := result.Clustering.NoiseRatio(); got <= 0 || got >= 1 {
		t.Errorf("NoiseRatio() = %v, want fraction of noise labels", got)
	}

	clustered := result.PostsByTopic(0)
	if len(clustered) != 2 {
		t.Errorf("PostsByTopic(0) = %d posts, want 2", len(clustered))
	}
}

func TestAnalyzeSingleTextSkipsClustering(t *testing.T) {
	p := NewPipeline(testDetector(), PipelineOptions{
		Embedder:  stubEmbedder{},
		Clusterer: stubClusterer{},
	})
	result, err := p.Analyze(context.Background(), []string{"only one"}, true)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Clustering != nil {
		t.Error("clustering ran for a single text")
	}
}

func TestAnalyzeExtractorError(t *testing.T) {
	wantErr := errors.New("model unavailable")
	p := NewPipeline(testDetector(), PipelineOptions{Extractor: stubExtractor{err: wantErr}})

	_, err := p.Analyze(context.Background(), []string{"text"}, false)
	if !errors.Is(err, wantErr) {
		t.Errorf("Analyze() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestNoiseRatioEmpty(t *testing.T) {
	var c *Clustering
	if got := c.NoiseRatio(); got != 0 {
		t.Errorf("nil NoiseRatio() = %v, want 0", got)
	}
	empty := &Clustering{}
	if got := empty.NoiseRatio(); got != 0 {
		t.Errorf("empty NoiseRatio() = %v, want 0", got)
	}
}
