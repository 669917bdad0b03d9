package analysis

import "context"

// Entity is one named entity found in a text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// EntityExtractor finds named entities in a batch of texts. Results keep the
// input order: one entity slice per input text.
type EntityExtractor interface {
	ExtractBatch(ctx context.Context, texts []string) ([][]Entity, error)
}

// Embedder produces one real-valued vector per input text, in input order.
// Rows may be unit-normalized depending on the implementation.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// NoCluster is the label assigned to texts that fall into no cluster.
const NoCluster = -1

// Clustering is the topic-clustering output: one label per input text
// (NoCluster for noise), keywords per cluster, and cluster sizes.
type Clustering struct {
	Labels       []int            `json:"labels"`
	Topics       map[int][]string `json:"topics"`
	ClusterSizes map[int]int      `json:"clusterSizes"`
}

// NoiseRatio reports the fraction of texts assigned to no cluster.
func (c *Clustering) NoiseRatio() float64 {
	if c == nil || len(c.Labels) == 0 {
		return 0
	}
	noise := 0
	for _, label := range c.Labels {
		if label == NoCluster {
			noise++
		}
	}
	return float64(noise) / float64(len(c.Labels))
}

// TopicClusterer groups texts into topics given their embeddings.
type TopicClusterer interface {
	Cluster(ctx context.Context, texts []string, embeddings [][]float64) (*Clustering, error)
}
