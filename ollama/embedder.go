package ollama

import (
	"context"

	"github.com/Tharun135/docscan"
	"github.com/avast/retry-go/v4"
	"github.com/sashabaranov/go-openai"
)

// DefaultEmbedModel is used for embeddings when none is configured.
const DefaultEmbedModel = "nomic-embed-text"

// Ensure Embedder implements docscan.Embedder at compile time.
var _ docscan.Embedder = (*Embedder)(nil)

// Embedder implements docscan.Embedder using an Ollama embedding model.
type Embedder struct {
	client *openai.Client
	model  string
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *openai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch returns embedding vectors for texts, in order.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, docscan.Errorf(docscan.EINVALID, "no texts to embed")
	}
	for _, text := range texts {
		if text == "" {
			return nil, docscan.Errorf(docscan.EINVALID, "cannot embed empty text")
		}
	}

	req := openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	}

	resp, err := retry.DoWithData(func() (openai.EmbeddingResponse, error) {
		return e.client.CreateEmbeddings(ctx, req)
	}, retry.Context(ctx), retry.Attempts(retryAttempts), retry.LastErrorOnly(true))
	if err != nil {
		if isUnavailable(err) {
			return nil, docscan.Errorf(docscan.EUNAVAILABLE, "ollama unreachable: %s", err)
		}
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, docscan.Errorf(docscan.EINTERNAL, "expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vecs := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vecs[i] = data.Embedding
	}
	return vecs, nil
}
