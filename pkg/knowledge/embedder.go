package knowledge

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	embedv1 "github.com/sourabhkumawat/healops/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Embedder turns texts into fixed-dimension vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// GRPCEmbedder calls the Python embedding sidecar.
type GRPCEmbedder struct {
	conn   *grpc.ClientConn
	client embedv1.EmbeddingServiceClient
	model  string
}

// NewGRPCEmbedder connects to the embedding sidecar at addr.
func NewGRPCEmbedder(addr, model string) (*GRPCEmbedder, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to embedding service at %s: %w", addr, err)
	}
	return &GRPCEmbedder{
		conn:   conn,
		client: embedv1.NewEmbeddingServiceClient(conn),
		model:  model,
	}, nil
}

// Embed sends the texts to the sidecar in a single call.
func (e *GRPCEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := e.client.Embed(ctx, &embedv1.EmbedRequest{Texts: texts, Model: e.model})
	if err != nil {
		return nil, fmt.Errorf("gRPC Embed call failed: %w", err)
	}
	if len(resp.Vectors) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(resp.Vectors), len(texts))
	}
	out := make([][]float64, len(resp.Vectors))
	for i, v := range resp.Vectors {
		out[i] = v.Values
	}
	return out, nil
}

// Close releases the gRPC connection.
func (e *GRPCEmbedder) Close() error {
	return e.conn.Close()
}

// hashingDims is the vector width of the local fallback embedder.
const hashingDims = 256

// HashingEmbedder is a deterministic, dependency-free fallback: token
// feature hashing into a fixed-width vector, L2-normalized. Rankings are
// cruder than real embeddings but stable and always available.
type HashingEmbedder struct{}

// Embed never fails.
func (HashingEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = hashEmbed(t)
	}
	return out, nil
}

func hashEmbed(text string) []float64 {
	vec := make([]float64, hashingDims)
	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		vec[h.Sum32()%hashingDims]++
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}

// cosine returns the cosine similarity of two vectors; 0 when dimensions
// differ or either vector is zero.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
