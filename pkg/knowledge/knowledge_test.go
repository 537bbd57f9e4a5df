package knowledge

import (
	"context"
	"testing"

	"github.com/sourabhkumawat/healops/ent/knowledgechunk"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPastFixes_Idempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetriever(client, nil)
	ctx := context.Background()

	fixes := []PastFix{
		{Description: "null check before dereference", Patch: "diff --git a/x b/x", IncidentID: "inc-1"},
	}
	r.IndexPastFixes(ctx, fixes)
	r.IndexPastFixes(ctx, fixes)

	n, err := client.KnowledgeChunk.Query().
		Where(knowledgechunk.SourceEQ(knowledgechunk.SourcePastFix)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRetrieveRelevantKnowledge_RanksByRelevance(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetriever(client, nil)
	ctx := context.Background()

	r.IndexPastFixes(ctx, []PastFix{
		{Description: "fixed null pointer dereference in user lookup by adding a guard"},
		{Description: "rotated database credentials after auth failure"},
		{Description: "increased timeout for slow payment gateway"},
	})

	items := r.RetrieveRelevantKnowledge(ctx, "null pointer dereference in user lookup", 2)
	require.Len(t, items, 2)
	assert.Contains(t, items[0].Content, "null pointer dereference")
	assert.GreaterOrEqual(t, items[0].Score, items[1].Score)
}

func TestRetrieveRelevantKnowledge_EmptyOnNoData(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetriever(client, nil)

	items := r.RetrieveRelevantKnowledge(context.Background(), "anything", 3)
	assert.Empty(t, items)
}

func TestIndexCodebasePatterns(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetriever(client, nil)
	ctx := context.Background()

	r.IndexCodebasePatterns(ctx, []string{"src/api/users.ts", "src/db/client.ts", ""})

	n, err := client.KnowledgeChunk.Query().
		Where(knowledgechunk.SourceEQ(knowledgechunk.SourceCodePattern)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items := r.RetrieveForPlanning(ctx, "users endpoint returns 500", []string{"src/api/users.ts"})
	require.NotEmpty(t, items)
	assert.Contains(t, items[0].Content, "users.ts")
}

func TestHashingEmbedderDeterministic(t *testing.T) {
	e := HashingEmbedder{}
	a, err := e.Embed(context.Background(), []string{"null pointer at users.ts"})
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), []string{"null pointer at users.ts"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.InDelta(t, 1.0, cosine(a[0], b[0]), 1e-9)
}

func TestCosineDimensionMismatch(t *testing.T) {
	assert.Zero(t, cosine([]float64{1, 0}, []float64{1, 0, 0}))
	assert.Zero(t, cosine(nil, nil))
}
