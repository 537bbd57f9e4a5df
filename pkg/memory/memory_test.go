package memory

import (
	"context"
	"testing"

	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFixThenRetrieve(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := context.Background()

	s.StoreFix(ctx, "abc123", "null check before dereference", "diff --git a/x.js b/x.js")

	got := s.RetrieveContext(ctx, "abc123")
	require.Len(t, got.KnownFixes, 1)
	assert.Equal(t, "null check before dereference", got.KnownFixes[0].Description)
	assert.Equal(t, "diff --git a/x.js b/x.js", got.KnownFixes[0].Patch)
}

func TestStoreFix_Idempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := context.Background()

	s.StoreFix(ctx, "abc123", "null check", "patch-a")
	s.StoreFix(ctx, "abc123", "null check", "patch-a")
	s.StoreFix(ctx, "abc123", "different fix", "patch-b")

	got := s.RetrieveContext(ctx, "abc123")
	assert.Len(t, got.KnownFixes, 2)
}

func TestRetrieveContext_UnknownFingerprintIsEmpty(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)

	got := s.RetrieveContext(context.Background(), "nope")
	assert.Empty(t, got.KnownFixes)
	assert.Empty(t, got.PastErrors)
}

func TestStoreFixWithWorkspace_Learning(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := context.Background()

	ws := WorkspaceContext{
		FilesRead:     []string{"src/api/users.ts", "src/db/client.ts"},
		FilesModified: []string{"src/api/users.ts"},
		IncidentID:    "inc-1",
	}
	s.StoreFixWithWorkspace(ctx, "fp1", "guard missing user", "patch", ws, "inc-1")
	s.SetErrorType(ctx, "fp1", "null_dereference")

	// A second run touching more files merges without duplicating.
	ws2 := WorkspaceContext{
		FilesRead:     []string{"src/api/users.ts", "src/middleware/auth.ts"},
		FilesModified: []string{"src/api/users.ts"},
	}
	s.StoreFixWithWorkspace(ctx, "fp1", "guard missing user", "patch", ws2, "inc-2")

	pattern := s.GetLearningPattern(ctx, "null_dereference")
	require.NotNil(t, pattern)
	assert.ElementsMatch(t,
		[]string{"src/api/users.ts", "src/db/client.ts", "src/middleware/auth.ts"},
		pattern.TypicalFilesRead)
	assert.Equal(t, []string{"src/api/users.ts"}, pattern.TypicalFilesModified)
	assert.Greater(t, pattern.ConfidenceScore, 0)
}

func TestGetLearningPattern_Unknown(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := context.Background()

	assert.Nil(t, s.GetLearningPattern(ctx, "unknown"))
	assert.Nil(t, s.GetLearningPattern(ctx, "timeout"))
}

func TestStoreError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := context.Background()

	s.StoreError(ctx, "fp1", "step 3 failed: file not found", "inc-1")
	s.StoreError(ctx, "fp1", "step 4 failed: timeout", "inc-1")

	got := s.RetrieveContext(ctx, "fp1")
	require.Len(t, got.PastErrors, 2)
	assert.Equal(t, "step 3 failed: file not found", got.PastErrors[0].Message)
}

func TestMergeListBounded(t *testing.T) {
	existing := []string{"a", "b"}
	add := []string{"b", "c", ""}
	out := mergeList(existing, add, 2)
	assert.Equal(t, []string{"b", "c"}, out)
}
