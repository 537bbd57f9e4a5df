// Package knowledge maintains a small vector store of past fixes, code
// patterns, and documentation over the knowledge_chunks table. Retrieval
// ranks by cosine similarity in-process; indexing is idempotent via a
// content hash. Every operation degrades to an empty result on failure.
package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/knowledgechunk"
)

// maxCandidates bounds how many chunks are loaded for a similarity scan.
const maxCandidates = 500

// Item is one retrieved knowledge document.
type Item struct {
	Content  string
	Source   string
	Score    float64
	Metadata map[string]interface{}
}

// PastFix is the indexable form of a previously applied fix.
type PastFix struct {
	Description string
	Patch       string
	IncidentID  string
}

// Retriever is the ent-backed knowledge store.
type Retriever struct {
	client   *ent.Client
	embedder Embedder
	logger   *slog.Logger
}

// NewRetriever creates a knowledge retriever. embedder falls back to the
// local hashing embedder when nil.
func NewRetriever(client *ent.Client, embedder Embedder) *Retriever {
	if client == nil {
		panic("knowledge.NewRetriever: client must not be nil")
	}
	if embedder == nil {
		embedder = HashingEmbedder{}
	}
	return &Retriever{
		client:   client,
		embedder: embedder,
		logger:   slog.Default().With("component", "knowledge"),
	}
}

// IndexCodebasePatterns indexes file paths as lightweight structure hints.
// Idempotent: already-indexed paths are skipped.
func (r *Retriever) IndexCodebasePatterns(ctx context.Context, filePaths []string) {
	for _, path := range filePaths {
		if path == "" {
			continue
		}
		content := fmt.Sprintf("Code file: %s (language: %s, directory: %s)",
			path, languageOf(path), filepath.Dir(path))
		r.indexChunk(ctx, content, knowledgechunk.SourceCodePattern, map[string]interface{}{
			"path": path,
		})
	}
}

// IndexPastFixes appends prior fixes to the store.
func (r *Retriever) IndexPastFixes(ctx context.Context, fixes []PastFix) {
	for _, fix := range fixes {
		if fix.Description == "" && fix.Patch == "" {
			continue
		}
		content := fix.Description
		if fix.Patch != "" {
			content += "\n\n" + fix.Patch
		}
		r.indexChunk(ctx, content, knowledgechunk.SourcePastFix, map[string]interface{}{
			"incident_id": fix.IncidentID,
		})
	}
}

// IndexDocumentation stores a free-form documentation chunk.
func (r *Retriever) IndexDocumentation(ctx context.Context, content string, metadata map[string]interface{}) {
	if content == "" {
		return
	}
	r.indexChunk(ctx, content, knowledgechunk.SourceDocumentation, metadata)
}

// RetrieveRelevantKnowledge returns up to k items ordered by descending
// relevance to the query. Returns an empty slice on any failure.
func (r *Retriever) RetrieveRelevantKnowledge(ctx context.Context, query string, k int) []Item {
	if query == "" || k <= 0 {
		return nil
	}
	vecs, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vecs) != 1 {
		r.logger.Warn("Query embedding failed", "error", err)
		return nil
	}
	queryVec := vecs[0]

	rows, err := r.client.KnowledgeChunk.Query().
		Order(ent.Desc(knowledgechunk.FieldCreatedAt)).
		Limit(maxCandidates).
		All(ctx)
	if err != nil {
		r.logger.Warn("Knowledge scan failed", "error", err)
		return nil
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			Content:  row.Content,
			Source:   string(row.Source),
			Score:    cosine(queryVec, row.Embedding),
			Metadata: row.Metadata,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > k {
		items = items[:k]
	}
	return items
}

// RetrieveForPlanning builds a planning query from the root cause and the
// affected files and retrieves the most relevant knowledge for it.
func (r *Retriever) RetrieveForPlanning(ctx context.Context, rootCause string, affectedFiles []string) []Item {
	var sb strings.Builder
	sb.WriteString(rootCause)
	if len(affectedFiles) > 0 {
		sb.WriteString("\nAffected files: ")
		sb.WriteString(strings.Join(affectedFiles, ", "))
	}
	return r.RetrieveRelevantKnowledge(ctx, sb.String(), 5)
}

func (r *Retriever) indexChunk(ctx context.Context, content string, source knowledgechunk.Source, metadata map[string]interface{}) {
	hash := contentHash(string(source), content)

	exists, err := r.client.KnowledgeChunk.Query().
		Where(knowledgechunk.ContentHashEQ(hash)).
		Exist(ctx)
	if err != nil {
		r.logger.Warn("Knowledge dedup check failed", "error", err)
		return
	}
	if exists {
		return
	}

	vecs, err := r.embedder.Embed(ctx, []string{content})
	if err != nil || len(vecs) != 1 {
		r.logger.Warn("Chunk embedding failed", "source", source, "error", err)
		return
	}

	_, err = r.client.KnowledgeChunk.Create().
		SetID(uuid.NewString()).
		SetContent(content).
		SetSource(source).
		SetMetadata(metadata).
		SetEmbedding(vecs[0]).
		SetContentHash(hash).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		// Constraint errors are a concurrent indexer winning the race.
		r.logger.Warn("Knowledge index failed", "source", source, "error", err)
	}
}

func contentHash(source, content string) string {
	sum := sha256.Sum256([]byte(source + "\x00" + content))
	return hex.EncodeToString(sum[:])
}

func languageOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js", ".jsx":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".java":
		return "java"
	case ".rb":
		return "ruby"
	case ".rs":
		return "rust"
	case ".php":
		return "php"
	case ".cs":
		return "csharp"
	case ".sql":
		return "sql"
	case ".sh":
		return "shell"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "unknown"
	}
}
