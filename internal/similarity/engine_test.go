package similarity

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/cache"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) TTL(ctx context.Context, key string) (time.Duration, error) { return 0, nil }

func (m *memKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) CountRequest(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (m *memKV) Ping(ctx context.Context) error { return nil }
func (m *memKV) Close() error                   { return nil }

// mockCompleter answers lexical prompts with a bare number and contextual
// prompts with the labeled format, counting every call
type mockCompleter struct {
	mu            sync.Mutex
	calls         int
	lexicalReply  string
	contextReply  string
	lexicalErr    error
	contextualErr error
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string, opts llm.CompletionOptions) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if strings.Contains(prompt, "Score:") || strings.Contains(prompt, "Pontuação:") {
		if m.contextualErr != nil {
			return "", m.contextualErr
		}
		return m.contextReply, nil
	}
	if m.lexicalErr != nil {
		return "", m.lexicalErr
	}
	return m.lexicalReply, nil
}

func (m *mockCompleter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newTestEngine(completer Completer) *Engine {
	cfg := &config.Config{}
	cfg.LLM.MaxTokens = 2048
	cfg.LLM.Temperature = 0.1
	return NewEngine(completer, cache.NewResultCache(newMemKV(), time.Hour), cfg)
}

func TestComputeSimilarityCombinesSignals(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply: "0.6",
		contextReply: "Score: 0.8\nKeywords: go, redis\nFeedback: Learn Redis.",
	}
	engine := newTestEngine(completer)

	result, err := engine.ComputeSimilarity(context.Background(), "resume text", &models.ParseResult{Content: "job text", Success: true}, "en")
	require.NoError(t, err)

	assert.Equal(t, 0.7, result.Score)
	assert.Equal(t, []string{"go", "redis"}, result.MissingKeywords)
	assert.Equal(t, 2, result.TotalMissing)
	assert.Equal(t, "Learn Redis.", result.Feedback)
	assert.False(t, result.IsPositionClosed)
	assert.Equal(t, 2, completer.callCount())
}

func TestComputeSimilarityCacheHitSkipsLLM(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply: "0.6",
		contextReply: "Score: 0.8\nKeywords: go\nFeedback: ok",
	}
	engine := newTestEngine(completer)
	ctx := context.Background()
	jd := &models.ParseResult{Content: "job text", Success: true}

	first, err := engine.ComputeSimilarity(ctx, "resume text", jd, "en")
	require.NoError(t, err)
	require.Equal(t, 2, completer.callCount())

	second, err := engine.ComputeSimilarity(ctx, "resume text", jd, "en")
	require.NoError(t, err)

	assert.Equal(t, 2, completer.callCount(), "cache hit must not call the LLM")
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.MissingKeywords, second.MissingKeywords)
}

func TestComputeSimilarityLanguageChangesCacheEntry(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply: "0.5",
		contextReply: "Score: 0.5\nKeywords: \nFeedback: ok",
	}
	engine := newTestEngine(completer)
	ctx := context.Background()
	jd := &models.ParseResult{Content: "job text", Success: true}

	_, err := engine.ComputeSimilarity(ctx, "resume text", jd, "en")
	require.NoError(t, err)
	_, err = engine.ComputeSimilarity(ctx, "resume text", jd, "pt-BR")
	require.NoError(t, err)

	assert.Equal(t, 4, completer.callCount(), "a different language must miss the cache")
}

func TestComputeSimilarityLexicalFailureIsSoft(t *testing.T) {
	completer := &mockCompleter{
		lexicalErr:   errors.New("transport error"),
		contextReply: "Score: 0.8\nKeywords: go\nFeedback: ok",
	}
	engine := newTestEngine(completer)

	result, err := engine.ComputeSimilarity(context.Background(), "resume", &models.ParseResult{Content: "job", Success: true}, "en")
	require.NoError(t, err)

	// Lexical signal degraded to 0, mean of (0, 0.8)
	assert.Equal(t, 0.4, result.Score)
	assert.Equal(t, []string{"go"}, result.MissingKeywords)
}

func TestComputeSimilarityContextualFailureIsSoft(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply:  "0.6",
		contextualErr: errors.New("transport error"),
	}
	engine := newTestEngine(completer)

	result, err := engine.ComputeSimilarity(context.Background(), "resume", &models.ParseResult{Content: "job", Success: true}, "en")
	require.NoError(t, err)

	assert.Equal(t, 0.3, result.Score)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 0, result.TotalMissing)
	assert.Equal(t, "", result.Feedback)
}

func TestComputeSimilarityPropagatesClosedPosition(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply: "0.6",
		contextReply: "Score: 0.8\nKeywords: go\nFeedback: ok",
	}
	engine := newTestEngine(completer)

	jd := &models.ParseResult{Content: "job", Success: true, IsPositionClosed: true}
	result, err := engine.ComputeSimilarity(context.Background(), "resume", jd, "en")
	require.NoError(t, err)

	assert.True(t, result.IsPositionClosed)
}

func TestComputeSimilarityScoreRounding(t *testing.T) {
	completer := &mockCompleter{
		lexicalReply: "0.333",
		contextReply: "Score: 0.333\nKeywords: \nFeedback: ok",
	}
	engine := newTestEngine(completer)

	result, err := engine.ComputeSimilarity(context.Background(), "resume", &models.ParseResult{Content: "job", Success: true}, "en")
	require.NoError(t, err)

	assert.Equal(t, 0.33, result.Score)
}
