package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedscope/feedscope/pkg/config"
	"github.com/feedscope/feedscope/pkg/domain"
)

// newTestGateway makes a fake chat-completion endpoint returning the given
// message content and counts the calls it served
func newTestGateway(t *testing.T, content string, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    endpoint + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}

func TestAnalyzer_Generate(t *testing.T) {
	var calls int32
	server := newTestGateway(t, `{
		"title": "App Performance Concerns",
		"summary": "Users report slow load times and occasional crashes on the dashboard.",
		"key_themes": ["performance", "stability", "dashboard"],
		"recommendations": ["profile dashboard queries", "add crash reporting"]
	}`, &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	items := []domain.FeedbackItem{
		{Content: "the dashboard takes forever to load", Category: "performance", Sentiment: "negative"},
		{Content: "app crashed twice this week"},
	}

	insight, err := analyzer.Generate(context.Background(), items)
	require.NoError(t, err)

	assert.Equal(t, "App Performance Concerns", insight.Title)
	assert.Equal(t, "Users report slow load times and occasional crashes on the dashboard.", insight.Summary)
	assert.Equal(t, []string{"performance", "stability", "dashboard"}, insight.KeyThemes)
	assert.Equal(t, []string{"profile dashboard queries", "add crash reporting"}, insight.Recommendations)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "exactly one outbound call")
}

func TestAnalyzer_GenerateJSONFenced(t *testing.T) {
	var calls int32
	server := newTestGateway(t, "```json\n{\"title\": \"Fenced\", \"summary\": \"s\", \"key_themes\": [\"a\"], \"recommendations\": [\"b\"]}\n```", &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.NoError(t, err)
	assert.Equal(t, "Fenced", insight.Title)
	assert.Equal(t, []string{"a"}, insight.KeyThemes)
	assert.Equal(t, []string{"b"}, insight.Recommendations)
}

func TestAnalyzer_GenerateBareFenced(t *testing.T) {
	var calls int32
	server := newTestGateway(t, "```\n{\"title\": \"Bare\", \"summary\": \"s\", \"key_themes\": [], \"recommendations\": []}\n```", &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.NoError(t, err)
	assert.Equal(t, "Bare", insight.Title)
	assert.NotNil(t, insight.KeyThemes)
	assert.NotNil(t, insight.Recommendations)
	assert.Empty(t, insight.KeyThemes)
	assert.Empty(t, insight.Recommendations)
}

func TestAnalyzer_GenerateFallbackOnMalformedReply(t *testing.T) {
	raw := "I could not produce JSON, sorry. " + strings.Repeat("x", 600)
	var calls int32
	server := newTestGateway(t, raw, &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "anything"}})
	require.NoError(t, err, "malformed reply degrades to fallback, not an error")

	assert.Equal(t, "Feedback Analysis Summary", insight.Title)
	assert.Equal(t, 500, len([]rune(insight.Summary)))
	assert.Equal(t, raw[:500], insight.Summary)
	assert.Equal(t, fallbackThemes, insight.KeyThemes)
	assert.Equal(t, fallbackRecommendations, insight.Recommendations)
	assert.Len(t, insight.KeyThemes, 3)
	assert.Len(t, insight.Recommendations, 3)
}

func TestAnalyzer_GenerateFallbackShortReply(t *testing.T) {
	var calls int32
	server := newTestGateway(t, "nope", &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "anything"}})
	require.NoError(t, err)
	assert.Equal(t, "nope", insight.Summary, "short raw output kept whole")
}

func TestAnalyzer_GenerateNonArrayThemes(t *testing.T) {
	var calls int32
	server := newTestGateway(t, `{
		"title": "T",
		"summary": "S",
		"key_themes": "not an array",
		"recommendations": {"also": "wrong"}
	}`, &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.NoError(t, err, "non-array fields never fail the whole operation")
	assert.Equal(t, "T", insight.Title)
	assert.NotNil(t, insight.KeyThemes)
	assert.NotNil(t, insight.Recommendations)
	assert.Empty(t, insight.KeyThemes)
	assert.Empty(t, insight.Recommendations)
}

func TestAnalyzer_GenerateRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit reached", "type": "requests"}}`))
	}))
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Nil(t, insight, "no fallback on transport failures")
}

func TestAnalyzer_GeneratePaymentRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "insufficient funds", "type": "billing"}}`))
	}))
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	insight, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentRequired)
	assert.Nil(t, insight)
}

func TestAnalyzer_GenerateGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "upstream down", "type": "server_error"}}`))
	}))
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	_, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	require.Error(t, err)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusServiceUnavailable, gwErr.StatusCode)
}

func TestAnalyzer_GenerateMissingAPIKey(t *testing.T) {
	// no server at all, the key check must fire before any network I/O
	cfg := config.LLMConfig{Endpoint: "http://127.0.0.1:0/v1", Model: "gpt-4o-mini"}
	analyzer := NewAnalyzer(cfg)

	_, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{{Content: "ok"}})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAnalyzer_GenerateEmptyInput(t *testing.T) {
	var calls int32
	server := newTestGateway(t, "{}", &calls)
	defer server.Close()

	analyzer := NewAnalyzer(testConfig(server.URL))

	_, err := analyzer.Generate(context.Background(), []domain.FeedbackItem{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "no outbound call on empty input")
}

func TestAnalyzer_buildPrompt(t *testing.T) {
	analyzer := &Analyzer{config: config.LLMConfig{}}

	items := []domain.FeedbackItem{
		{Content: "love the new editor", Category: "ui", Sentiment: "positive"},
		{Content: "export is broken"},
		{Content: "pricing is confusing", Sentiment: "negative"},
	}

	prompt := analyzer.buildPrompt(items)
	lines := strings.Split(strings.TrimSpace(prompt), "\n")

	// header, blank line, then one numbered line per item
	assert.Contains(t, prompt, "1. love the new editor [Category: ui] [Sentiment: positive]")
	assert.Contains(t, prompt, "2. export is broken")
	assert.NotContains(t, prompt, "2. export is broken [")
	assert.Contains(t, prompt, "3. pricing is confusing [Sentiment: negative]")

	numbered := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "1. ") || strings.HasPrefix(line, "2. ") || strings.HasPrefix(line, "3. ") {
			numbered++
		}
	}
	assert.Equal(t, len(items), numbered, "one numbered line per feedback item")
}

func TestAnalyzer_CustomSystemPrompt(t *testing.T) {
	customPrompt := "You are a terse feedback analyst. Respond with JSON."

	cfg := config.LLMConfig{APIKey: "test-key", Model: "gpt-4o-mini", SystemPrompt: customPrompt}
	analyzer := NewAnalyzer(cfg)
	assert.Equal(t, customPrompt, analyzer.systemMsg)
}

func TestAnalyzer_DefaultSystemPrompt(t *testing.T) {
	cfg := config.LLMConfig{APIKey: "test-key", Model: "gpt-4o-mini"}
	analyzer := NewAnalyzer(cfg)
	assert.Contains(t, analyzer.systemMsg, "expert feedback analyst")
	assert.Contains(t, analyzer.systemMsg, "key_themes")
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"opening fence only", "```json\n{\"a\":1}", `{"a":1}`},
		{"closing fence only", "{\"a\":1}\n```", `{"a":1}`},
		{"already stripped is idempotent", stripFences("```json\n{\"a\":1}\n```"), `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.input))
		})
	}
}

func TestCoerceStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, coerceStrings(json.RawMessage(`["a","b"]`)))
	assert.Equal(t, []string{}, coerceStrings(json.RawMessage(`"not an array"`)))
	assert.Equal(t, []string{}, coerceStrings(json.RawMessage(`{"k":"v"}`)))
	assert.Equal(t, []string{}, coerceStrings(nil))
	assert.Equal(t, []string{"1", "x"}, coerceStrings(json.RawMessage(`[1,"x"]`)))
}
