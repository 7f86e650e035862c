package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/feedscope/feedscope/pkg/config"
	"github.com/feedscope/feedscope/pkg/domain"
)

// Analyzer uses LLM to distill a batch of feedback into an insight report
type Analyzer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// sentinel errors surfaced to callers, mapped to HTTP statuses by the server
var (
	// ErrMissingAPIKey means the gateway credential is not configured,
	// detected before any network call is made
	ErrMissingAPIKey = errors.New("llm api key is not configured")

	// ErrEmptyInput means the caller passed no feedback items
	ErrEmptyInput = errors.New("no feedback items provided")

	// ErrRateLimited means the gateway returned HTTP 429
	ErrRateLimited = errors.New("llm rate limit exceeded")

	// ErrPaymentRequired means the gateway returned HTTP 402
	ErrPaymentRequired = errors.New("llm payment required")

	// ErrEmptyResponse means the gateway replied without message content
	ErrEmptyResponse = errors.New("empty response from llm")
)

// GatewayError carries the status and a truncated body of an unclassified
// non-2xx gateway reply
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("llm gateway error: status %d: %s", e.StatusCode, e.Body)
}

// maxErrBody limits how much of an upstream error body is kept for diagnostics
const maxErrBody = 200

// fallbackTitle is used when the model reply can't be parsed as JSON
const fallbackTitle = "Feedback Analysis Summary"

// fallbackSummaryLen limits the raw-output excerpt used as a fallback summary
const fallbackSummaryLen = 500

var fallbackThemes = []string{"Customer Experience", "Product Feedback", "Service Quality"}

var fallbackRecommendations = []string{
	"Review individual feedback items for specific details",
	"Follow up on recurring issues with affected customers",
	"Continue collecting feedback to track trends over time",
}

// default system prompt for insight generation
const defaultSystemPrompt = `You are an expert feedback analyst. Analyze the provided customer feedback and produce a concise insight report.

Respond with raw JSON only (no markdown, no code fences) in exactly this shape:
{
  "title": "short descriptive title for the report",
  "summary": "2-4 sentence synthesis of the overall feedback",
  "key_themes": ["3-5 recurring themes found in the feedback"],
  "recommendations": ["concrete actions suggested by the feedback"]
}

Base every theme and recommendation on the feedback content itself. Do not invent issues that are not mentioned.`

// NewAnalyzer creates a new LLM analyzer
func NewAnalyzer(cfg config.LLMConfig) *Analyzer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Analyzer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Generate produces an insight report from the given feedback items with a
// single chat-completion call, no retries. A malformed model reply is not an
// error, it degrades to a fixed fallback report so the flow always completes
// once the call itself succeeds.
func (a *Analyzer) Generate(ctx context.Context, items []domain.FeedbackItem) (*domain.Insight, error) {
	if a.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	log.Printf("[DEBUG] generating insight from %d feedback items", len(items))

	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: a.buildPrompt(items)},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classifyGatewayErr(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	log.Printf("[DEBUG] raw llm output: %s", content)

	return a.parseResponse(content), nil
}

// buildPrompt renders feedback items as numbered lines, one per item
func (a *Analyzer) buildPrompt(items []domain.FeedbackItem) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following customer feedback:\n\n")
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, item.Content))
		if item.Category != "" {
			sb.WriteString(fmt.Sprintf(" [Category: %s]", item.Category))
		}
		if item.Sentiment != "" {
			sb.WriteString(fmt.Sprintf(" [Sentiment: %s]", item.Sentiment))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// parseResponse turns the model reply into an insight. Parse failures produce
// the fixed fallback report instead of an error.
func (a *Analyzer) parseResponse(content string) *domain.Insight {
	var parsed struct {
		Title           string          `json:"title"`
		Summary         string          `json:"summary"`
		KeyThemes       json.RawMessage `json:"key_themes"`
		Recommendations json.RawMessage `json:"recommendations"`
	}

	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("[WARN] llm reply is not valid json, using fallback report: %v", err)
		return &domain.Insight{
			Title:           fallbackTitle,
			Summary:         truncate(content, fallbackSummaryLen),
			KeyThemes:       fallbackThemes,
			Recommendations: fallbackRecommendations,
		}
	}

	return &domain.Insight{
		Title:           parsed.Title,
		Summary:         parsed.Summary,
		KeyThemes:       coerceStrings(parsed.KeyThemes),
		Recommendations: coerceStrings(parsed.Recommendations),
	}
}

// stripFences removes a single leading ```json or ``` marker and a single
// trailing ``` marker, tolerant of their absence
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = rest
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// coerceStrings converts a raw json field to a string slice, anything that is
// not an array becomes an empty slice rather than failing the whole report
func coerceStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
			continue
		}
		result = append(result, fmt.Sprintf("%v", item))
	}
	return result
}

// truncate cuts a string to at most n characters, rune-aware
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// classifyGatewayErr maps go-openai transport errors to the analyzer taxonomy
func classifyGatewayErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrPaymentRequired
		default:
			return &GatewayError{StatusCode: apiErr.HTTPStatusCode, Body: truncate(apiErr.Message, maxErrBody)}
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrPaymentRequired
		default:
			return &GatewayError{StatusCode: reqErr.HTTPStatusCode, Body: truncate(reqErr.Error(), maxErrBody)}
		}
	}

	return fmt.Errorf("llm request failed: %w", err)
}
