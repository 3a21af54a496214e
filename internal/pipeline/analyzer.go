package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const analysisPrompt = `You are a financial news analyst. Read the article and respond with JSON only:
{"sentiment_score": -1.0 to 1.0, "confidence": 0.0 to 1.0, "entities": ["company or person"], "keywords": ["keyword"], "summary": "one sentence"}
Negative scores mean the news is bad for the mentioned assets.`

// maxContentChars bounds the article text sent to the model, in runes.
const maxContentChars = 6000

// OpenAIAnalyzer scores news sentiment with a chat completion model.
type OpenAIAnalyzer struct {
	client openai.Client
	model  string
}

// NewOpenAIAnalyzer creates an analyzer. Extra options (base URL, retries) are
// passed to the OpenAI client.
func NewOpenAIAnalyzer(apiKey, model string, opts ...option.RequestOption) *OpenAIAnalyzer {
	if model == "" {
		model = defaultModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIAnalyzer{client: openai.NewClient(opts...), model: model}
}

// Analyze returns the analysis of one news item.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, news PendingNews) (*AnalysisRequest, error) {
	content := truncateRunes(news.Content, maxContentChars)
	prompt := fmt.Sprintf("Title: %s\nSource: %s\n\n%s", news.Title, news.Source, content)

	response, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	analysis, err := parseAnalysis(response.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	analysis.ModelVersion = a.model
	return analysis, nil
}

// parseAnalysis decodes the model reply, tolerating a fenced code block, and
// clamps scores into their valid ranges.
func parseAnalysis(content string) (*AnalysisRequest, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	var reply struct {
		SentimentScore float64  `json:"sentiment_score"`
		Confidence     float64  `json:"confidence"`
		Entities       []string `json:"entities"`
		Keywords       []string `json:"keywords"`
		Summary        string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	if reply.Entities == nil {
		reply.Entities = []string{}
	}
	if reply.Keywords == nil {
		reply.Keywords = []string{}
	}
	return &AnalysisRequest{
		SentimentScore: clamp(reply.SentimentScore, -1, 1),
		Confidence:     clamp(reply.Confidence, 0, 1),
		Entities:       reply.Entities,
		Keywords:       reply.Keywords,
		Summary:        strings.TrimSpace(reply.Summary),
	}, nil
}

// truncateRunes cuts s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
