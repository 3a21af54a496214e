package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultModel = "gpt-4o-mini"

// Config holds all pipeline CLI configuration values.
type Config struct {
	APIURL         string
	PipelineAPIKey string
	OpenAIAPIKey   string
	OpenAIModel    string
	RequestTimeout time.Duration
	Feeds          []string
}

// LoadConfig reads configuration from environment variables and validates required fields.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         os.Getenv("API_URL"),
		PipelineAPIKey: os.Getenv("PIPELINE_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		Feeds:          splitFeeds(os.Getenv("RSS_FEEDS")),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}
	if cfg.PipelineAPIKey == "" {
		return nil, fmt.Errorf("PIPELINE_API_KEY is required")
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = defaultModel
	}

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

// splitFeeds keeps only http(s) URLs from a comma-separated list.
func splitFeeds(s string) []string {
	var feeds []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "http://") || strings.HasPrefix(part, "https://") {
			feeds = append(feeds, part)
		}
	}
	return feeds
}
