package main

import (
	"context"
	"flag"
	"net/http"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"finnews/internal/logger"
	"finnews/internal/pipeline"
)

type ingestCmd struct {
	feeds string
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "fetch RSS feeds and submit new articles" }
func (*ingestCmd) Usage() string {
	return `pipeline ingest [-feeds <url,url>]

  Fetches every feed, detects asset mentions and submits articles to the API.
  Feeds default to RSS_FEEDS.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feeds, "feeds", "", "comma-separated feed URLs (overrides RSS_FEEDS)")
}

func (c *ingestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.Named("ingest")

	cfg, err := pipeline.LoadConfig()
	if err != nil {
		log.Errorw("configuration error", "error", err)
		return subcommands.ExitUsageError
	}
	feeds := cfg.Feeds
	if strings.TrimSpace(c.feeds) != "" {
		feeds = splitArg(c.feeds)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	runner := pipeline.NewRunner(pipeline.NewAPIClient(cfg.APIURL, cfg.PipelineAPIKey, httpClient), log)

	result, err := runner.Ingest(ctx, pipeline.NewFeedIngester(httpClient), feeds)
	if err != nil {
		log.Errorw("ingest run failed", "error", err)
		return subcommands.ExitFailure
	}

	log.Infow("ingest run completed",
		"feeds_fetched", result.FeedsFetched,
		"articles", result.Articles,
		"created", result.Created,
		"duplicates", result.Duplicates,
		"errors", len(result.Errors),
		"duration", result.Duration.String(),
	)
	return reportErrors(log, result.Errors)
}

type analyzeCmd struct {
	limit int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyse news flagged for re-analysis" }
func (*analyzeCmd) Usage() string {
	return `pipeline analyze [-limit n]

  Scores pending news items with OpenAI and stores the analyses.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 20, "maximum number of pending items to analyse")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.Named("analyze")

	cfg, err := pipeline.LoadConfig()
	if err != nil {
		log.Errorw("configuration error", "error", err)
		return subcommands.ExitUsageError
	}
	if cfg.OpenAIAPIKey == "" {
		log.Error("configuration error: OPENAI_API_KEY is required")
		return subcommands.ExitUsageError
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	runner := pipeline.NewRunner(pipeline.NewAPIClient(cfg.APIURL, cfg.PipelineAPIKey, httpClient), log)
	analyzer := pipeline.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	result, err := runner.Analyze(ctx, analyzer, c.limit)
	if err != nil {
		log.Errorw("analyze run failed", "error", err)
		return subcommands.ExitFailure
	}

	log.Infow("analyze run completed",
		"pending", result.Pending,
		"analyzed", result.Analyzed,
		"errors", len(result.Errors),
		"duration", result.Duration.String(),
	)
	return reportErrors(log, result.Errors)
}

// reportErrors logs per-item failures; any failure exits with status 2.
func reportErrors(log *zap.SugaredLogger, errs []pipeline.ItemError) subcommands.ExitStatus {
	for _, e := range errs {
		log.Warnw("item failed", "source", e.Source, "error", e.Err.Error())
	}
	if len(errs) > 0 {
		return subcommands.ExitStatus(2)
	}
	return subcommands.ExitSuccess
}

func splitArg(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
