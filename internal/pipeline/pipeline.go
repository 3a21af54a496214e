// Package pipeline ingests news feeds and analyses pending news items through
// the finnews pipeline API.
package pipeline

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NewsAPI defines the finnews API operations needed by the pipeline.
type NewsAPI interface {
	ListAssets(ctx context.Context) ([]Asset, error)
	ListPending(ctx context.Context, limit int) ([]PendingNews, error)
	IngestNews(ctx context.Context, item IngestRequest) (*IngestResponse, error)
	UpsertAnalysis(ctx context.Context, newsID uint, analysis AnalysisRequest) error
}

// FeedFetcher fetches the articles of one feed.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, feedURL string) ([]Article, error)
}

// Analyzer produces an analysis for one news item.
type Analyzer interface {
	Analyze(ctx context.Context, news PendingNews) (*AnalysisRequest, error)
}

// ItemError records a failure for one feed or news item.
type ItemError struct {
	Source string
	Err    error
}

// IngestResult contains the outcome of an ingest run.
type IngestResult struct {
	FeedsFetched int
	Articles     int
	Created      int
	Duplicates   int
	Errors       []ItemError
	Duration     time.Duration
}

// AnalyzeResult contains the outcome of an analyze run.
type AnalyzeResult struct {
	Pending  int
	Analyzed int
	Errors   []ItemError
	Duration time.Duration
}

// Runner drives the ingest and analyze stages.
type Runner struct {
	api    NewsAPI
	logger *zap.SugaredLogger
}

// NewRunner creates a new Runner.
func NewRunner(api NewsAPI, logger *zap.SugaredLogger) *Runner {
	return &Runner{api: api, logger: logger}
}

// Ingest fetches every feed concurrently, detects asset mentions, and submits
// the articles. A failing feed or item is recorded and skipped.
func (r *Runner) Ingest(ctx context.Context, fetcher FeedFetcher, feeds []string) (*IngestResult, error) {
	start := time.Now()
	result := &IngestResult{}

	assets, err := r.api.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	detector := NewMentionDetector(assets)

	if len(feeds) == 0 {
		r.logger.Info("no feeds configured, nothing to do")
		result.Duration = time.Since(start)
		return result, nil
	}

	var mu sync.Mutex
	var articles []Article
	var wg sync.WaitGroup
	for _, feed := range feeds {
		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()
			items, err := fetcher.FetchFeed(ctx, feedURL)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, ItemError{Source: feedURL, Err: err})
				return
			}
			result.FeedsFetched++
			articles = append(articles, items...)
		}(feed)
	}
	wg.Wait()
	result.Articles = len(articles)

	for _, article := range articles {
		mentions := detector.Detect(article.Title, article.Content)
		resp, err := r.api.IngestNews(ctx, IngestRequest{
			Title:       article.Title,
			Content:     article.Content,
			Summary:     article.Summary,
			Source:      article.Source,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Mentions:    mentions,
		})
		if err != nil {
			result.Errors = append(result.Errors, ItemError{Source: article.URL, Err: err})
			continue
		}
		if resp.Created {
			result.Created++
			r.logger.Debugw("news ingested", "news_id", resp.News.ID, "symbols", Symbols(mentions))
		} else {
			result.Duplicates++
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Analyze scores up to limit pending news items one at a time.
func (r *Runner) Analyze(ctx context.Context, analyzer Analyzer, limit int) (*AnalyzeResult, error) {
	start := time.Now()
	result := &AnalyzeResult{}

	pending, err := r.api.ListPending(ctx, limit)
	if err != nil {
		return nil, err
	}
	result.Pending = len(pending)

	for _, news := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		analysis, err := analyzer.Analyze(ctx, news)
		if err != nil {
			result.Errors = append(result.Errors, ItemError{Source: news.URL, Err: err})
			continue
		}
		if err := r.api.UpsertAnalysis(ctx, news.ID, *analysis); err != nil {
			result.Errors = append(result.Errors, ItemError{Source: news.URL, Err: err})
			continue
		}
		result.Analyzed++
	}

	result.Duration = time.Since(start)
	return result, nil
}
