package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Article is a normalized feed item.
type Article struct {
	Title       string
	Content     string
	Summary     string
	Source      string
	URL         string
	PublishedAt *time.Time
}

// FeedIngester fetches and normalizes RSS/Atom feeds.
type FeedIngester struct {
	parser *gofeed.Parser
}

// NewFeedIngester creates an ingester that fetches through httpClient.
func NewFeedIngester(httpClient *http.Client) *FeedIngester {
	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = "finnews-pipeline/1.0"
	return &FeedIngester{parser: parser}
}

// FetchFeed fetches one feed URL and returns its usable items.
// Items without a title or link are dropped.
func (f *FeedIngester) FetchFeed(ctx context.Context, feedURL string) ([]Article, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = feedURL
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		content := strings.TrimSpace(item.Content)
		summary := strings.TrimSpace(item.Description)
		if content == "" {
			content = summary
		}
		if content == "" {
			content = title
		}

		article := Article{
			Title:   title,
			Content: content,
			Summary: summary,
			Source:  source,
			URL:     link,
		}
		if item.PublishedParsed != nil {
			published := item.PublishedParsed.UTC()
			article.PublishedAt = &published
		} else if item.UpdatedParsed != nil {
			updated := item.UpdatedParsed.UTC()
			article.PublishedAt = &updated
		}
		articles = append(articles, article)
	}
	return articles, nil
}
