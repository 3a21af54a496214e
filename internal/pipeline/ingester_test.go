package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Market Wire</title>
  <link>https://wire.example</link>
  <item>
    <title>Crude rallies on supply cut</title>
    <link>https://wire.example/crude</link>
    <description>Oil prices rose sharply.</description>
    <pubDate>Tue, 07 May 2024 10:00:00 +0000</pubDate>
  </item>
  <item>
    <title>No link here</title>
    <description>Dropped.</description>
  </item>
  <item>
    <title>Gold steady</title>
    <link>https://wire.example/gold</link>
  </item>
</channel>
</rss>`

func TestFeedIngester_FetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	f := NewFeedIngester(server.Client())
	articles, err := f.FetchFeed(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Crude rallies on supply cut", first.Title)
	assert.Equal(t, "Oil prices rose sharply.", first.Content)
	assert.Equal(t, "Market Wire", first.Source)
	assert.Equal(t, "https://wire.example/crude", first.URL)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, 7, first.PublishedAt.Day())

	// Without a description the title doubles as content.
	assert.Equal(t, "Gold steady", articles[1].Content)
	assert.Nil(t, articles[1].PublishedAt)
}

func TestFeedIngester_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFeedIngester(server.Client())
	_, err := f.FetchFeed(context.Background(), server.URL)
	assert.Error(t, err)
}
