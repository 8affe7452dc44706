package googlenews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stockanalysis/clients/http_client"
	"stockanalysis/types"

	"github.com/mmcdole/gofeed/rss"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://news.google.com"
	requestTimeout = 30 * time.Second

	// dateLayout matches the RFC-822 style dates in Google News RSS,
	// e.g. "Fri, 31 May 2024 06:00:00 GMT".
	dateLayout = "Mon, 02 Jan 2006 15:04:05 MST"
)

// Client fetches the Google News search RSS feed, parameterized for the
// Indian English locale.
type Client struct {
	httpClient *http_client.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: http_client.New(requestTimeout),
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL points the client at an alternate host. Used by tests.
func NewClientWithBaseURL(baseURL string) *Client {
	client := NewClient()
	client.baseURL = baseURL
	return client
}

// Search fetches and normalizes feed entries for the query. Entries without
// a title or link are skipped; the publisher comes from the entry's <source>
// element, defaulting to "Unknown"; an unparsable date degrades to the zero
// time with a warning so the entry sorts last by recency.
func (c *Client) Search(ctx context.Context, query string) ([]types.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/rss/search?q=%s&hl=en-IN&gl=IN&ceid=IN:en",
		c.baseURL, url.QueryEscape(query))

	resp, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching news feed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing news feed: %v", err)
	}

	items := make([]types.NewsItem, 0, len(feed.Items))
	for i, entry := range feed.Items {
		if entry == nil || entry.Title == "" {
			zap.L().Warn("Google News entry missing title, skipping", zap.Int("index", i))
			continue
		}
		if entry.Link == "" {
			zap.L().Warn("Google News entry missing link, skipping",
				zap.Int("index", i), zap.String("title", entry.Title))
			continue
		}

		publisher := types.UnknownPublisher
		if entry.Source != nil && entry.Source.Title != "" {
			publisher = entry.Source.Title
		}

		var published time.Time
		if entry.PubDate != "" {
			parsed, err := time.Parse(dateLayout, entry.PubDate)
			if err != nil {
				zap.L().Warn("failed to parse Google News date",
					zap.String("date", entry.PubDate), zap.Error(err))
			} else {
				published = parsed
			}
		}

		items = append(items, types.NewsItem{
			Title:     entry.Title,
			Link:      entry.Link,
			Publisher: publisher,
			Published: published,
			Source:    types.NewsSourceGoogle,
		})
	}
	return items, nil
}
