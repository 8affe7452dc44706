package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stockanalysis/clients/http_client"
	"stockanalysis/types"

	"github.com/PuerkitoBio/goquery"
)

type ArticleServiceI interface {
	Scrape(ctx context.Context, rawURL string) (*types.Article, error)
}

type articleService struct {
	httpClient *http_client.Client
}

func NewArticleService() ArticleServiceI {
	return &articleService{httpClient: http_client.New(30 * time.Second)}
}

var ArticleService ArticleServiceI = NewArticleService()

// Scrape fetches an article page and extracts its title and paragraph text.
// Pairs with the news aggregator: callers pass a NewsItem link to read the
// full story behind the headline.
func (s *articleService) Scrape(ctx context.Context, rawURL string) (*types.Article, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid article url: %s", rawURL)
	}

	resp, err := s.httpClient.Get(ctx, rawURL, http_client.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("error fetching article: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing article: %v", err)
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("no readable content found at %s", rawURL)
	}

	return &types.Article{
		URL:   rawURL,
		Title: title,
		Text:  strings.Join(paragraphs, "\n\n"),
	}, nil
}
