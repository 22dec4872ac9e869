package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"golang.org/x/net/html"

	"github.com/umputun/swipefeed/pkg/domain"
)

// maxFeedSize limits the size of a feed document
const maxFeedSize = 10 * 1024 * 1024

// errPermanent marks fetch errors not worth retrying
var errPermanent = errors.New("permanent error")

var videoExtensions = map[string]bool{".mp4": true, ".m4v": true, ".mov": true, ".webm": true, ".ogv": true, ".m3u8": true}

// FeedSource reads videos from RSS/Atom/JSON feed enclosures and media:content entries
type FeedSource struct {
	url        string
	name       string
	client     *http.Client
	userAgent  string
	retries    int
	retryDelay time.Duration
	policy     *bluemonday.Policy
}

// FeedParams defines feed source parameters
type FeedParams struct {
	URL        string
	Name       string
	Timeout    time.Duration
	UserAgent  string
	Retries    int
	RetryDelay time.Duration
}

// NewFeedSource makes a feed source. Zero params are set to defaults.
func NewFeedSource(p FeedParams) *FeedSource {
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	if p.UserAgent == "" {
		p.UserAgent = "swipefeed/1.0"
	}
	if p.Retries < 1 {
		p.Retries = 3
	}
	if p.RetryDelay == 0 {
		p.RetryDelay = 500 * time.Millisecond
	}
	if p.Name == "" {
		p.Name = p.URL
	}
	return &FeedSource{
		url:        p.URL,
		name:       p.Name,
		client:     &http.Client{Timeout: p.Timeout},
		userAgent:  p.UserAgent,
		retries:    p.Retries,
		retryDelay: p.RetryDelay,
		policy:     bluemonday.StrictPolicy(),
	}
}

func (f *FeedSource) String() string {
	return "feed:" + f.name
}

// Load fetches the feed, retrying transient failures, and extracts videos from its items
func (f *FeedSource) Load(ctx context.Context) ([]domain.VideoItem, error) {
	var body []byte
	retrier := repeater.NewBackoff(f.retries, f.retryDelay, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		var fetchErr error
		body, fetchErr = f.fetch(ctx)
		return fetchErr
	}, errPermanent)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.url, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.url, err)
	}

	res := []domain.VideoItem{}
	for _, item := range feed.Items {
		uri := videoURI(item)
		if uri == "" {
			continue
		}
		res = append(res, domain.VideoItem{URI: uri, Title: f.cleanTitle(item.Title)})
	}
	return res, nil
}

// fetch retrieves the feed document; 4xx responses are permanent failures
func (f *FeedSource) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", errPermanent, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: unexpected status code: %d", errPermanent, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// cleanTitle strips markup from the item title
func (f *FeedSource) cleanTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(title)))
}

// videoURI picks the first video locator of the item, enclosures first
func videoURI(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && isVideo(enc.URL, enc.Type) {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		if uri := mediaContentURI(media["content"]); uri != "" {
			return uri
		}
		for _, group := range media["group"] {
			if uri := mediaContentURI(group.Children["content"]); uri != "" {
				return uri
			}
		}
	}

	// players embedded into the item body
	if uri := embeddedVideoURI(item.Content); uri != "" {
		return uri
	}
	return embeddedVideoURI(item.Description)
}

// embeddedVideoURI returns the first src of a video element, or of a source inside one
func embeddedVideoURI(markup string) string {
	if !strings.Contains(markup, "<video") {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var walk func(n *html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "video" && attr(n, "src") != "":
				return attr(n, "src")
			case n.Data == "source" && n.Parent != nil && n.Parent.Data == "video" && attr(n, "src") != "":
				return attr(n, "src")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if uri := walk(c); uri != "" {
				return uri
			}
		}
		return ""
	}
	return walk(doc)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func mediaContentURI(contents []ext.Extension) string {
	for _, c := range contents {
		if uri := c.Attrs["url"]; isVideo(uri, c.Attrs["type"]) || (uri != "" && c.Attrs["medium"] == "video") {
			return uri
		}
	}
	return ""
}

// isVideo checks the mime type, or the locator extension if type is missing
func isVideo(uri, mimeType string) bool {
	if uri == "" {
		return false
	}
	if mimeType != "" {
		mt := strings.ToLower(mimeType)
		return strings.HasPrefix(mt, "video/") || mt == "application/x-mpegurl" || mt == "application/vnd.apple.mpegurl"
	}
	p := uri
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return videoExtensions[strings.ToLower(path.Ext(p))]
}
