// Package linkmeta scrapes a page's title and favicon for the quick-launch
// dock. It exists server-side purely to sidestep cross-origin restrictions.
package linkmeta

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"

	"lifedash/internal/providers"
	"lifedash/internal/structures"
)

// Meta is the lookup result. Total failure yields the zero value, never an
// error: callers always have their own host/favicon fallbacks.
type Meta struct {
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type FetcherInterface interface {
	Fetch(ctx context.Context, pageURL string) Meta
}

const (
	defaultMaxBodyBytes = 200_000
	userAgent           = "LifeDashboard/1.0 (+dashboard)"
)

type Fetcher struct {
	http         *http.Client
	maxBodyBytes int64
	group        singleflight.Group
	logger       providers.Logger
}

func NewFetcher(conf *structures.Config, logger providers.Logger) FetcherInterface {
	maxBytes := conf.LinkMeta.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	return &Fetcher{
		http:         &http.Client{Timeout: conf.LinkMeta.Timeout * time.Second},
		maxBodyBytes: maxBytes,
		logger:       logger,
	}
}

// Fetch downloads at most maxBodyBytes of the page and extracts metadata.
// Concurrent lookups for the same URL are coalesced.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) Meta {
	v, _, _ := f.group.Do(pageURL, func() (any, error) {
		return f.fetch(ctx, pageURL), nil
	})
	return v.(Meta)
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) Meta {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Meta{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		f.logger.Debugf(providers.TypeApp, "link-meta fetch failed for %s: %s", pageURL, err)
		return Meta{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return Meta{}
	}
	return Extract(string(body), pageURL)
}

// Extract pulls the <title> text and the best icon <link> from an HTML
// fragment, resolving hrefs against the page URL. A plain "icon" rel wins;
// an apple-touch-icon only stands in until one is found. With no icon link
// at all it falls back to /favicon.ico on the same origin.
func Extract(htmlText, baseURL string) Meta {
	var meta Meta
	var iconFinal bool

	doc, err := html.Parse(strings.NewReader(htmlText))
	if err == nil {
		walk(doc, &meta, &iconFinal, baseURL)
	}

	if meta.Icon == "" {
		if u, err := url.Parse(baseURL); err == nil {
			if icon, err := u.Parse("/favicon.ico"); err == nil {
				meta.Icon = icon.String()
			}
		}
	}
	return meta
}

func walk(n *html.Node, meta *Meta, iconFinal *bool, baseURL string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if meta.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				meta.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "link":
			if !*iconFinal {
				var rel, href string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "rel":
						rel = strings.ToLower(attr.Val)
					case "href":
						href = attr.Val
					}
				}
				if href != "" && strings.Contains(rel, "icon") {
					if strings.Contains(rel, "apple-touch-icon") {
						if meta.Icon == "" {
							meta.Icon = absURL(baseURL, href)
						}
					} else {
						meta.Icon = absURL(baseURL, href)
						*iconFinal = true
					}
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if meta.Title != "" && *iconFinal {
			return
		}
		walk(c, meta, iconFinal, baseURL)
	}
}

func absURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	u, err := b.Parse(href)
	if err != nil {
		return href
	}
	return u.String()
}
