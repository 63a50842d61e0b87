package models

import (
	"net/url"
	"strings"
)

type QuickLaunchItem struct {
	Id    string `json:"id"`
	Url   string `json:"url"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

func DefaultQuickLaunch() []QuickLaunchItem {
	return []QuickLaunchItem{
		{Id: "gh", Url: "https://github.com", Title: "GitHub", Icon: FaviconURL("https://github.com")},
		{Id: "fig", Url: "https://www.figma.com", Title: "Figma", Icon: FaviconURL("https://www.figma.com")},
		{Id: "ntn", Url: "https://www.notion.so", Title: "Notion", Icon: FaviconURL("https://www.notion.so")},
	}
}

// FaviconURL returns the Google s2 favicon endpoint for a site, used when no
// better icon is known.
func FaviconURL(site string) string {
	return "https://www.google.com/s2/favicons?sz=64&domain_url=" + url.QueryEscape(site)
}

// NormalizeURL coerces user input into an absolute http(s) URL, defaulting
// the scheme to https.
func NormalizeURL(input string) string {
	if input == "" {
		return ""
	}
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return u.String()
	}
	trimmed := strings.TrimPrefix(strings.TrimPrefix(input, "https://"), "http://")
	return "https://" + trimmed
}

// Host extracts the hostname of an absolute URL, empty on parse failure.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
