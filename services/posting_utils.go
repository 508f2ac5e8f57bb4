package services

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	twitterIntentURL = "https://twitter.com/intent/tweet"
	linkedInShareURL = "https://www.linkedin.com/sharing/share-offsite/"
)

// ShareLinks are the "share this article" targets for one post
type ShareLinks struct {
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}

// FormatHashtag formats a tag value as a valid hashtag for social media platforms
// (Twitter, LinkedIn, etc.). It removes spaces and special characters, keeping only
// letters, numbers, and underscores. Hashtags cannot start with a number.
func FormatHashtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	var result strings.Builder
	for _, r := range tag {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			result.WriteRune(r)
		}
	}

	formatted := strings.ToLower(result.String())
	if len(formatted) > 0 && formatted[0] >= '0' && formatted[0] <= '9' {
		return ""
	}

	return formatted
}

// BuildPostURL constructs a blog post URL from base URL and post slug
// Parameters:
//   - baseURL: The base URL (e.g., "https://example.com")
//   - slug: The blog post slug
//
// Returns:
//   - The full blog post URL (e.g., "https://example.com/blog/{slug}")
func BuildPostURL(baseURL, slug string) string {
	if baseURL == "" || slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/blog/%s", strings.TrimSuffix(baseURL, "/"), slug)
}

// BuildShareLinks builds the Twitter and LinkedIn share URLs for a post.
// Tags that cannot be made into hashtags are skipped.
func BuildShareLinks(baseURL, slug, title string, tags []string) ShareLinks {
	postURL := BuildPostURL(baseURL, slug)

	tweet := url.Values{}
	tweet.Set("text", title)
	tweet.Set("url", postURL)
	var hashtags []string
	for _, tag := range tags {
		if h := FormatHashtag(tag); h != "" {
			hashtags = append(hashtags, h)
		}
	}
	if len(hashtags) > 0 {
		tweet.Set("hashtags", strings.Join(hashtags, ","))
	}

	share := url.Values{}
	share.Set("url", postURL)

	return ShareLinks{
		URL:      postURL,
		Twitter:  twitterIntentURL + "?" + tweet.Encode(),
		LinkedIn: linkedInShareURL + "?" + share.Encode(),
	}
}
