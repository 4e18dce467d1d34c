package source

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Image extraction is an ordered list of strategies tried until one yields
// a candidate URL: enclosure -> media extension -> <img src> in content ->
// CSS background-image in the description snippet. Candidates are then
// resolved against the feed origin and must end up absolute http(s).
var imgTagPattern = regexp.MustCompile(`(?i)<img[^>]+src=["']?([^"'\s>]+)`)

var backgroundPattern = regexp.MustCompile(`(?i)background-image:\s*url\(['"]?([^'")]+?)['"]?\)`)

type imageExtractor func(item *gofeed.Item) string

var imageExtractors = []imageExtractor{
	imageFromEnclosure,
	imageFromMediaExtension,
	imageFromContentTag,
	imageFromBackground,
}

// extractImage runs the strategy chain and returns an absolute image URL,
// or "" when no strategy produced a usable one.
func extractImage(item *gofeed.Item, feedURL string) string {
	for _, extract := range imageExtractors {
		raw := extract(item)
		if raw == "" {
			continue
		}
		if abs := resolveImageURL(raw, feedURL); abs != "" {
			return abs
		}
	}
	return ""
}

func imageFromEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

func imageFromMediaExtension(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, key := range []string{"content", "thumbnail"} {
		for _, ext := range media[key] {
			if u := ext.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}

func imageFromContentTag(item *gofeed.Item) string {
	for _, text := range []string{item.Content, item.Description} {
		if m := imgTagPattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func imageFromBackground(item *gofeed.Item) string {
	for _, text := range []string{item.Content, item.Description} {
		if m := backgroundPattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// resolveImageURL makes raw absolute. Relative paths resolve against the
// feed's origin; anything that does not end up as absolute http(s) is
// rejected.
func resolveImageURL(raw, feedURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	if parsed.Scheme == "" && feedURL != "" {
		base, err := url.Parse(feedURL)
		if err != nil {
			return ""
		}
		parsed = base.ResolveReference(parsed)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ""
	}
	return parsed.String()
}

// validateImageURL accepts only absolute http(s) URLs, for providers that
// should never hand out relative paths in the first place.
func validateImageURL(raw string) string {
	return resolveImageURL(raw, "")
}
