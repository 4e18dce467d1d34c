package dto

import (
	"time"

	"github.com/newspulse/newspulse/internal/domain"
)

// Article is the wire shape served to the browser client. Field names
// follow the front end's expectations (image, date, viewCount).
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author,omitempty"`
	Source      string    `json:"source,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
	Country     string    `json:"country,omitempty"`
	State       string    `json:"state,omitempty"`
	District    string    `json:"district,omitempty"`
	ViewCount   int64     `json:"viewCount,omitempty"`
}

// FromDomain maps a domain article to its wire shape.
func FromDomain(a domain.Article) Article {
	return Article{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.SourceURL,
		Image:       a.ImageURL,
		Author:      a.Author,
		Source:      a.SourceName,
		PublishedAt: a.PublishedAt,
		Date:        a.PublishedAt,
		Category:    string(a.Category),
		Region:      string(a.Region),
		Country:     a.Country,
		State:       a.State,
		District:    a.District,
	}
}

// FromDomainList maps a result list, preserving order.
func FromDomainList(articles []domain.Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromDomain(a))
	}
	return out
}
