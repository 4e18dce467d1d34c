package domain

import (
	"sort"
	"strings"
	"time"
)

// DefaultAuthor is used when a source exposes no author information.
const DefaultAuthor = "Unknown"

// Category is the editorial section an article belongs to.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryScience       Category = "Science"
	CategoryBusiness      Category = "Business"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategorySports        Category = "Sports"
	CategoryGeneral       Category = "General"
)

var categories = map[string]Category{
	"technology":    CategoryTechnology,
	"science":       CategoryScience,
	"business":      CategoryBusiness,
	"health":        CategoryHealth,
	"entertainment": CategoryEntertainment,
	"sports":        CategorySports,
	"general":       CategoryGeneral,
}

// ParseCategory resolves a caller-supplied category name case-insensitively.
// Unknown or empty values fall back to General.
func ParseCategory(s string) Category {
	if c, ok := categories[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return CategoryGeneral
}

// Region is the geographic bucket an article is classified into.
type Region string

const (
	RegionDomestic      Region = "domestic"
	RegionInternational Region = "international"
	RegionDistrict      Region = "district"
)

// Valid reports whether r is one of the three known regions.
func (r Region) Valid() bool {
	return r == RegionDomestic || r == RegionInternational || r == RegionDistrict
}

// Article is the common shape every source adapter normalizes into.
// Instances are built fresh per request and not mutated after
// classification.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    Category  `json:"category"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	SourceName  string    `json:"sourceName,omitempty"`

	Region   Region `json:"region"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
}

// SortByRecency orders articles by publish time descending. The sort is
// stable so same-timestamp articles keep their source-arrival order.
func SortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// DropUntitled returns articles with the empty-title entries removed.
func DropUntitled(articles []Article) []Article {
	kept := articles[:0]
	for _, a := range articles {
		if strings.TrimSpace(a.Title) != "" {
			kept = append(kept, a)
		}
	}
	return kept
}
