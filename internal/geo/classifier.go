// Package geo assigns region/country/state/district tags to articles,
// either from explicit caller hints or from keyword heuristics over the
// article text.
package geo

import (
	"strings"

	"github.com/newspulse/newspulse/internal/domain"
)

const (
	countryIndia   = "India"
	countryUnknown = "Unknown"
)

// defaultKeywords are Indian place and country names scanned for in
// title+description when no explicit geography is available.
var defaultKeywords = []string{
	"india", "indian", "bharat",
	"mumbai", "delhi", "new delhi", "bengaluru", "bangalore", "chennai",
	"kolkata", "hyderabad", "pune", "ahmedabad", "jaipur", "lucknow",
	"maharashtra", "karnataka", "tamil nadu", "kerala", "gujarat",
	"rajasthan", "west bengal", "uttar pradesh", "bihar", "odisha",
	"punjab", "haryana", "telangana", "andhra pradesh", "assam",
}

// Hints are the caller's explicit geography parameters; empty fields mean
// "not specified".
type Hints struct {
	Region   domain.Region
	State    string
	District string
	Country  string
}

// Classifier tags articles with geography. The keyword table and state
// directory are fixed at construction and read-only afterwards.
type Classifier struct {
	keywords []string
	states   *StateDirectory
}

type Option func(*Classifier)

// WithStateDirectory lets the classifier backfill a state for a
// district-only hint.
func WithStateDirectory(d *StateDirectory) Option {
	return func(c *Classifier) { c.states = d }
}

// WithKeywords replaces the default keyword table.
func WithKeywords(keywords []string) Option {
	return func(c *Classifier) {
		c.keywords = make([]string, 0, len(keywords))
		for _, k := range keywords {
			c.keywords = append(c.keywords, strings.ToLower(k))
		}
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{keywords: defaultKeywords}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the article with region, country, state and district
// set. Precedence: explicit region hint, then country/state deduction,
// then keyword scan. The result always carries a valid region and a
// non-empty country.
func (c *Classifier) Classify(article domain.Article, hints Hints) domain.Article {
	country := firstNonEmpty(hints.Country, article.Country)
	state := firstNonEmpty(hints.State, article.State)
	district := firstNonEmpty(hints.District, article.District)

	if district != "" && state == "" && c.states != nil {
		state = c.states.LookupState(district)
	}

	article.Country = country
	article.State = state
	article.District = district

	switch {
	case hints.Region.Valid():
		article.Region = hints.Region
	case strings.EqualFold(country, countryIndia) && state != "":
		article.Region = domain.RegionDistrict
	case strings.EqualFold(country, countryIndia):
		article.Region = domain.RegionDomestic
	case country != "":
		article.Region = domain.RegionInternational
	case c.matchesKeyword(article.Title + " " + article.Description):
		article.Region = domain.RegionDomestic
	default:
		article.Region = domain.RegionInternational
	}

	if article.Country == "" {
		article.Country = countryUnknown
	}

	return article
}

func (c *Classifier) matchesKeyword(text string) bool {
	text = strings.ToLower(text)
	for _, keyword := range c.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
