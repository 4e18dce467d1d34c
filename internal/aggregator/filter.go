package aggregator

import (
	"sort"
	"strings"

	"github.com/newspulse/newspulse/internal/domain"
)

const countryIndia = "India"

// FilterByGeography narrows a static-tier result to the query's geography.
// Rule table:
//
//	region=domestic + country=India  -> region=domestic OR country=India
//	region=international             -> region=international AND country!=India
//	region=district + country=India  -> requested state/district must match
//	                                    when given, AND (region=district OR
//	                                    (country=India AND state set))
//	anything else                    -> pass through unfiltered
func FilterByGeography(articles []domain.Article, q domain.NewsQuery) []domain.Article {
	switch {
	case q.Region == domain.RegionDomestic && strings.EqualFold(q.Country, countryIndia):
		return filter(articles, func(a domain.Article) bool {
			return a.Region == domain.RegionDomestic || strings.EqualFold(a.Country, countryIndia)
		})

	case q.Region == domain.RegionInternational:
		return filter(articles, func(a domain.Article) bool {
			return a.Region == domain.RegionInternational && !strings.EqualFold(a.Country, countryIndia)
		})

	case q.Region == domain.RegionDistrict && strings.EqualFold(q.Country, countryIndia):
		return filter(articles, func(a domain.Article) bool {
			if q.State != "" && !strings.EqualFold(a.State, q.State) {
				return false
			}
			if q.District != "" && !strings.EqualFold(a.District, q.District) {
				return false
			}
			isDistrictTagged := strings.EqualFold(a.Country, countryIndia) && a.State != ""
			return a.Region == domain.RegionDistrict || isDistrictTagged
		})

	default:
		return articles
	}
}

func filter(articles []domain.Article, keep func(domain.Article) bool) []domain.Article {
	kept := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if keep(a) {
			kept = append(kept, a)
		}
	}
	return kept
}

// rankByViews reorders in place by view count descending. The sort is
// stable, so zero-view articles keep their recency order.
func rankByViews(articles []domain.Article, counts map[string]int64) {
	sort.SliceStable(articles, func(i, j int) bool {
		return counts[articles[i].SourceURL] > counts[articles[j].SourceURL]
	})
}
