// Package source contains the adapters that normalize external news
// payloads (RSS feeds, headline APIs, the bundled sample dataset) into the
// common domain.Article shape. Adapters fail soft: an unreachable or
// malformed source yields an empty slice or an error, and the aggregator
// treats both as "try the next tier".
package source

import (
	"context"

	"github.com/newspulse/newspulse/internal/domain"
)

// descriptionMaxLen bounds descriptions built from raw content.
const descriptionMaxLen = 200

// Params narrows one fetch to a category and a page window.
type Params struct {
	Category string
	Page     int
	PageSize int
}

// Source is the uniform adapter contract the aggregator's fallback loop
// iterates over.
type Source interface {
	Name() string
	Fetch(ctx context.Context, p Params) ([]domain.Article, error)
}

// Filterable marks sources whose results carry geography tags and accept
// post-hoc geography filtering. Only the static dataset qualifies today.
type Filterable interface {
	Filterable() bool
}
