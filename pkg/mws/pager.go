package mws

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
)

const defaultMaxPages = 100

// Reasons a pager run stopped, reported in PageResult.StoppedAt.
const (
	StoppedNoMoreResults          = "no_more_results"
	StoppedMaxPages               = "max_pages"
	StoppedTokenFollowingDisabled = "token_following_disabled"
)

// Page is one response of a list operation.
type Page[T any] struct {
	Items     []T
	NextToken string
}

// PageResult holds everything collected by Pager.All.
type PageResult[T any] struct {
	Items     []T
	PagesUsed int
	StoppedAt string
	// NextToken is set when the run stopped with results still pending.
	NextToken string
}

type pagerConfig struct {
	maxPages     int
	followTokens bool
	logger       *slog.Logger
}

// PagerOption configures a Pager.
type PagerOption func(*pagerConfig)

// WithMaxPages caps the number of pages fetched. Zero or less removes the cap.
func WithMaxPages(n int) PagerOption {
	return func(c *pagerConfig) {
		c.maxPages = n
	}
}

// WithTokenFollowing controls whether continuation tokens are consumed.
// When disabled only the first page is fetched and Token exposes the
// pending continuation token.
func WithTokenFollowing(follow bool) PagerOption {
	return func(c *pagerConfig) {
		c.followTokens = follow
	}
}

// WithPagerLogger sets the logger.
func WithPagerLogger(l *slog.Logger) PagerOption {
	return func(c *pagerConfig) {
		c.logger = l
	}
}

// Pager walks a list operation and its ByNextToken follow-up.
type Pager[T any] struct {
	first func(context.Context) (*Page[T], error)
	next  func(context.Context, string) (*Page[T], error)
	cfg   pagerConfig

	started bool
	token   string
	pages   int
}

// NewPager creates a Pager. first fetches the initial page; next fetches
// the page for a continuation token.
func NewPager[T any](
	first func(context.Context) (*Page[T], error),
	next func(context.Context, string) (*Page[T], error),
	opts ...PagerOption,
) *Pager[T] {
	cfg := pagerConfig{
		maxPages:     defaultMaxPages,
		followTokens: true,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pager[T]{first: first, next: next, cfg: cfg}
}

// HasMore reports whether Next would fetch another page.
func (p *Pager[T]) HasMore() bool {
	if !p.started {
		return true
	}
	if p.token == "" || !p.cfg.followTokens {
		return false
	}
	return p.cfg.maxPages <= 0 || p.pages < p.cfg.maxPages
}

// Token is the continuation token of the last page fetched, if any.
func (p *Pager[T]) Token() string {
	return p.token
}

// PagesUsed is the number of pages fetched so far.
func (p *Pager[T]) PagesUsed() int {
	return p.pages
}

// Next fetches the next page. It returns ErrNoMorePages once HasMore is false.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if !p.HasMore() {
		return nil, ErrNoMorePages
	}

	var (
		page *Page[T]
		err  error
	)
	if p.started {
		page, err = p.next(ctx, p.token)
	} else {
		page, err = p.first(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", p.pages+1, err)
	}

	p.started = true
	p.pages++
	p.token = page.NextToken

	p.cfg.logger.Debug("fetched page",
		"page", p.pages,
		"items", len(page.Items),
		"has_token", p.token != "",
	)
	return page.Items, nil
}

// All fetches pages until the results run out, the page cap is hit or
// token following is disabled.
func (p *Pager[T]) All(ctx context.Context) (*PageResult[T], error) {
	result := &PageResult[T]{}

	for p.HasMore() {
		items, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, items...)
	}

	result.PagesUsed = p.pages
	switch {
	case p.token == "":
		result.StoppedAt = StoppedNoMoreResults
	case !p.cfg.followTokens:
		result.StoppedAt = StoppedTokenFollowingDisabled
		result.NextToken = p.token
	default:
		result.StoppedAt = StoppedMaxPages
		result.NextToken = p.token
	}
	return result, nil
}

// Items iterates over every item across pages. A fetch error is yielded
// once with the zero item and ends the iteration.
func (p *Pager[T]) Items(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.HasMore() {
			items, err := p.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

type pageable[T any] interface {
	Page() *Page[T]
}

// listPager builds a Pager from a list call and its ByNextToken call.
func listPager[T any, L pageable[T]](
	first func(context.Context) (L, error),
	next func(context.Context, string) (L, error),
	opts ...PagerOption,
) *Pager[T] {
	return NewPager(
		func(ctx context.Context) (*Page[T], error) {
			list, err := first(ctx)
			if err != nil {
				return nil, err
			}
			return list.Page(), nil
		},
		func(ctx context.Context, token string) (*Page[T], error) {
			list, err := next(ctx, token)
			if err != nil {
				return nil, err
			}
			return list.Page(), nil
		},
		opts...,
	)
}
