// Package pager turns cursor-paginated list calls into lazy item sequences.
package pager

import (
	"context"
	"iter"
	"math"
)

// Request is what a single page fetch receives.
type Request struct {
	Cursor string
	// MaxItems is zero when the provider default page size applies.
	MaxItems int32
}

type Page[T any] struct {
	Items      []T
	NextCursor string
	More       bool
}

type FetchFunc[T any] func(ctx context.Context, req Request) (Page[T], error)

type Options struct {
	// Limit caps the total number of items. Zero means unbounded.
	Limit int
	// PageCeiling is the largest page the provider accepts.
	PageCeiling int32
	StartCursor string
}

type Scanner[T any] struct {
	fetch     FetchFunc[T]
	opts      Options
	cursor    string
	fetched   int
	exhausted bool
}

func New[T any](fetch FetchFunc[T], opts Options) *Scanner[T] {
	return &Scanner[T]{
		fetch:  fetch,
		opts:   opts,
		cursor: opts.StartCursor,
	}
}

// Scan is New(fetch, opts).All(ctx).
func Scan[T any](ctx context.Context, fetch FetchFunc[T], opts Options) iter.Seq2[T, error] {
	return New(fetch, opts).All(ctx)
}

// Cursor is the token to resume from. While a page is only partly consumed it
// still points at that page, so a restart may repeat some of its items.
func (s *Scanner[T]) Cursor() string {
	return s.cursor
}

func (s *Scanner[T]) Done() bool {
	return s.exhausted || s.limitReached()
}

func (s *Scanner[T]) limitReached() bool {
	return s.opts.Limit > 0 && s.fetched >= s.opts.Limit
}

func (s *Scanner[T]) pageSize() int32 {
	if s.opts.Limit <= 0 {
		return 0
	}
	remaining := min(s.opts.Limit-s.fetched, math.MaxInt32)
	if s.opts.PageCeiling > 0 && remaining > int(s.opts.PageCeiling) {
		return s.opts.PageCeiling
	}
	return int32(remaining)
}

// All yields items until the provider runs out of pages or the limit is hit.
// A fetch error is yielded once and ends the sequence.
func (s *Scanner[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for !s.Done() {
			if err := ctx.Err(); err != nil {
				var zero T
				yield(zero, err)
				return
			}

			page, err := s.fetch(ctx, Request{Cursor: s.cursor, MaxItems: s.pageSize()})
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			consumed := true
			for _, item := range page.Items {
				if s.limitReached() {
					consumed = false
					break
				}
				s.fetched++
				if !yield(item, nil) {
					return
				}
			}
			if !consumed {
				return
			}

			if !page.More || page.NextCursor == "" {
				s.exhausted = true
			}
			s.cursor = page.NextCursor
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
