package pager_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/BerryBytes/awskit/internal/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	pages    [][]string
	requests []pager.Request
	failAt   int
}

func (f *fakeProvider) fetch(_ context.Context, req pager.Request) (pager.Page[string], error) {
	f.requests = append(f.requests, req)

	index := 0
	if req.Cursor != "" {
		if _, err := fmt.Sscanf(req.Cursor, "page-%d", &index); err != nil {
			return pager.Page[string]{}, err
		}
	}
	if f.failAt > 0 && index == f.failAt {
		return pager.Page[string]{}, errors.New("throttled")
	}

	items := f.pages[index]
	if req.MaxItems > 0 && int(req.MaxItems) < len(items) {
		items = items[:req.MaxItems]
	}

	page := pager.Page[string]{Items: items}
	if index+1 < len(f.pages) {
		page.More = true
		page.NextCursor = fmt.Sprintf("page-%d", index+1)
	}
	return page, nil
}

func threePages() *fakeProvider {
	return &fakeProvider{pages: [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g"},
	}}
}

func TestScan_AllPages(t *testing.T) {
	provider := threePages()

	items, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, items)
	require.Len(t, provider.requests, 3)
	assert.Equal(t, pager.Request{}, provider.requests[0])
	assert.Equal(t, "page-1", provider.requests[1].Cursor)
	assert.Equal(t, "page-2", provider.requests[2].Cursor)
	for _, req := range provider.requests {
		assert.Zero(t, req.MaxItems, "unbounded scans use the provider default page size")
	}
}

func TestScan_Limit(t *testing.T) {
	provider := threePages()

	items, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{Limit: 4, PageCeiling: 1000}))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	require.Len(t, provider.requests, 2)
	assert.Equal(t, int32(4), provider.requests[0].MaxItems)
	assert.Equal(t, int32(1), provider.requests[1].MaxItems)
}

func TestScan_PageCeiling(t *testing.T) {
	provider := threePages()

	_, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{Limit: 5000, PageCeiling: 2}))
	require.NoError(t, err)

	for _, req := range provider.requests {
		assert.LessOrEqual(t, req.MaxItems, int32(2))
	}
}

func TestScan_HugeLimitStaysInRange(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("limits above 32 bits need a 64-bit int")
	}
	tests := []struct {
		name    string
		limit   int64
		ceiling int32
		want    int32
	}{
		{"ceiling applies", math.MaxInt32 + 11, 1000, 1000},
		{"clamped without ceiling", 1<<32 + 5, 0, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := threePages()

			items, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{Limit: int(tt.limit), PageCeiling: tt.ceiling}))
			require.NoError(t, err)

			assert.Len(t, items, 7)
			for _, req := range provider.requests {
				assert.Equal(t, tt.want, req.MaxItems)
			}
		})
	}
}

func TestScan_LimitCapsOversizedPage(t *testing.T) {
	fetch := func(_ context.Context, _ pager.Request) (pager.Page[int], error) {
		return pager.Page[int]{Items: []int{1, 2, 3, 4, 5}, More: true, NextCursor: "next"}, nil
	}

	items, err := pager.Collect(pager.Scan(context.Background(), fetch, pager.Options{Limit: 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
}

func TestScan_StartCursor(t *testing.T) {
	provider := threePages()

	items, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{StartCursor: "page-1"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "e", "f", "g"}, items)
	assert.Equal(t, "page-1", provider.requests[0].Cursor)
}

func TestScan_ErrorEndsSequence(t *testing.T) {
	provider := threePages()
	provider.failAt = 1

	items, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{}))
	require.EqualError(t, err, "throttled")
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestScan_IsLazy(t *testing.T) {
	provider := threePages()
	scanner := pager.New(provider.fetch, pager.Options{})

	var got []string
	for item, err := range scanner.All(context.Background()) {
		require.NoError(t, err)
		got = append(got, item)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Len(t, provider.requests, 1)
	assert.Equal(t, "", scanner.Cursor())
	assert.False(t, scanner.Done())
}

func TestScanner_ResumeFromCursor(t *testing.T) {
	provider := threePages()
	scanner := pager.New(provider.fetch, pager.Options{})

	var first []string
	for item, err := range scanner.All(context.Background()) {
		require.NoError(t, err)
		first = append(first, item)
		if item == "f" {
			break
		}
	}
	assert.Equal(t, "page-1", scanner.Cursor())

	resumed, err := pager.Collect(pager.Scan(context.Background(), provider.fetch, pager.Options{StartCursor: "page-2"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, resumed)
}

func TestScan_CancelledContext(t *testing.T) {
	provider := threePages()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pager.Collect(pager.Scan(ctx, provider.fetch, pager.Options{}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, provider.requests)
}
