package storage

import (
	"context"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
)

// Page is one newest-first slice of the evaluation history.
type Page struct {
	Items      []domain.Evaluation `json:"items"`
	NextCursor *dto.Cursor         `json:"-"`
	HasMore    bool                `json:"has_more"`
}

type Reader interface {
	// List returns evaluations older than cursor, newest first.
	// cursor: optional decoded cursor from previous page (nil for first page)
	List(ctx context.Context, cursor *dto.Cursor, size int) (*Page, error)
}

// NewPage trims a size+1 fetch to size items and derives the next cursor.
func NewPage(items []domain.Evaluation, size int) *Page {
	if items == nil {
		items = make([]domain.Evaluation, 0)
	}

	hasMore := len(items) > size
	if hasMore {
		items = items[:size]
	}

	var next *dto.Cursor
	if hasMore && len(items) > 0 {
		last := items[len(items)-1]
		next = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return &Page{Items: items, NextCursor: next, HasMore: hasMore}
}
