// Package storagetest holds behaviour checks shared by every storage.Store backend.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract expects s to be empty.
func RunStoreContract(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	value := 14.0

	ok := domain.NewEvaluation("2+3*4")
	ok.Postfix = "2 3 4 * +"
	ok.Result = &value
	ok.Display = "14"
	ok.CreatedAt = base

	failed := domain.NewEvaluation("(1")
	failed.Display = domain.ErrorDisplay
	failed.Error = "invalid brackets: parentheses mismatch"
	failed.CreatedAt = base.Add(time.Second)

	// same timestamp as failed, ordered by id
	tied := domain.NewEvaluation("1/0")
	tied.Display = "inf"
	tied.CreatedAt = failed.CreatedAt

	for _, e := range []domain.Evaluation{ok, failed, tied} {
		id, err := s.Save(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, e.ID, id)
	}

	id, err := s.Save(ctx, domain.Evaluation{Expression: "7", Display: "7", CreatedAt: base.Add(-time.Hour)})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	var (
		got  []domain.Evaluation
		next *dto.Cursor
	)
	for i := 0; i < 10; i++ {
		page, err := s.List(ctx, next, 2)
		require.NoError(t, err)
		require.LessOrEqual(t, len(page.Items), 2)
		got = append(got, page.Items...)
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			break
		}
		require.NotNil(t, page.NextCursor)
		next = page.NextCursor
	}

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Before(got[i-1].CreatedAt, got[i-1].ID), "items out of order at %d", i)
	}
	assert.Equal(t, id, got[3].ID)

	byID := make(map[uuid.UUID]domain.Evaluation, len(got))
	for _, e := range got {
		byID[e.ID] = e
	}

	stored := byID[ok.ID]
	require.NotNil(t, stored.Result)
	assert.Equal(t, 14.0, *stored.Result)
	assert.Equal(t, "2 3 4 * +", stored.Postfix)
	assert.True(t, base.Equal(stored.CreatedAt))
	assert.False(t, stored.Failed())

	assert.Nil(t, byID[failed.ID].Result)
	assert.True(t, byID[failed.ID].Failed())
	assert.Equal(t, domain.ErrorDisplay, byID[failed.ID].Display)
}
