package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/storagetest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Store = (*InMemStorer)(nil)

func seed(t *testing.T, s *InMemStorer, n int) []domain.Evaluation {
	t.Helper()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	var saved []domain.Evaluation
	for i := 0; i < n; i++ {
		e := domain.NewEvaluation("1+1")
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		_, err := s.Save(context.Background(), e)
		require.NoError(t, err)
		saved = append(saved, e)
	}
	return saved
}

func TestInMemStorer_SaveAssignsID(t *testing.T) {
	s := NewInMemStorer()

	id, err := s.Save(context.Background(), domain.Evaluation{Expression: "2+2"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestInMemStorer_ListNewestFirst(t *testing.T) {
	s := NewInMemStorer()
	saved := seed(t, s, 3)

	page, err := s.List(context.Background(), nil, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, saved[2].ID, page.Items[0].ID)
	assert.Equal(t, saved[0].ID, page.Items[2].ID)
}

func TestInMemStorer_ListPages(t *testing.T) {
	s := NewInMemStorer()
	saved := seed(t, s, 5)

	first, err := s.List(context.Background(), nil, 2)
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	require.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, saved[4].ID, first.Items[0].ID)
	assert.Equal(t, saved[3].ID, first.Items[1].ID)

	second, err := s.List(context.Background(), first.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.Equal(t, saved[2].ID, second.Items[0].ID)

	third, err := s.List(context.Background(), second.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, third.Items, 1)
	assert.False(t, third.HasMore)
	assert.Equal(t, saved[0].ID, third.Items[0].ID)
}

func TestInMemStorer_ListEmpty(t *testing.T) {
	page, err := NewInMemStorer().List(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestInMemStorer_Contract(t *testing.T) {
	storagetest.RunStoreContract(t, NewInMemStorer())
}
