package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *InMemStorer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[evaluation.ID] = evaluation

	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "expression", evaluation.Expression)
	return evaluation.ID, nil
}

func (s *InMemStorer) List(ctx context.Context, cursor *dto.Cursor, size int) (*storage.Page, error) {
	s.storageLock.RLock()
	items := make([]domain.Evaluation, 0, len(s.storage))
	for _, e := range s.storage {
		if cursor != nil && !e.Before(cursor.CreatedAt, cursor.ID) {
			continue
		}
		items = append(items, e)
	}
	s.storageLock.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[j].Before(items[i].CreatedAt, items[i].ID)
	})

	if len(items) > size+1 {
		items = items[:size+1]
	}

	return storage.NewPage(items, size), nil
}

func (s *InMemStorer) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemStorer) Close() {}
