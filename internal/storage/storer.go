package storage

import (
	"context"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
}

// Store is a history backend that can both record and list evaluations.
type Store interface {
	Storer
	Reader
	Ping(ctx context.Context) error
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
