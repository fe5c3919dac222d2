package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{pool: pool, db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, postfix, result, display, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		evaluation.ID,
		evaluation.Expression,
		evaluation.Postfix,
		evaluation.Result,
		evaluation.Display,
		evaluation.Error,
		evaluation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) List(ctx context.Context, cursor *dto.Cursor, size int) (*storage.Page, error) {
	slog.Debug("Listing pg evaluations", "has_cursor", cursor != nil, "size", size)

	var (
		rows pgx.Rows
		err  error
	)
	if cursor == nil {
		rows, err = s.db.Query(ctx, `
            SELECT id, expression, postfix, result, display, error, created_at
            FROM evaluations
            ORDER BY created_at DESC, id DESC
            LIMIT $1`, size+1)
	} else {
		rows, err = s.db.Query(ctx, `
            SELECT id, expression, postfix, result, display, error, created_at
            FROM evaluations
            WHERE (created_at, id) < ($1, $2)
            ORDER BY created_at DESC, id DESC
            LIMIT $3`, cursor.CreatedAt, cursor.ID, size+1)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var items []domain.Evaluation
	for rows.Next() {
		var e domain.Evaluation
		if err := rows.Scan(&e.ID, &e.Expression, &e.Postfix, &e.Result, &e.Display, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return storage.NewPage(items, size), nil
}

func (s *Storer) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storer) Close() {
	s.pool.Close()
}
