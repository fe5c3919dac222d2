package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Storer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	doc := toDocument(evaluation)

	req := s.client.Index(s.indexName).Id(doc.ID).Document(doc)
	if s.config.WaitForRefresh {
		req = req.Refresh(refresh.Waitfor)
	}

	res, err := req.Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return evaluation.ID, nil
}

func (s *Storer) List(ctx context.Context, cursor *dto.Cursor, size int) (*storage.Page, error) {
	slog.Debug("Listing es evaluations", "has_cursor", cursor != nil, "size", size)

	sortOrderDesc := sortorder.Desc
	searchReq := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			MatchAll: &types.MatchAllQuery{},
		}).
		Size(size+1).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		)

	if cursor != nil {
		searchReq = searchReq.SearchAfter(
			types.FieldValue(cursor.CreatedAt.UnixMilli()),
			types.FieldValue(cursor.ID.String()),
		)
	}

	res, err := searchReq.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "cursor", cursor != nil)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	items := make([]domain.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc EvaluationDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		e, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}

	return storage.NewPage(items, size), nil
}

func (s *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Storer) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping returned non-success status")
	}
	return nil
}

func (s *Storer) Close() {}
