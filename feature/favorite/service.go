package favorite

import (
	"context"
	"errors"

	"world-crawler/feature/favorite/crawler"
	"world-crawler/feature/favorite/models"
	"world-crawler/feature/favorite/store"

	"go.uber.org/zap"
)

// ErrWorldNotFound is returned when no stored row has the requested world id.
var ErrWorldNotFound = errors.New("world not found")

// SchemaReport is the result of checking the stored table against the model.
type SchemaReport struct {
	Table   string   `json:"table"`
	Missing []string `json:"missing"`
	OK      bool     `json:"ok"`
}

// Service serves stored favorites and runs crawl cycles on demand.
type Service struct {
	store   *store.Store
	crawler *crawler.Crawler
	logger  *zap.Logger
}

// NewService creates a favorites Service.
func NewService(st *store.Store, c *crawler.Crawler, logger *zap.Logger) *Service {
	return &Service{store: st, crawler: c, logger: logger}
}

// List returns the stored rows, optionally only those with the given favorited flag.
func (s *Service) List(ctx context.Context, favorited *bool) ([]models.FavoriteWorld, error) {
	rows, err := s.store.SelectAll(ctx)
	if err != nil {
		return nil, err
	}
	if favorited == nil {
		return rows, nil
	}

	filtered := make([]models.FavoriteWorld, 0, len(rows))
	for _, row := range rows {
		if row.IsFavorited == *favorited {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// Get returns the stored row of one world.
func (s *Service) Get(ctx context.Context, worldID string) (*models.FavoriteWorld, error) {
	row, err := s.store.Get(ctx, worldID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrWorldNotFound
	}
	return row, nil
}

// Sync runs one crawl cycle.
func (s *Service) Sync(ctx context.Context, fromCache bool) (*crawler.Summary, error) {
	return s.crawler.Run(ctx, crawler.RunOptions{FromCache: fromCache})
}

// Schema reports the model columns missing from the stored table.
func (s *Service) Schema(ctx context.Context) (*SchemaReport, error) {
	missing, err := s.store.CheckSchema(ctx)
	if err != nil {
		return nil, err
	}
	if missing == nil {
		missing = []string{}
	}
	return &SchemaReport{
		Table:   models.FavoriteWorld{}.TableName(),
		Missing: missing,
		OK:      len(missing) == 0,
	}, nil
}
