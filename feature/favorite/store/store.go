// Package store persists favorite worlds and reconciles fetched records
// against them.
//
// Each operation runs in one transaction. During Upsert every looked-up row is
// read with SELECT ... FOR UPDATE, so overlapping cycles serialize per row
// until the batch commits. SQLite has no row locks; it serializes writers at
// the database level instead and the locking clause is omitted there.
package store

import (
	"context"
	"errors"
	"fmt"

	"world-crawler/core/database"
	"world-crawler/feature/favorite/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateFavorite is returned when several stored rows share a favorite id.
var ErrDuplicateFavorite = errors.New("multiple stored rows share a favorite id")

// Store is the reconciliation store for favorite worlds.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New creates a Store.
func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the favorite_world table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.FavoriteWorld{}); err != nil {
		return fmt.Errorf("failed to migrate favorite_world: %w", err)
	}
	return nil
}

// CheckSchema returns the expected columns missing from the stored table.
func (s *Store) CheckSchema(ctx context.Context) ([]string, error) {
	return database.MissingColumns(s.db.WithContext(ctx), models.FavoriteWorld{}.TableName(), models.Columns)
}

// SelectAll returns every stored row ordered by id.
func (s *Store) SelectAll(ctx context.Context) ([]models.FavoriteWorld, error) {
	var rows []models.FavoriteWorld
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to select favorite worlds: %w", err)
	}
	return rows, nil
}

// Get returns the stored row for a world id, or nil when there is none.
func (s *Store) Get(ctx context.Context, worldID string) (*models.FavoriteWorld, error) {
	var rows []models.FavoriteWorld
	if err := s.db.WithContext(ctx).Where("world_id = ?", worldID).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorite world %s: %w", worldID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ClearFavorited marks every stored row as not favorited and returns the number
// of rows affected.
func (s *Store) ClearFavorited(ctx context.Context) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&models.FavoriteWorld{}).
			Update("is_favorited", false)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear favorited flags: %w", err)
	}

	s.logger.Debug("Cleared favorited flags", zap.Int64("rows", affected))
	return affected, nil
}

// Upsert reconciles a batch of records against the stored rows and returns one
// outcome per record, in input order. Any failure rolls back the whole batch.
func (s *Store) Upsert(ctx context.Context, records []models.Record) ([]models.Outcome, error) {
	outcomes := make([]models.Outcome, 0, len(records))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, r := range records {
			var (
				outcome models.Outcome
				err     error
			)
			if r.IsPublic() {
				outcome, err = s.upsertPublic(tx, r)
			} else {
				outcome, err = s.upsertDegraded(tx, r)
			}
			if err != nil {
				return fmt.Errorf("record %d (favorite %s): %w", i, r.FavoriteID, err)
			}
			outcomes = append(outcomes, outcome)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert favorite worlds: %w", err)
	}
	return outcomes, nil
}

func (s *Store) upsertPublic(tx *gorm.DB, r models.Record) (models.Outcome, error) {
	stored, err := lockRow(tx, "world_id", r.WorldID)
	if err != nil {
		return 0, err
	}

	if stored == nil {
		row := models.NewFavoriteWorld(r)
		if err := tx.Create(row).Error; err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.WorldID, err)
		}
		s.logger.Info("Add world", zap.String("world_id", r.WorldID), zap.String("world_name", r.WorldName))
		return models.OutcomeInserted, nil
	}

	stored.Apply(r)
	if err := tx.Save(stored).Error; err != nil {
		return 0, fmt.Errorf("update %s: %w", r.WorldID, err)
	}
	return models.OutcomeUpdated, nil
}

func (s *Store) upsertDegraded(tx *gorm.DB, r models.Record) (models.Outcome, error) {
	stored, err := lockRow(tx, "favorite_id", r.FavoriteID)
	if err != nil {
		return 0, err
	}

	// A world never seen public has nothing to be identified by.
	if stored == nil {
		s.logger.Debug("Skip unmatched degraded favorite",
			zap.String("favorite_id", r.FavoriteID),
			zap.String("release_status", r.ReleaseStatus))
		return models.OutcomeSkipped, nil
	}

	if stored.ReleaseStatus != r.ReleaseStatus {
		previous := stored.ReleaseStatus
		err := tx.Model(stored).Updates(map[string]any{
			"favorite_id":    r.FavoriteID,
			"favorite_group": r.FavoriteGroup,
			"release_status": r.ReleaseStatus,
			"registered_at":  r.RegisteredAt,
		}).Error
		if err != nil {
			return 0, fmt.Errorf("update release status of %s: %w", stored.WorldID, err)
		}
		s.logger.Info("Change release status",
			zap.String("world_id", stored.WorldID),
			zap.String("world_name", stored.WorldName),
			zap.String("from", previous),
			zap.String("to", r.ReleaseStatus))
	}
	return models.OutcomeUpdated, nil
}

// lockRow reads the row matching column = value and holds a row lock on it
// until the surrounding transaction ends.
func lockRow(tx *gorm.DB, column, value string) (*models.FavoriteWorld, error) {
	q := tx.Where(column+" = ?", value)
	if tx.Dialector.Name() != database.DriverSQLite {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rows []models.FavoriteWorld
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("lock %s=%s: %w", column, value, err)
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return &rows[0], nil
	default:
		return nil, fmt.Errorf("%w: %s=%s (%d rows)", ErrDuplicateFavorite, column, value, len(rows))
	}
}
