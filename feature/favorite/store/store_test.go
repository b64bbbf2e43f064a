package store_test

import (
	"context"
	"testing"

	"world-crawler/core/database"
	"world-crawler/feature/favorite/models"
	"world-crawler/feature/favorite/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := store.New(db, zap.NewNop())
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func publicRecord(worldID, favoriteID string) models.Record {
	return models.Record{
		WorldID:           worldID,
		WorldName:         "world " + worldID,
		WorldURL:          "https://vrchat.com/home/world/" + worldID,
		Description:       "description",
		AuthorID:          "usr_author",
		AuthorName:        "author",
		FavoriteID:        favoriteID,
		FavoriteGroup:     "worlds1",
		ReleaseStatus:     models.ReleaseStatusPublic,
		Featured:          0,
		ImageURL:          "image_url",
		ThumbnailImageURL: "thumbnail_image_url",
		Version:           1,
		Star:              3,
		Visit:             10,
		PublishedAt:       "2024-09-03T12:34:56.789000",
		CreatedAt:         "2024-09-01T12:34:56.789000",
		UpdatedAt:         "2024-09-04T12:34:56.789000",
		RegisteredAt:      "2024-09-05T12:34:56.789000",
	}
}

func degradedRecord(favoriteID, status, registeredAt string) models.Record {
	return models.Record{
		WorldID:       models.UnknownWorldID,
		WorldName:     "???",
		AuthorName:    "???",
		FavoriteID:    favoriteID,
		FavoriteGroup: "worlds2",
		ReleaseStatus: status,
		Featured:      models.UnknownCount,
		Version:       models.UnknownCount,
		Star:          models.UnknownCount,
		Visit:         models.UnknownCount,
		RegisteredAt:  registeredAt,
	}
}

func TestUpsert_InsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first := publicRecord("wrld_x", "fvrt_x")
	outcomes, err := s.Upsert(ctx, []models.Record{first})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeInserted}, outcomes)

	second := publicRecord("wrld_x", "fvrt_x")
	second.Star = 99
	second.WorldName = "renamed"
	second.RegisteredAt = "2025-01-01T00:00:00"
	outcomes, err = s.Upsert(ctx, []models.Record{second})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeUpdated}, outcomes)

	rows, err := s.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 99, rows[0].Star)
	assert.Equal(t, "renamed", rows[0].WorldName)
	assert.True(t, rows[0].IsFavorited)
	assert.Equal(t, first.RegisteredAt, rows[0].RegisteredAt)
}

func TestUpsert_SameRecordTwiceInOneBatch(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	r := publicRecord("wrld_x", "fvrt_x")
	outcomes, err := s.Upsert(ctx, []models.Record{r, r})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeInserted, models.OutcomeUpdated}, outcomes)

	rows, err := s.SelectAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpsert_UpdateRestoresFavoritedFlag(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Upsert(ctx, []models.Record{publicRecord("wrld_x", "fvrt_x")})
	require.NoError(t, err)
	_, err = s.ClearFavorited(ctx)
	require.NoError(t, err)

	_, err = s.Upsert(ctx, []models.Record{publicRecord("wrld_x", "fvrt_x")})
	require.NoError(t, err)

	row, err := s.Get(ctx, "wrld_x")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.IsFavorited)
}

func TestUpsert_DegradedTransition(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Upsert(ctx, []models.Record{publicRecord("wrld_x", "fvrt_x")})
	require.NoError(t, err)
	_, err = s.ClearFavorited(ctx)
	require.NoError(t, err)

	sighting := degradedRecord("fvrt_x", "private", "2025-02-02T02:02:02")
	outcomes, err := s.Upsert(ctx, []models.Record{sighting})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeUpdated}, outcomes)

	row, err := s.Get(ctx, "wrld_x")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "wrld_x", row.WorldID)
	assert.Equal(t, "world wrld_x", row.WorldName)
	assert.Equal(t, 3, row.Star)
	assert.Equal(t, "private", row.ReleaseStatus)
	assert.Equal(t, "worlds2", row.FavoriteGroup)
	assert.Equal(t, "2025-02-02T02:02:02", row.RegisteredAt)
	assert.False(t, row.IsFavorited)

	// Same status again: counted as a touch, nothing changes.
	again := degradedRecord("fvrt_x", "private", "2026-03-03T03:03:03")
	outcomes, err = s.Upsert(ctx, []models.Record{again})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeUpdated}, outcomes)

	row, err = s.Get(ctx, "wrld_x")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-02T02:02:02", row.RegisteredAt)
}

func TestUpsert_DegradedUnmatched(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	outcomes, err := s.Upsert(ctx, []models.Record{degradedRecord("fvrt_unknown", "private", "2025-02-02T02:02:02")})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeSkipped}, outcomes)

	rows, err := s.SelectAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpsert_DegradedNeverMatchesByWorldID(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Upsert(ctx, []models.Record{publicRecord("wrld_x", "fvrt_x")})
	require.NoError(t, err)

	outcomes, err := s.Upsert(ctx, []models.Record{degradedRecord("fvrt_other", "private", "2025-02-02T02:02:02")})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{models.OutcomeSkipped}, outcomes)

	row, err := s.Get(ctx, "wrld_x")
	require.NoError(t, err)
	assert.Equal(t, models.ReleaseStatusPublic, row.ReleaseStatus)
}

func TestUpsert_MixedBatchOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Upsert(ctx, []models.Record{publicRecord("wrld_a", "fvrt_a")})
	require.NoError(t, err)

	outcomes, err := s.Upsert(ctx, []models.Record{
		degradedRecord("fvrt_none", "hidden", "2025-01-01T00:00:00"),
		publicRecord("wrld_b", "fvrt_b"),
		publicRecord("wrld_a", "fvrt_a"),
		degradedRecord("fvrt_b", "private", "2025-01-01T00:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Outcome{
		models.OutcomeSkipped,
		models.OutcomeInserted,
		models.OutcomeUpdated,
		models.OutcomeUpdated,
	}, outcomes)

	row, err := s.Get(ctx, "wrld_b")
	require.NoError(t, err)
	assert.Equal(t, "private", row.ReleaseStatus)
}

func TestUpsert_Empty(t *testing.T) {
	outcomes, err := newStore(t).Upsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestClearFavorited(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	affected, err := s.ClearFavorited(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	_, err = s.Upsert(ctx, []models.Record{publicRecord("wrld_a", "fvrt_a"), publicRecord("wrld_b", "fvrt_b")})
	require.NoError(t, err)

	affected, err = s.ClearFavorited(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	rows, err := s.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.False(t, row.IsFavorited)
	}
}

func TestGet_Missing(t *testing.T) {
	row, err := newStore(t).Get(context.Background(), "wrld_missing")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestCheckSchema(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	missing, err := s.CheckSchema(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	missing, err := store.New(db, zap.NewNop()).CheckSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Columns, missing)
}
