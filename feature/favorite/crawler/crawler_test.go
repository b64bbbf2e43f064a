package crawler

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"world-crawler/core/database"
	"world-crawler/core/finder"
	"world-crawler/core/metrics"
	"world-crawler/core/storage/mocks"
	"world-crawler/feature/favorite/models"
	"world-crawler/feature/favorite/normalize"
	"world-crawler/feature/favorite/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const publicEntry = `{
  "id": "wrld_1",
  "name": "World One",
  "description": "first",
  "authorId": "usr_a",
  "authorName": "author",
  "favoriteId": "fvrt_1",
  "favoriteGroup": "worlds1",
  "releaseStatus": "public",
  "featured": false,
  "imageUrl": "https://example.com/1.png",
  "thumbnailImageUrl": "https://example.com/1_t.png",
  "version": 2,
  "favorites": 3,
  "visits": 10,
  "publicationDate": "2024-09-03T03:34:56.789Z",
  "labsPublicationDate": "none",
  "created_at": "2024-09-01T03:34:56.789Z",
  "updated_at": "2024-09-04T03:34:56.789Z"
}`

const privateEntry = `{
  "id": "???",
  "name": "???",
  "authorName": "???",
  "favoriteId": "fvrt_2",
  "favoriteGroup": "worlds2",
  "releaseStatus": "private"
}`

const malformedEntry = `{"id": "wrld_bad", "favoriteId": "fvrt_3"}`

type fakeSource struct {
	entries []any
	err     error
	calls   int
}

func (f *fakeSource) FetchFavorites(context.Context) ([]any, error) {
	f.calls++
	return f.entries, f.err
}

func decodeEntries(t *testing.T, raw ...string) []any {
	t.Helper()
	entries := make([]any, 0, len(raw))
	for _, r := range raw {
		v, err := finder.Decode([]byte(r))
		require.NoError(t, err)
		entries = append(entries, v)
	}
	return entries
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	s := store.New(db, zap.NewNop())
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func newNormalizer() *normalize.Normalizer {
	return normalize.New(normalize.WithClock(func() time.Time {
		return time.Date(2024, 9, 5, 12, 0, 0, 0, time.UTC)
	}))
}

func TestRun_EndToEnd(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	source := &fakeSource{entries: decodeEntries(t, publicEntry, privateEntry, malformedEntry)}
	m := metrics.New()
	c := New(source, nil, newNormalizer(), st, m, zap.NewNop())

	summary, err := c.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, &Summary{Fetched: 3, Discarded: 1, Inserted: 1, Skipped: 1}, summary)

	row, err := st.Get(ctx, "wrld_1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.IsFavorited)
	assert.Equal(t, 3, row.Star)
	assert.Equal(t, "2024-09-03T12:34:56.789000", row.PublishedAt)
	assert.Equal(t, "", row.LabPublishedAt)
	assert.Equal(t, "https://vrchat.com/home/world/wrld_1", row.WorldURL)

	// Second cycle: the world is still favorited.
	summary, err = c.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, int64(1), summary.Cleared)

	// The world drops out of the favorites.
	source.entries = []any{}
	summary, err = c.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, &Summary{Cleared: 1}, summary)

	row, err = st.Get(ctx, "wrld_1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.IsFavorited)
	assert.Equal(t, 3, row.Star)
}

func TestRun_EmptyFetchClearsFlags(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	source := &fakeSource{entries: decodeEntries(t, publicEntry)}
	c := New(source, nil, newNormalizer(), st, nil, zap.NewNop())

	_, err := c.Run(ctx, RunOptions{})
	require.NoError(t, err)

	source.entries = []any{}
	summary, err := c.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Fetched)
	assert.Equal(t, int64(1), summary.Cleared)

	rows, err := st.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsFavorited)
}

func TestRun_NothingToReconcileLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	_, err := st.Upsert(ctx, []models.Record{mustRecord(t, publicEntry)})
	require.NoError(t, err)

	source := &fakeSource{entries: decodeEntries(t, malformedEntry)}
	c := New(source, nil, newNormalizer(), st, nil, zap.NewNop())

	summary, err := c.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Discarded)
	assert.Equal(t, int64(0), summary.Cleared)

	row, err := st.Get(ctx, "wrld_1")
	require.NoError(t, err)
	assert.True(t, row.IsFavorited)
}

func TestRun_FetchError(t *testing.T) {
	source := &fakeSource{err: errors.New("HTTP 401")}
	c := New(source, nil, newNormalizer(), newTestStore(t), metrics.New(), zap.NewNop())

	_, err := c.Run(context.Background(), RunOptions{})
	assert.ErrorContains(t, err, "failed to fetch favorites: HTTP 401")
}

func TestRun_ArchivesLivePayload(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
	archive.now = func() time.Time { return time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC) }
	client.On("PutObject", mock.Anything, "test-bucket", "cache/favorites_world_20240903120000.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	source := &fakeSource{entries: decodeEntries(t, publicEntry)}
	c := New(source, archive, newNormalizer(), newTestStore(t), nil, zap.NewNop())

	summary, err := c.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "cache/favorites_world_20240903120000.json", summary.Archive)
	assert.Equal(t, 1, summary.Inserted)
	client.AssertExpectations(t)
}

func TestRun_ArchiveFailureDoesNotFailCycle(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket missing"))

	source := &fakeSource{entries: decodeEntries(t, publicEntry)}
	c := New(source, archive, newNormalizer(), newTestStore(t), nil, zap.NewNop())

	summary, err := c.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, summary.Archive)
	assert.Equal(t, 1, summary.Inserted)
}

func TestRun_FromCache(t *testing.T) {
	t.Run("ReadsLatestArchive", func(t *testing.T) {
		client := new(mocks.Client)
		archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
		client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(listing(
			minio.ObjectInfo{Key: "cache/favorites_world_20240903000000.json", LastModified: time.Now()},
		))
		client.On("GetObject", mock.Anything, "test-bucket", "cache/favorites_world_20240903000000.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("["+publicEntry+"]")), nil)

		source := &fakeSource{}
		c := New(source, archive, newNormalizer(), newTestStore(t), nil, zap.NewNop())

		summary, err := c.Run(context.Background(), RunOptions{FromCache: true})
		require.NoError(t, err)
		assert.Equal(t, 0, source.calls)
		assert.True(t, summary.FromCache)
		assert.Equal(t, 1, summary.Inserted)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ArchiveDisabled", func(t *testing.T) {
		c := New(&fakeSource{}, nil, newNormalizer(), newTestStore(t), nil, zap.NewNop())

		_, err := c.Run(context.Background(), RunOptions{FromCache: true})
		assert.ErrorIs(t, err, ErrNoCache)
	})
}

func mustRecord(t *testing.T, raw string) models.Record {
	t.Helper()
	r, err := newNormalizer().Normalize(decodeEntries(t, raw)[0])
	require.NoError(t, err)
	return r
}
