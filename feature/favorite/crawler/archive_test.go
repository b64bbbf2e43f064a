package crawler

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"world-crawler/core/finder"
	"world-crawler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listing(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		ch <- obj
	}
	close(ch)
	return ch
}

func TestArchiveSave(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, "test-bucket", "/cache/", zap.NewNop())
	archive.now = func() time.Time { return time.Date(2024, 9, 3, 12, 34, 56, 0, time.UTC) }

	entries := []any{finder.Object{{Key: "id", Value: "wrld_1"}, {Key: "name", Value: "One"}}}

	var uploaded string
	client.On("PutObject", mock.Anything, "test-bucket", "cache/favorites_world_20240903123456.json",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			uploaded = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	key, err := archive.Save(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, "cache/favorites_world_20240903123456.json", key)
	assert.Equal(t, "[\n  {\n    \"id\": \"wrld_1\",\n    \"name\": \"One\"\n  }\n]", uploaded)
	client.AssertExpectations(t)
}

func TestArchiveSaveError(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("connection refused"))

	_, err := archive.Save(context.Background(), []any{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestArchiveLoadLatest(t *testing.T) {
	base := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("PicksMostRecentlyModified", func(t *testing.T) {
		client := new(mocks.Client)
		archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())

		client.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{
			Prefix: "cache/favorites_world_", Recursive: true,
		}).Return(listing(
			minio.ObjectInfo{Key: "cache/favorites_world_20240901000000.json", LastModified: base.Add(-48 * time.Hour)},
			minio.ObjectInfo{Key: "cache/favorites_world_20240903000000.json", LastModified: base},
			minio.ObjectInfo{Key: "cache/favorites_world_notes.txt", LastModified: base.Add(time.Hour)},
			minio.ObjectInfo{Key: "cache/favorites_world_20240902000000.json", LastModified: base.Add(-24 * time.Hour)},
		))
		client.On("GetObject", mock.Anything, "test-bucket", "cache/favorites_world_20240903000000.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`[{"id":"wrld_1","releaseStatus":"public"}]`)), nil)

		entries, key, err := archive.LoadLatest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "cache/favorites_world_20240903000000.json", key)
		require.Len(t, entries, 1)
		obj := entries[0].(finder.Object)
		assert.Equal(t, "id", obj[0].Key)
		assert.Equal(t, "releaseStatus", obj[1].Key)
	})

	t.Run("NoObjects", func(t *testing.T) {
		client := new(mocks.Client)
		archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
		client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(listing())

		_, _, err := archive.LoadLatest(context.Background())
		assert.ErrorIs(t, err, ErrNoCache)
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		archive := NewArchive(client, "test-bucket", "cache", zap.NewNop())
		client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(listing(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, _, err := archive.LoadLatest(context.Background())
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("NotAnArray", func(t *testing.T) {
		client := new(mocks.Client)
		archive := NewArchive(client, "test-bucket", "", zap.NewNop())
		client.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{
			Prefix: "favorites_world_", Recursive: true,
		}).Return(listing(minio.ObjectInfo{Key: "favorites_world_20240903000000.json", LastModified: base}))
		client.On("GetObject", mock.Anything, "test-bucket", "favorites_world_20240903000000.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"id":"wrld_1"}`)), nil)

		_, _, err := archive.LoadLatest(context.Background())
		assert.ErrorContains(t, err, "expected a JSON array")
	})
}
