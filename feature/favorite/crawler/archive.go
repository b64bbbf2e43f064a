package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"world-crawler/core/finder"
	"world-crawler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNoCache is returned when a cached run finds no archived payload.
var ErrNoCache = errors.New("no archived favorites payload")

const (
	archivePrefix     = "favorites_world_"
	archiveTimeLayout = "20060102150405"
)

// Archive stores fetched payloads in object storage and reads them back.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchive creates an Archive writing under bucket/prefix.
func NewArchive(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
		now:    time.Now,
	}
}

// ObjectName returns the key a payload archived at t is stored under.
func (a *Archive) ObjectName(t time.Time) string {
	return path.Join(a.prefix, archivePrefix+t.Format(archiveTimeLayout)+".json")
}

// Save writes the entries as indented JSON and returns the object key.
func (a *Archive) Save(ctx context.Context, entries []any) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	key := a.ObjectName(a.now())
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	a.logger.Info("Archived favorites payload", zap.String("key", key), zap.Int("entries", len(entries)))
	return key, nil
}

// Latest returns the key of the most recently modified archived payload.
func (a *Archive) Latest(ctx context.Context) (string, error) {
	listPrefix := archivePrefix
	if a.prefix != "" {
		listPrefix = a.prefix + "/" + archivePrefix
	}

	var (
		latest   string
		latestAt time.Time
	)
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		if latest == "" || obj.LastModified.After(latestAt) {
			latest, latestAt = obj.Key, obj.LastModified
		}
	}
	if latest == "" {
		return "", ErrNoCache
	}
	return latest, nil
}

// LoadLatest decodes the most recently archived payload.
func (a *Archive) LoadLatest(ctx context.Context) ([]any, string, error) {
	key, err := a.Latest(ctx)
	if err != nil {
		return nil, "", err
	}

	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	decoded, err := finder.Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", key, err)
	}
	entries, ok := decoded.([]any)
	if !ok {
		return nil, "", fmt.Errorf("failed to decode %s: expected a JSON array, got %T", key, decoded)
	}

	a.logger.Info("Loaded archived favorites payload", zap.String("key", key), zap.Int("entries", len(entries)))
	return entries, key, nil
}
