package crawler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"world-crawler/core/metrics"
	"world-crawler/feature/favorite/models"
	"world-crawler/feature/favorite/normalize"

	"go.uber.org/zap"
)

// Source fetches the raw favorite-world entries.
type Source interface {
	FetchFavorites(ctx context.Context) ([]any, error)
}

// Store is the reconciliation store a cycle writes to.
type Store interface {
	ClearFavorited(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, records []models.Record) ([]models.Outcome, error)
}

// RunOptions controls a single cycle.
type RunOptions struct {
	// FromCache reads the latest archived payload instead of calling the API.
	FromCache bool
}

// Summary reports what one cycle did.
type Summary struct {
	Fetched   int    `json:"fetched"`
	Discarded int    `json:"discarded"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Cleared   int64  `json:"cleared"`
	FromCache bool   `json:"from_cache"`
	Archive   string `json:"archive,omitempty"`
}

// Crawler runs fetch, normalize and reconcile cycles.
type Crawler struct {
	source     Source
	archive    *Archive
	normalizer *normalize.Normalizer
	store      Store
	metrics    *metrics.Metrics
	logger     *zap.Logger
	mu         sync.Mutex
}

// New creates a Crawler. archive and m may be nil.
func New(source Source, archive *Archive, normalizer *normalize.Normalizer, store Store, m *metrics.Metrics, logger *zap.Logger) *Crawler {
	return &Crawler{
		source:     source,
		archive:    archive,
		normalizer: normalizer,
		store:      store,
		metrics:    m,
		logger:     logger,
	}
}

// Run executes one cycle. Concurrent calls are serialized.
func (c *Crawler) Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := time.Now()
	c.logger.Info("Crawl cycle started", zap.Bool("from_cache", opts.FromCache))

	summary, err := c.run(ctx, opts)
	if err != nil {
		c.observe(metrics.ResultFailure, started, nil)
		return nil, err
	}

	result := metrics.ResultSuccess
	if summary.Fetched == summary.Discarded {
		result = metrics.ResultEmpty
	}
	c.observe(result, started, summary)

	c.logger.Info("Crawl cycle finished",
		zap.Int("fetched", summary.Fetched),
		zap.Int("discarded", summary.Discarded),
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int64("cleared", summary.Cleared),
		zap.Duration("took", time.Since(started)))
	return summary, nil
}

func (c *Crawler) run(ctx context.Context, opts RunOptions) (*Summary, error) {
	summary := &Summary{FromCache: opts.FromCache}

	entries, key, err := c.fetch(ctx, opts)
	if err != nil {
		return nil, err
	}
	summary.Fetched = len(entries)
	summary.Archive = key

	records := make([]models.Record, 0, len(entries))
	for i, entry := range entries {
		r, err := c.normalizer.Normalize(entry)
		if err != nil {
			summary.Discarded++
			c.logger.Warn("Discard favorite entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		records = append(records, r)
	}

	// Entries that all fail to normalize point at a payload shape change, not
	// at an empty favorites list.
	if len(entries) > 0 && len(records) == 0 {
		c.logger.Warn("Every fetched entry was discarded, store left untouched",
			zap.Int("discarded", summary.Discarded))
		return summary, nil
	}

	cleared, err := c.store.ClearFavorited(ctx)
	if err != nil {
		return nil, err
	}
	summary.Cleared = cleared

	if len(records) == 0 {
		c.logger.Info("No favorites fetched, every stored world unflagged", zap.Int64("cleared", cleared))
		return summary, nil
	}

	outcomes, err := c.store.Upsert(ctx, records)
	if err != nil {
		return nil, err
	}
	for _, o := range outcomes {
		switch o {
		case models.OutcomeInserted:
			summary.Inserted++
		case models.OutcomeUpdated:
			summary.Updated++
		case models.OutcomeSkipped:
			summary.Skipped++
		}
	}
	return summary, nil
}

// fetch returns the entries and, when archived or read from the archive, the object key.
func (c *Crawler) fetch(ctx context.Context, opts RunOptions) ([]any, string, error) {
	if opts.FromCache {
		if c.archive == nil {
			return nil, "", fmt.Errorf("%w: archive is disabled", ErrNoCache)
		}
		return c.archive.LoadLatest(ctx)
	}

	entries, err := c.source.FetchFavorites(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch favorites: %w", err)
	}

	if c.archive == nil {
		return entries, "", nil
	}
	key, err := c.archive.Save(ctx, entries)
	if err != nil {
		c.logger.Warn("Failed to archive favorites payload", zap.Error(err))
		return entries, "", nil
	}
	return entries, key, nil
}

func (c *Crawler) observe(result string, started time.Time, s *Summary) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRun(result, started)
	if s == nil {
		return
	}
	c.metrics.AddRecords(models.OutcomeInserted.String(), s.Inserted)
	c.metrics.AddRecords(models.OutcomeUpdated.String(), s.Updated)
	c.metrics.AddRecords(models.OutcomeSkipped.String(), s.Skipped)
	c.metrics.AddRecords("discarded", s.Discarded)
}
