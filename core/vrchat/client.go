package vrchat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"world-crawler/core/finder"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyResponse is returned when no tag produced a single page.
var ErrEmptyResponse = errors.New("fetching failed, null response")

const retryBackoff = 500 * time.Millisecond

// Client calls the favorites listing API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a listing API client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// FetchFavorites returns every favorited world entry across all tags.
func (c *Client) FetchFavorites(ctx context.Context) ([]any, error) {
	c.logger.Info("Fetching favorites", zap.Strings("tags", c.cfg.Tags))

	pages := make([][][]any, len(c.cfg.Tags))
	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range c.cfg.Tags {
		g.Go(func() error {
			tagPages, err := c.fetchTag(gctx, tag)
			if err != nil {
				return fmt.Errorf("tag %s: %w", tag, err)
			}
			pages[i] = tagPages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []any
	pageCount := 0
	for _, tagPages := range pages {
		for _, page := range tagPages {
			entries = append(entries, page...)
			pageCount++
		}
	}
	if pageCount == 0 {
		return nil, ErrEmptyResponse
	}

	c.logger.Info("Fetched favorites", zap.Int("pages", pageCount), zap.Int("entries", len(entries)))
	return entries, nil
}

func (c *Client) fetchTag(ctx context.Context, tag string) ([][]any, error) {
	var pages [][]any
	for offset := 0; offset <= c.cfg.MaxOffset; offset += c.cfg.PageSize {
		page, err := c.fetchPage(ctx, tag, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (c *Client) fetchPage(ctx context.Context, tag string, offset int) ([]any, error) {
	q := url.Values{}
	q.Set("n", strconv.Itoa(c.cfg.PageSize))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("tag", tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/worlds/favorites?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	for name, value := range map[string]string{
		"apiKey":        c.cfg.APIKey,
		"auth":          c.cfg.Auth,
		"twoFactorAuth": c.cfg.TwoFactorAuth,
	} {
		if value != "" {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	decoded, err := finder.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode offset %d: %w", offset, err)
	}
	page, ok := decoded.([]any)
	if !ok {
		return nil, fmt.Errorf("decode offset %d: expected a JSON array, got %T", offset, decoded)
	}
	return page, nil
}

// do sends req, retrying transport errors, and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("Retrying request",
				zap.String("url", req.URL.String()),
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		resp, err := c.http.Do(req.Clone(ctx))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, req.URL.String())
		}
		return body, nil
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.cfg.Retries+1, lastErr)
}
