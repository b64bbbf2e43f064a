// Package normalize turns one raw favorite-world payload into a validated
// models.Record.
//
// All fields are looked up among the immediate children of the entry only, so
// nested objects such as unityPackages (which carry their own "id" and
// "created_at") never cause ambiguity.
package normalize

import (
	"fmt"
	"time"

	"world-crawler/core/finder"
	"world-crawler/core/isotime"
	"world-crawler/core/utils"
	"world-crawler/feature/favorite/models"
)

// DefaultWorldURLBase prefixes the world id to form the world page URL.
const DefaultWorldURLBase = "https://vrchat.com/home/world/"

// noDate marks an absent publication date in the listing API.
const noDate = "none"

// Normalizer builds records from raw entries.
type Normalizer struct {
	now          func() time.Time
	worldURLBase string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used for RegisteredAt.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithWorldURLBase overrides the world page URL prefix.
func WithWorldURLBase(base string) Option {
	return func(n *Normalizer) { n.worldURLBase = base }
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now, worldURLBase: DefaultWorldURLBase}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize builds the record for one raw entry. Extraction and validation
// failures are returned as errors; the caller decides to drop the entry.
func (n *Normalizer) Normalize(entry any) (models.Record, error) {
	e := extractor{entry: entry}
	registeredAt := isotime.Local(n.now())

	releaseStatus := e.str("releaseStatus")
	if e.err != nil {
		return models.Record{}, e.err
	}

	if releaseStatus != models.ReleaseStatusPublic {
		r := models.Record{
			WorldID:       e.str("id"),
			WorldName:     e.str("name"),
			AuthorName:    e.str("authorName"),
			FavoriteID:    e.str("favoriteId"),
			FavoriteGroup: e.str("favoriteGroup"),
			ReleaseStatus: releaseStatus,
			Featured:      models.UnknownCount,
			Version:       models.UnknownCount,
			Star:          models.UnknownCount,
			Visit:         models.UnknownCount,
			RegisteredAt:  registeredAt,
		}
		if e.err != nil {
			return models.Record{}, e.err
		}
		return models.NewRecord(r)
	}

	worldID := e.str("id")
	r := models.Record{
		WorldID:           worldID,
		WorldName:         e.str("name"),
		WorldURL:          n.worldURLBase + worldID,
		Description:       e.str("description"),
		AuthorID:          e.str("authorId"),
		AuthorName:        e.str("authorName"),
		FavoriteID:        e.str("favoriteId"),
		FavoriteGroup:     e.str("favoriteGroup"),
		ReleaseStatus:     releaseStatus,
		Featured:          e.flag("featured"),
		ImageURL:          e.str("imageUrl"),
		ThumbnailImageURL: e.str("thumbnailImageUrl"),
		Version:           e.integer("version"),
		Star:              e.integer("favorites"),
		Visit:             e.integer("visits"),
		PublishedAt:       e.optionalDate("publicationDate"),
		LabPublishedAt:    e.optionalDate("labsPublicationDate"),
		CreatedAt:         e.date("created_at"),
		UpdatedAt:         e.date("updated_at"),
		RegisteredAt:      registeredAt,
	}
	if e.err != nil {
		return models.Record{}, e.err
	}
	return models.NewRecord(r)
}

// extractor reads top-level fields and keeps the first failure.
type extractor struct {
	entry any
	err   error
}

func (e *extractor) value(key string) (any, bool) {
	if e.err != nil {
		return nil, false
	}
	v, err := finder.FindOne(e.entry, key, finder.Allow(""))
	if err != nil {
		e.err = err
		return nil, false
	}
	return v, true
}

func (e *extractor) fail(key string, err error) {
	e.err = fmt.Errorf("field %q: %w", key, err)
}

func (e *extractor) str(key string) string {
	v, ok := e.value(key)
	if !ok {
		return ""
	}
	s, err := utils.StringValue(v)
	if err != nil {
		e.fail(key, err)
	}
	return s
}

func (e *extractor) integer(key string) int {
	v, ok := e.value(key)
	if !ok {
		return 0
	}
	i, err := utils.ParseInt(v)
	if err != nil {
		e.fail(key, err)
	}
	return i
}

func (e *extractor) flag(key string) int {
	v, ok := e.value(key)
	if ok && utils.Truthy(v) {
		return 1
	}
	return 0
}

func (e *extractor) date(key string) string {
	s := e.str(key)
	if e.err != nil {
		return ""
	}
	out, err := isotime.Normalize(s)
	if err != nil {
		e.fail(key, err)
	}
	return out
}

func (e *extractor) optionalDate(key string) string {
	s := e.str(key)
	if e.err != nil || s == noDate {
		return ""
	}
	out, err := isotime.Normalize(s)
	if err != nil {
		e.fail(key, err)
	}
	return out
}
