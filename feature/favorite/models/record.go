package models

import (
	"errors"
	"fmt"
	"regexp"

	"world-crawler/core/isotime"
)

const (
	// ReleaseStatusPublic selects the full lifecycle.
	ReleaseStatusPublic = "public"
	// UnknownWorldID is reported by the listing API once a world is no longer visible.
	UnknownWorldID = "???"
	// UnknownCount fills numeric fields of degraded records.
	UnknownCount = -1
)

var worldIDPattern = regexp.MustCompile(`^wrld_.+$`)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("invalid record")

// ValidationError reports the first field of a Record that violates an invariant.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Record is one favorited world as seen in a single fetch cycle.
type Record struct {
	WorldID           string `json:"world_id"`
	WorldName         string `json:"world_name"`
	WorldURL          string `json:"world_url"`
	Description       string `json:"description"`
	AuthorID          string `json:"author_id"`
	AuthorName        string `json:"author_name"`
	FavoriteID        string `json:"favorite_id"`
	FavoriteGroup     string `json:"favorite_group"`
	ReleaseStatus     string `json:"release_status"`
	Featured          int    `json:"featured"`
	ImageURL          string `json:"image_url"`
	ThumbnailImageURL string `json:"thumbnail_image_url"`
	Version           int    `json:"version"`
	Star              int    `json:"star"`
	Visit             int    `json:"visit"`
	PublishedAt       string `json:"published_at"`
	LabPublishedAt    string `json:"lab_published_at"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
	RegisteredAt      string `json:"registered_at"`
}

// NewRecord validates r and returns it, or returns a *ValidationError.
func NewRecord(r Record) (Record, error) {
	if err := r.validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// IsPublic reports whether the record follows the full lifecycle.
func (r Record) IsPublic() bool {
	return r.ReleaseStatus == ReleaseStatusPublic
}

func (r Record) validate() error {
	if r.ReleaseStatus == "" {
		return &ValidationError{Field: "release_status", Value: r.ReleaseStatus, Reason: "must not be empty"}
	}
	if r.FavoriteID == "" {
		return &ValidationError{Field: "favorite_id", Value: r.FavoriteID, Reason: "must not be empty"}
	}

	if r.IsPublic() {
		if !worldIDPattern.MatchString(r.WorldID) {
			return &ValidationError{Field: "world_id", Value: r.WorldID, Reason: `must match "wrld_*"`}
		}
		if r.Featured != 0 && r.Featured != 1 {
			return &ValidationError{Field: "featured", Value: r.Featured, Reason: "must be 0 or 1"}
		}
		counters := []struct {
			name  string
			value int
		}{{"version", r.Version}, {"star", r.Star}, {"visit", r.Visit}}
		for _, c := range counters {
			if c.value < 0 {
				return &ValidationError{Field: c.name, Value: c.value, Reason: "must not be negative"}
			}
		}
	} else {
		if r.WorldID != UnknownWorldID {
			return &ValidationError{Field: "world_id", Value: r.WorldID, Reason: fmt.Sprintf("must be %q when not public", UnknownWorldID)}
		}
		counters := []struct {
			name  string
			value int
		}{{"featured", r.Featured}, {"version", r.Version}, {"star", r.Star}, {"visit", r.Visit}}
		for _, c := range counters {
			if c.value != UnknownCount {
				return &ValidationError{Field: c.name, Value: c.value, Reason: "must be -1 when not public"}
			}
		}
	}

	stamps := []struct {
		name  string
		value string
	}{
		{"published_at", r.PublishedAt},
		{"lab_published_at", r.LabPublishedAt},
		{"created_at", r.CreatedAt},
		{"updated_at", r.UpdatedAt},
		{"registered_at", r.RegisteredAt},
	}
	for _, s := range stamps {
		if s.value != "" && !isotime.Valid(s.value) {
			return &ValidationError{Field: s.name, Value: s.value, Reason: "must be an ISO-8601 timestamp"}
		}
	}
	return nil
}
