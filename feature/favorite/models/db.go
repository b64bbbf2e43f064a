package models

// FavoriteWorld is the persisted row for one favorited world.
type FavoriteWorld struct {
	ID                uint   `gorm:"column:id;primaryKey" json:"id"`
	WorldID           string `gorm:"column:world_id;size:256;not null;uniqueIndex" json:"world_id"`
	WorldName         string `gorm:"column:world_name;size:256;not null" json:"world_name"`
	WorldURL          string `gorm:"column:world_url;size:512;not null" json:"world_url"`
	Description       string `gorm:"column:description;size:512" json:"description"`
	AuthorID          string `gorm:"column:author_id;size:256;not null" json:"author_id"`
	AuthorName        string `gorm:"column:author_name;size:256;not null" json:"author_name"`
	FavoriteID        string `gorm:"column:favorite_id;size:256;not null;index" json:"favorite_id"`
	FavoriteGroup     string `gorm:"column:favorite_group;size:256;not null" json:"favorite_group"`
	IsFavorited       bool   `gorm:"column:is_favorited;not null" json:"is_favorited"`
	ReleaseStatus     string `gorm:"column:release_status;size:256;not null" json:"release_status"`
	Featured          int    `gorm:"column:featured;not null" json:"featured"`
	ImageURL          string `gorm:"column:image_url;size:512" json:"image_url"`
	ThumbnailImageURL string `gorm:"column:thumbnail_image_url;size:512" json:"thumbnail_image_url"`
	Version           int    `gorm:"column:version;not null" json:"version"`
	Star              int    `gorm:"column:star;not null" json:"star"`
	Visit             int    `gorm:"column:visit;not null" json:"visit"`
	PublishedAt       string `gorm:"column:published_at;size:256" json:"published_at"`
	LabPublishedAt    string `gorm:"column:lab_published_at;size:256" json:"lab_published_at"`
	CreatedAt         string `gorm:"column:created_at;size:256;not null" json:"created_at"`
	UpdatedAt         string `gorm:"column:updated_at;size:256;not null" json:"updated_at"`
	RegisteredAt      string `gorm:"column:registered_at;size:256;not null" json:"registered_at"`
}

// TableName overrides the table name.
func (FavoriteWorld) TableName() string {
	return "favorite_world"
}

// Columns lists the stored columns in declaration order.
var Columns = []string{
	"id", "world_id", "world_name", "world_url", "description", "author_id", "author_name",
	"favorite_id", "favorite_group", "is_favorited", "release_status", "featured",
	"image_url", "thumbnail_image_url", "version", "star", "visit",
	"published_at", "lab_published_at", "created_at", "updated_at", "registered_at",
}

// NewFavoriteWorld builds a new, favorited row from a record.
func NewFavoriteWorld(r Record) *FavoriteWorld {
	w := &FavoriteWorld{RegisteredAt: r.RegisteredAt}
	w.Apply(r)
	return w
}

// Apply overwrites every field except ID and RegisteredAt with the record's
// values and marks the row as favorited.
func (w *FavoriteWorld) Apply(r Record) {
	w.WorldID = r.WorldID
	w.WorldName = r.WorldName
	w.WorldURL = r.WorldURL
	w.Description = r.Description
	w.AuthorID = r.AuthorID
	w.AuthorName = r.AuthorName
	w.FavoriteID = r.FavoriteID
	w.FavoriteGroup = r.FavoriteGroup
	w.ReleaseStatus = r.ReleaseStatus
	w.Featured = r.Featured
	w.ImageURL = r.ImageURL
	w.ThumbnailImageURL = r.ThumbnailImageURL
	w.Version = r.Version
	w.Star = r.Star
	w.Visit = r.Visit
	w.PublishedAt = r.PublishedAt
	w.LabPublishedAt = r.LabPublishedAt
	w.CreatedAt = r.CreatedAt
	w.UpdatedAt = r.UpdatedAt
	w.IsFavorited = true
}

// ToRecord returns the row's descriptive fields as a Record (unvalidated).
func (w FavoriteWorld) ToRecord() Record {
	return Record{
		WorldID:           w.WorldID,
		WorldName:         w.WorldName,
		WorldURL:          w.WorldURL,
		Description:       w.Description,
		AuthorID:          w.AuthorID,
		AuthorName:        w.AuthorName,
		FavoriteID:        w.FavoriteID,
		FavoriteGroup:     w.FavoriteGroup,
		ReleaseStatus:     w.ReleaseStatus,
		Featured:          w.Featured,
		ImageURL:          w.ImageURL,
		ThumbnailImageURL: w.ThumbnailImageURL,
		Version:           w.Version,
		Star:              w.Star,
		Visit:             w.Visit,
		PublishedAt:       w.PublishedAt,
		LabPublishedAt:    w.LabPublishedAt,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
		RegisteredAt:      w.RegisteredAt,
	}
}
