package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Page is one crawled documentation page, keyed by URL for upsert.
type Page struct {
	Id        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Url       string           `gorm:"type:text;not null;uniqueIndex"`
	Site      string           `gorm:"type:varchar(255);not null;index"`
	Title     string           `gorm:"type:varchar(512)"`
	Text      string           `gorm:"type:text;not null"`
	FetchedAt time.Time        `gorm:"not null;index"`
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`

	Score *float64 `gorm:"->;-:migration"`
}

func (Page) TableName() string {
	return "pages"
}
