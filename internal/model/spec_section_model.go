package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// SpecSection is one outline section of the technical PDF specification.
// Sections carry no timestamp; ordering falls back to identity.
type SpecSection struct {
	Id        int64            `gorm:"primaryKey;autoIncrement"`
	Title     string           `gorm:"type:varchar(512);not null"`
	Content   string           `gorm:"type:text;not null"`
	Page      int              `gorm:"not null"`
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`

	Score *float64 `gorm:"->;-:migration"`
}

func (SpecSection) TableName() string {
	return "spec_sections"
}
