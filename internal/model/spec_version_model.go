package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecVersion maps a published spec version label to its release time,
// used to resolve since_gp filters into a timestamp bound.
type SpecVersion struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Version     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	PublishedAt time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (SpecVersion) TableName() string {
	return "spec_versions"
}
