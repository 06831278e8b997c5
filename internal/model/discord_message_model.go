package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// DiscordMessage is one archived Discord message. Same shape as
// ChatMessage apart from the channel scope column.
type DiscordMessage struct {
	Id        int64            `gorm:"primaryKey;autoIncrement"`
	MessageId string           `gorm:"type:varchar(128);uniqueIndex"` // snowflake id
	Sender    string           `gorm:"type:varchar(255);not null;index"`
	Content   string           `gorm:"type:text;not null"`
	SentAt    time.Time        `gorm:"not null;index"`
	ChannelId string           `gorm:"type:varchar(64);index"`
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`

	Score *float64 `gorm:"->;-:migration"`
}

func (DiscordMessage) TableName() string {
	return "discord_messages"
}
