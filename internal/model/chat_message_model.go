package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// ChatMessage is one archived message from the primary chat platform.
// Rows are written by the ingestion jobs only; this service reads them.
type ChatMessage struct {
	Id        int64            `gorm:"primaryKey;autoIncrement"`
	MessageId string           `gorm:"type:varchar(128);uniqueIndex"` // platform message id, used for upsert dedup
	Sender    string           `gorm:"type:varchar(255);not null;index"`
	Content   string           `gorm:"type:text;not null"`
	SentAt    time.Time        `gorm:"not null;index"`
	RoomId    string           `gorm:"type:varchar(255);index"`
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"` // filled by the batch embedder, null until then
	CreatedAt time.Time        `gorm:"autoCreateTime"`

	// Score is projected by search queries (rank or similarity); it is
	// not a stored column.
	Score *float64 `gorm:"->;-:migration"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
