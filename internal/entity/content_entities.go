package entity

import (
	"time"

	"github.com/google/uuid"
)

// Content entities are the storage-free shapes the search service works
// with. Score is only set on rows coming out of a search query.

type ChatMessage struct {
	Id        int64
	MessageId string
	Sender    string
	Content   string
	SentAt    time.Time
	RoomId    string
	Score     *float64
}

type SpecSection struct {
	Id      int64
	Title   string
	Content string
	Page    int
	Score   *float64
}

type Page struct {
	Id        uuid.UUID
	Url       string
	Site      string
	Title     string
	Text      string
	FetchedAt time.Time
	Score     *float64
}

type DiscordMessage struct {
	Id        int64
	MessageId string
	Sender    string
	Content   string
	SentAt    time.Time
	ChannelId string
	Score     *float64
}

type SpecVersion struct {
	Id          uuid.UUID
	Version     string
	PublishedAt time.Time
}
