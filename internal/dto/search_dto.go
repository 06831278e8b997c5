package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchRequest carries the query parameters of GET /search/:domain.
type SearchRequest struct {
	Q             string `query:"q" validate:"required"`
	Page          int    `query:"page" validate:"gte=1"`
	PageSize      int    `query:"pageSize" validate:"gte=1,lte=100"`
	SearchMode    string `query:"searchMode" validate:"oneof=strict fuzzy semantic"`
	FilterFrom    string `query:"filter_from"`
	FilterSinceGp string `query:"filter_since_gp"`
	FilterBefore  string `query:"filter_before"`
	FilterAfter   string `query:"filter_after"`
	ChannelId     string `query:"channelId"`
	Site          string `query:"site"`
}

// ApplyDefaults fills the optional parameters before validation.
func (r *SearchRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	if r.SearchMode == "" {
		r.SearchMode = "strict"
	}
}

// SearchResponse is the result page shape shared by all domains. Error
// is only set for an unresolved since_gp version, alongside an empty
// Results slice; it is not a failure signal.
type SearchResponse struct {
	Results  []any  `json:"results"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Error    string `json:"error,omitempty"`
}

// Per-domain result rows.

type ChatMessageResult struct {
	Id        int64     `json:"id"`
	MessageId string    `json:"message_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
	RoomId    string    `json:"room_id,omitempty"`
	Score     *float64  `json:"score,omitempty"`
}

type SpecSectionResult struct {
	Id      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Page    int      `json:"page"`
	Score   *float64 `json:"score,omitempty"`
}

type PageResult struct {
	Id        uuid.UUID `json:"id"`
	Url       string    `json:"url"`
	Site      string    `json:"site"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
	Score     *float64  `json:"score,omitempty"`
}

type DiscordMessageResult struct {
	Id        int64     `json:"id"`
	MessageId string    `json:"message_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
	ChannelId string    `json:"channel_id,omitempty"`
	Score     *float64  `json:"score,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
