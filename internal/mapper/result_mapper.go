package mapper

import (
	"kb-search-be/internal/dto"
	"kb-search-be/internal/entity"
)

// Result assemblers shape entities into the response rows the frontend
// consumes. Field selection only, no business logic.

func ChatMessageToResult(e *entity.ChatMessage) any {
	return &dto.ChatMessageResult{
		Id:        e.Id,
		MessageId: e.MessageId,
		Sender:    e.Sender,
		Content:   e.Content,
		SentAt:    e.SentAt,
		RoomId:    e.RoomId,
		Score:     e.Score,
	}
}

func SpecSectionToResult(e *entity.SpecSection) any {
	return &dto.SpecSectionResult{
		Id:      e.Id,
		Title:   e.Title,
		Content: e.Content,
		Page:    e.Page,
		Score:   e.Score,
	}
}

func PageToResult(e *entity.Page) any {
	return &dto.PageResult{
		Id:        e.Id,
		Url:       e.Url,
		Site:      e.Site,
		Title:     e.Title,
		Text:      e.Text,
		FetchedAt: e.FetchedAt,
		Score:     e.Score,
	}
}

func DiscordMessageToResult(e *entity.DiscordMessage) any {
	return &dto.DiscordMessageResult{
		Id:        e.Id,
		MessageId: e.MessageId,
		Sender:    e.Sender,
		Content:   e.Content,
		SentAt:    e.SentAt,
		ChannelId: e.ChannelId,
		Score:     e.Score,
	}
}
