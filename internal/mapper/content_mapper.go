package mapper

import (
	"kb-search-be/internal/entity"
	"kb-search-be/internal/model"
)

// Model-to-entity conversion for the read path. The query core never
// writes content rows, so there are no ToModel counterparts.

func ChatMessageToEntity(m *model.ChatMessage) *entity.ChatMessage {
	if m == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        m.Id,
		MessageId: m.MessageId,
		Sender:    m.Sender,
		Content:   m.Content,
		SentAt:    m.SentAt,
		RoomId:    m.RoomId,
		Score:     m.Score,
	}
}

func SpecSectionToEntity(m *model.SpecSection) *entity.SpecSection {
	if m == nil {
		return nil
	}
	return &entity.SpecSection{
		Id:      m.Id,
		Title:   m.Title,
		Content: m.Content,
		Page:    m.Page,
		Score:   m.Score,
	}
}

func PageToEntity(m *model.Page) *entity.Page {
	if m == nil {
		return nil
	}
	return &entity.Page{
		Id:        m.Id,
		Url:       m.Url,
		Site:      m.Site,
		Title:     m.Title,
		Text:      m.Text,
		FetchedAt: m.FetchedAt,
		Score:     m.Score,
	}
}

func DiscordMessageToEntity(m *model.DiscordMessage) *entity.DiscordMessage {
	if m == nil {
		return nil
	}
	return &entity.DiscordMessage{
		Id:        m.Id,
		MessageId: m.MessageId,
		Sender:    m.Sender,
		Content:   m.Content,
		SentAt:    m.SentAt,
		ChannelId: m.ChannelId,
		Score:     m.Score,
	}
}

func SpecVersionToEntity(m *model.SpecVersion) *entity.SpecVersion {
	if m == nil {
		return nil
	}
	return &entity.SpecVersion{
		Id:          m.Id,
		Version:     m.Version,
		PublishedAt: m.PublishedAt,
	}
}
