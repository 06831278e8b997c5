package model

import "kb-search-be/pkg/search"

// Search domain descriptors, kept next to the table definitions so a
// column rename cannot silently drift away from the search engine.
var (
	ChatMessageDomain = search.Domain{
		Name:           "messages",
		Table:          "chat_messages",
		PrimaryField:   "sender",
		SecondaryField: "content",
		TimestampField: "sent_at",
		IdentityField:  "id",
		EmbeddingField: "embedding",
		SenderField:    "sender",
		ChannelField:   "room_id",
	}

	SpecSectionDomain = search.Domain{
		Name:           "spec",
		Table:          "spec_sections",
		PrimaryField:   "title",
		SecondaryField: "content",
		IdentityField:  "id",
		EmbeddingField: "embedding",
	}

	PageDomain = search.Domain{
		Name:           "pages",
		Table:          "pages",
		PrimaryField:   "title",
		SecondaryField: "text",
		TimestampField: "fetched_at",
		IdentityField:  "id",
		EmbeddingField: "embedding",
		SiteField:      "site",
	}

	DiscordMessageDomain = search.Domain{
		Name:           "discord",
		Table:          "discord_messages",
		PrimaryField:   "sender",
		SecondaryField: "content",
		TimestampField: "sent_at",
		IdentityField:  "id",
		EmbeddingField: "embedding",
		SenderField:    "sender",
		ChannelField:   "channel_id",
	}
)
