package bootstrap

import (
	"log"

	"kb-search-be/internal/config"
	"kb-search-be/internal/controller"
	"kb-search-be/internal/entity"
	"kb-search-be/internal/mapper"
	"kb-search-be/internal/model"
	"kb-search-be/internal/pkg/cache"
	"kb-search-be/internal/pkg/logger"
	"kb-search-be/internal/repository/implementation"
	"kb-search-be/internal/service"
	"kb-search-be/pkg/embedding"

	"gorm.io/gorm"
)

type Container struct {
	SearchController controller.ISearchController
	HealthController controller.IHealthController
	Logger           logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Query embeddings are memoized in-process; paginating the same
	// semantic query costs one provider call.
	embedder := embedding.NewCachedProvider(
		embedding.NewOpenAIProvider(cfg.Ai.OpenAIApiKey, cfg.Ai.EmbeddingModel),
		cfg.Ai.EmbeddingCacheTTL,
	)

	var resultCache *cache.ResultCache
	if cfg.Cache.RedisURL != "" {
		rc, err := cache.NewResultCache(cfg.Cache.RedisURL, cfg.Cache.ResultPageTTL)
		if err != nil {
			log.Printf("Warning: result cache disabled: %v", err)
		} else {
			resultCache = rc
		}
	}

	versionRepo := implementation.NewSpecVersionRepository(db)

	chatRepo := implementation.NewContentRepository(db, model.ChatMessageDomain, mapper.ChatMessageToEntity)
	specRepo := implementation.NewContentRepository(db, model.SpecSectionDomain, mapper.SpecSectionToEntity)
	pageRepo := implementation.NewContentRepository(db, model.PageDomain, mapper.PageToEntity)
	discordRepo := implementation.NewContentRepository(db, model.DiscordMessageDomain, mapper.DiscordMessageToEntity)

	threshold := cfg.Ai.DistanceThreshold
	services := map[string]service.ISearchService{
		model.ChatMessageDomain.Name: service.NewSearchService[entity.ChatMessage](
			model.ChatMessageDomain, chatRepo, versionRepo, embedder,
			mapper.ChatMessageToResult, resultCache, sysLogger, threshold,
		),
		model.SpecSectionDomain.Name: service.NewSearchService[entity.SpecSection](
			model.SpecSectionDomain, specRepo, versionRepo, embedder,
			mapper.SpecSectionToResult, resultCache, sysLogger, threshold,
		),
		model.PageDomain.Name: service.NewSearchService[entity.Page](
			model.PageDomain, pageRepo, versionRepo, embedder,
			mapper.PageToResult, resultCache, sysLogger, threshold,
		),
		model.DiscordMessageDomain.Name: service.NewSearchService[entity.DiscordMessage](
			model.DiscordMessageDomain, discordRepo, versionRepo, embedder,
			mapper.DiscordMessageToResult, resultCache, sysLogger, threshold,
		),
	}

	return &Container{
		SearchController: controller.NewSearchController(services),
		HealthController: controller.NewHealthController(),
		Logger:           sysLogger,
	}
}
