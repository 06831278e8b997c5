package main

import (
	"context"
	"log"

	"kb-search-be/internal/bootstrap"
	"kb-search-be/internal/config"
	"kb-search-be/internal/server"
	"kb-search-be/internal/tracer"
	"kb-search-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
