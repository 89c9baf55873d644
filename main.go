package main

import (
	"fmt"
	"log"

	"github.com/NyinakuJoshua/SweetBites/configs"
	"github.com/NyinakuJoshua/SweetBites/middlewares"
	"github.com/NyinakuJoshua/SweetBites/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedCakes(db); err != nil {
		logger.Fatal("seed catalog failed", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.SiteURL))

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
