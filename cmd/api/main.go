package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avaliaccess/aa-server/internal/config"
	dbpkg "github.com/avaliaccess/aa-server/internal/db"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	if err := dbpkg.SeedUsers(db, log); err != nil {
		log.Fatal("failed to seed users", "error", err)
	}

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("failed to init upload dir", "error", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, store)

	log.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
