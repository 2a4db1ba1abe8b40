package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"gomessenger/backend/internal/api/handler"
	"gomessenger/backend/internal/chathub"
	"gomessenger/backend/internal/config"
	"gomessenger/backend/internal/models"
	"gomessenger/backend/internal/storage"
	"gomessenger/backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting messenger backend...")

	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	up, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload storage: %v", err)
	}

	hub := chathub.NewHub(s)
	hub.SyncPersistence = cfg.SyncPersistence
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(hub, s, up)

	r.Static("/uploads", cfg.UploadDir)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/getAllUser", h.GetAllUsers)
	r.POST("/getAllMessage", h.GetAllMessages)
	r.GET("/online", h.OnlineUsers)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("server listen on %s", cfg.Addr)
	log.Fatal(server.ListenAndServe())
}
