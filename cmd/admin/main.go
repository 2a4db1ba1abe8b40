package main

import (
	"fmt"
	"log"
	"os"

	"gomessenger/backend/internal/config"
	"gomessenger/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Maintenance CLI. Talks straight to PostgreSQL; Redis is not needed here.
func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  users                      list all registered users")
		fmt.Println("  history <userA> <userB>    dump the message history between two users")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "users":
		users, err := storageSvc.ListUsers()
		if err != nil {
			log.Fatalf("failed to list users: %v", err)
		}
		for _, u := range users {
			fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Phone, u.CreatedAt.Format("2006-01-02 15:04"))
		}

	case "history":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin history <userA> <userB>")
			os.Exit(1)
		}
		messages, err := storageSvc.MessagesBetween(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("failed to load history: %v", err)
		}
		for _, m := range messages {
			fmt.Printf("[%s] %s -> %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"), m.SenderID, m.ReceiverID, m.Text)
		}

	default:
		fmt.Printf("unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
