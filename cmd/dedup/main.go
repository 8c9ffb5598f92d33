package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"dancedir/internal/database"
	"dancedir/internal/domain/class"
)

// Removes duplicate classes: same datetime, same studio, same dancer set.
// The first class of each group survives; the rest are deleted in one
// transaction. Re-running after a successful pass deletes nothing.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := class.NewRepository(db)
	deleted, err := repo.RemoveDuplicates(context.Background())
	if err != nil {
		log.Fatalf("dedup failed, nothing deleted: %v", err)
	}

	log.Printf("dedup completed: %d duplicate classes deleted", deleted)
}
