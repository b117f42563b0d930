// Command generate_demo creates a standalone demo library database.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/demo"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	summary, err := demo.Seed(db, time.Now())
	if err != nil {
		log.Fatalf("Failed to seed demo database: %v", err)
	}

	log.Printf("Demo database generated: %d books, %d users, %d borrowings", summary.Books, summary.Users, summary.Borrowings)
}
