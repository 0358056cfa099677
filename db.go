package main

import (
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens the shared sqlite database and creates the application
// schema. The path comes from DB_PATH with a development default.
func initDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "portfolio.db"
	}

	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("Failed to reach database:", err)
	}

	createCommandStats := `
	CREATE TABLE IF NOT EXISTS command_stats (
		name TEXT PRIMARY KEY,
		runs INTEGER NOT NULL DEFAULT 0,
		last_run DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err = db.Exec(createCommandStats); err != nil {
		log.Fatal("Failed to create command_stats table:", err)
	}

	log.Printf("Database ready at %s", path)
}

// trackCommandUsage bumps the run counter for a terminal command executed
// through the web widget. Called in the background; failures are logged
// only.
func trackCommandUsage(name string) {
	if db == nil {
		return
	}
	_, err := db.Exec(`
		INSERT INTO command_stats (name, runs, last_run) VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET runs = runs + 1, last_run = CURRENT_TIMESTAMP
	`, name)
	if err != nil {
		log.Printf("Error recording command usage: %v", err)
	}
}
