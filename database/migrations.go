package database

import (
	"database/sql"
	"log"
)

func InitDB(db *sql.DB) error {
	// Хранилище ключ-значение: одна строка на коллекцию
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}
