package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

var Db *sql.DB

func InitDB(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS compromised (
		password TEXT PRIMARY KEY
	) WITHOUT ROWID`); err != nil {
		db.Close()
		return err
	}

	if err := tx.Commit(); err != nil {
		db.Close()
		return err
	}

	Db = db

	return nil
}

func CloseDB() error {
	if Db == nil {
		return nil
	}
	err := Db.Close()
	Db = nil
	return err
}
