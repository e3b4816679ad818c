package db

import (
	"database/sql"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Compromised looks entries up in the sqlite index. Entries are expected
// to be normalised already.
type Compromised struct{}

func (Compromised) Contains(entry string) bool {
	if Db == nil {
		return false
	}

	var found string
	err := Db.QueryRow("SELECT password FROM compromised WHERE password = ?", entry).Scan(&found)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		sentry.CaptureException(err)
		slog.Warn("Wordlist index lookup failed", "err", err)
		return false
	}

	return true
}

// Insert normalised entries into the index, skipping ones already present.
// Returns how many rows were added.
func ImportPasswords(entries []string) (int, error) {
	tx, err := Db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO compromised (password) VALUES (?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, e := range entries {
		if e == "" {
			continue
		}
		res, err := stmt.Exec(e)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return added, nil
}

func CountPasswords() (int64, error) {
	if Db == nil {
		return 0, nil
	}

	var count int64
	if err := Db.QueryRow("SELECT COUNT(*) FROM compromised").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
