package model

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	tbl   TEXT NOT NULL,
	key   TEXT NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (tbl, key)
)`

func openSQLite(path string) (*sql.DB, error) {
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %w", ErrInvalidModel, err)
	}
	return db, nil
}

func loadSQLite(ctx context.Context, path string) (Tables, error) {
	db, err := openSQLite(path)
	if err != nil {
		return Tables{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT tbl, key, value FROM entries`)
	if err != nil {
		return Tables{}, fmt.Errorf("%w: query entries: %w", ErrInvalidModel, err)
	}
	defer rows.Close()

	t := Tables{
		JointFeatures:        make(map[string]float64),
		LowercaseWords:       make(map[string]float64),
		NonAbbreviationWords: make(map[string]float64),
	}
	for rows.Next() {
		var tbl, key string
		var value float64
		if err := rows.Scan(&tbl, &key, &value); err != nil {
			return Tables{}, fmt.Errorf("%w: scan entry: %w", ErrInvalidModel, err)
		}
		switch tbl {
		case TableJointFeatures:
			t.JointFeatures[key] = value
		case TableLowercaseWords:
			t.LowercaseWords[key] = value
		case TableNonAbbreviationWords:
			t.NonAbbreviationWords[key] = value
		default:
			return Tables{}, fmt.Errorf("%w: unknown table %q", ErrInvalidModel, tbl)
		}
	}
	if err := rows.Err(); err != nil {
		return Tables{}, fmt.Errorf("%w: read entries: %w", ErrInvalidModel, err)
	}
	return t, nil
}

func saveSQLite(ctx context.Context, path string, t Tables) (err error) {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO entries (tbl, key, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, table := range []struct {
		name    string
		entries map[string]float64
	}{
		{TableJointFeatures, t.JointFeatures},
		{TableLowercaseWords, t.LowercaseWords},
		{TableNonAbbreviationWords, t.NonAbbreviationWords},
	} {
		for k, v := range table.entries {
			if _, err := stmt.ExecContext(ctx, table.name, k, v); err != nil {
				return fmt.Errorf("insert %s[%q]: %w", table.name, k, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
