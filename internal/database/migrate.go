package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// L'unicité de l'email est garantie par la contrainte UNIQUE: une collision
// remonte comme une violation SQLSTATE 23505 traduite par le store
const (
	createSuggestionsTable = `
		CREATE TABLE IF NOT EXISTS suggestions (
			id          SERIAL PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT,
			category    TEXT NOT NULL DEFAULT 'autre',
			status      TEXT NOT NULL DEFAULT 'en attente',
			date        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			nb_likes    INTEGER NOT NULL DEFAULT 0
		)`

	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id         SERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			role       TEXT NOT NULL DEFAULT 'user',
			status     TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`
)

// Migrate crée les tables au démarrage si elles n'existent pas encore
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{createSuggestionsTable, createUsersTable} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
