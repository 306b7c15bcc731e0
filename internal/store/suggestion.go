package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/suggestapp/suggestions-backend/internal/models"
)

// SuggestionStore expose les opérations de persistance des suggestions
type SuggestionStore interface {
	List(ctx context.Context) ([]model.Suggestion, error)
	Get(ctx context.Context, id int) (model.Suggestion, error)
	ListByCategory(ctx context.Context, category string) ([]model.Suggestion, error)
	ListByStatus(ctx context.Context, status string) ([]model.Suggestion, error)
	Create(ctx context.Context, s model.Suggestion) (int, error)
	Update(ctx context.Context, s model.Suggestion) error
	Delete(ctx context.Context, id int) error
	Like(ctx context.Context, id int) error
}

// PGSuggestionStore implémente SuggestionStore sur PostgreSQL
type PGSuggestionStore struct {
	db *pgxpool.Pool
}

func NewPGSuggestionStore(db *pgxpool.Pool) *PGSuggestionStore {
	return &PGSuggestionStore{db: db}
}

const suggestionColumns = `id, title, description, category, status, date, nb_likes`

func scanSuggestion(row pgx.Row) (model.Suggestion, error) {
	var s model.Suggestion
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Category, &s.Status, &s.Date, &s.NbLikes)
	return s, err
}

func (st *PGSuggestionStore) queryList(ctx context.Context, query string, args ...interface{}) ([]model.Suggestion, error) {
	rows, err := st.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query suggestions: %w", err)
	}
	defer rows.Close()

	// Slice initialisée pour que la réponse JSON soit [] et non null
	suggestions := []model.Suggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan suggestion row: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

func (st *PGSuggestionStore) List(ctx context.Context) ([]model.Suggestion, error) {
	return st.queryList(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions ORDER BY date DESC`)
}

func (st *PGSuggestionStore) ListByCategory(ctx context.Context, category string) ([]model.Suggestion, error) {
	return st.queryList(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE category = $1 ORDER BY date DESC`,
		category)
}

func (st *PGSuggestionStore) ListByStatus(ctx context.Context, status string) ([]model.Suggestion, error) {
	return st.queryList(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE status = $1 ORDER BY date DESC`,
		status)
}

func (st *PGSuggestionStore) Get(ctx context.Context, id int) (model.Suggestion, error) {
	s, err := scanSuggestion(st.db.QueryRow(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Suggestion{}, ErrNotFound
		}
		return model.Suggestion{}, fmt.Errorf("could not get suggestion: %w", err)
	}
	return s, nil
}

func (st *PGSuggestionStore) Create(ctx context.Context, s model.Suggestion) (int, error) {
	var id int
	err := st.db.QueryRow(ctx,
		`INSERT INTO suggestions(title, description, category, status, date, nb_likes)
		 VALUES($1, $2, $3, $4, NOW(), 0)
		 RETURNING id`,
		s.Title, s.Description, s.Category, s.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("could not create suggestion: %w", err)
	}
	return id, nil
}

// Update écrit tous les champs mutables; la fusion avec les valeurs
// existantes a déjà été faite par le handler. id et date sont immuables.
func (st *PGSuggestionStore) Update(ctx context.Context, s model.Suggestion) error {
	res, err := st.db.Exec(ctx,
		`UPDATE suggestions
		 SET title = $1, description = $2, category = $3, status = $4, nb_likes = $5
		 WHERE id = $6`,
		s.Title, s.Description, s.Category, s.Status, s.NbLikes, s.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update suggestion: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (st *PGSuggestionStore) Delete(ctx context.Context, id int) error {
	res, err := st.db.Exec(ctx, `DELETE FROM suggestions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete suggestion: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Like incrémente le compteur en une seule instruction atomique côté base,
// jamais en lecture puis écriture, pour ne perdre aucun like concurrent
func (st *PGSuggestionStore) Like(ctx context.Context, id int) error {
	res, err := st.db.Exec(ctx,
		`UPDATE suggestions SET nb_likes = nb_likes + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not like suggestion: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
