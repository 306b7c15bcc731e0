package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/suggestapp/suggestions-backend/internal/models"
)

// UserStore expose les opérations de persistance des utilisateurs
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int) (model.User, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	ListByStatus(ctx context.Context, status string) ([]model.User, error)
	Create(ctx context.Context, u model.User) (int, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int) error
}

// PGUserStore implémente UserStore sur PostgreSQL
type PGUserStore struct {
	db *pgxpool.Pool
}

func NewPGUserStore(db *pgxpool.Pool) *PGUserStore {
	return &PGUserStore{db: db}
}

const userColumns = `id, name, email, role, status, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (st *PGUserStore) queryList(ctx context.Context, query string, args ...interface{}) ([]model.User, error) {
	rows, err := st.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (st *PGUserStore) List(ctx context.Context) ([]model.User, error) {
	return st.queryList(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
}

func (st *PGUserStore) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	return st.queryList(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC`,
		role)
}

func (st *PGUserStore) ListByStatus(ctx context.Context, status string) ([]model.User, error) {
	return st.queryList(ctx,
		`SELECT `+userColumns+` FROM users WHERE status = $1 ORDER BY created_at DESC`,
		status)
}

func (st *PGUserStore) Get(ctx context.Context, id int) (model.User, error) {
	u, err := scanUser(st.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("could not get user: %w", err)
	}
	return u, nil
}

// Create laisse la contrainte UNIQUE sur email trancher les doublons:
// pas de pré-vérification applicative, donc pas de course entre deux
// créations concurrentes avec le même email
func (st *PGUserStore) Create(ctx context.Context, u model.User) (int, error) {
	var id int
	err := st.db.QueryRow(ctx,
		`INSERT INTO users(name, email, role, status, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NOW(), NOW())
		 RETURNING id`,
		u.Name, u.Email, u.Role, u.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("could not create user: %w", err)
	}
	return id, nil
}

func (st *PGUserStore) Update(ctx context.Context, u model.User) error {
	res, err := st.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, role = $3, status = $4, updated_at = NOW()
		 WHERE id = $5`,
		u.Name, u.Email, u.Role, u.Status, u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("could not update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (st *PGUserStore) Delete(ctx context.Context, id int) error {
	res, err := st.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
