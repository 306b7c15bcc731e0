package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound: aucun enregistrement ne porte l'id demandé
	ErrNotFound = errors.New("enregistrement non trouvé")
	// ErrDuplicateEmail: l'email est déjà pris par un autre utilisateur
	ErrDuplicateEmail = errors.New("email déjà utilisé")
)

// isUniqueViolation détecte une violation de contrainte UNIQUE (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
