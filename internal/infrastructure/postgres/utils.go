package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bledev-tech/inventario-api/internal/domain"
)

// Códigos SQLSTATE de integridad que mapeamos a domain.ErrConstraint.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// mapConstraintError traduce violaciones de integridad de PostgreSQL al error
// de dominio, conservando el nombre de la restricción en el mensaje. Otros
// errores pasan sin tocar.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrConstraint, pgErr.ConstraintName)
	}
	return err
}
