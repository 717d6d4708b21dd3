package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == "23505"
}

// isForeignKeyViolation verifica violación de llave foránea (23503): referencia
// a entidad inexistente o eliminación bloqueada por dependientes.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == "23503"
}

// isCheckViolation verifica violación de CHECK (23514): quantity o staged < 0.
func isCheckViolation(err error) bool {
	return pgErrCode(err) == "23514"
}

// isRetryable verifica errores de contención que el caller puede reintentar:
// serialization_failure, deadlock_detected y lock_not_available.
func isRetryable(err error) bool {
	switch pgErrCode(err) {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

// constraintName devuelve el nombre del constraint violado, o "".
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
