package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

// Caso 1: clasificación de códigos SQLSTATE, también con el error envuelto.
func TestClasificacionErroresPg(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505", "stock_part_location_key")))
	assert.True(t, isForeignKeyViolation(pgError("23503", "parts_category_id_fkey")))
	assert.True(t, isCheckViolation(pgError("23514", "stock_quantity_check")))

	wrapped := fmt.Errorf("insert stock: %w", pgError("23505", ""))
	assert.True(t, isUniqueViolation(wrapped), "debe clasificar errores envueltos")

	assert.False(t, isUniqueViolation(pgError("23503", "")))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
	assert.False(t, isUniqueViolation(nil))
}

// Caso 2: solo los errores de contención son reintentables.
func TestErroresReintentables(t *testing.T) {
	assert.True(t, isRetryable(pgError("40001", "")), "serialization_failure")
	assert.True(t, isRetryable(pgError("40P01", "")), "deadlock_detected")
	assert.True(t, isRetryable(pgError("55P03", "")), "lock_not_available")

	assert.False(t, isRetryable(pgError("23505", "")), "las violaciones de constraint no se reintentan")
	assert.False(t, isRetryable(errors.New("timeout")))
}

// Caso 3: constraintName extrae el nombre o devuelve vacío.
func TestConstraintName(t *testing.T) {
	assert.Equal(t, "parts_mpn_key", constraintName(pgError("23505", "parts_mpn_key")))
	assert.Empty(t, constraintName(errors.New("sin constraint")))
}
