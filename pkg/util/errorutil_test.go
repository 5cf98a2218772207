package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewInvalidAction("Delete")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "INVALID_ACTION", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
}

func TestToDomainErrorFallback(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "STORE_ERROR", ToDomainError(err).Code)
}
