package apperror_test

import (
	"database/sql"
	"errors"
	"fmt"
	"go-gift-api/internal/pkg/apperror"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	errConflict := apperror.New(apperror.CodeConflict, "Gift already in this wishlist", http.StatusConflict)

	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Empty(t, res.Code)
	})

	t.Run("app_error", func(t *testing.T) {
		res := apperror.ToHTTP(errConflict)
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, apperror.CodeConflict, res.Code)
		assert.Equal(t, "Gift already in this wishlist", res.Message)
	})

	t.Run("wrapped_app_error", func(t *testing.T) {
		res := apperror.ToHTTP(fmt.Errorf("attach: %w", errConflict))
		assert.Equal(t, http.StatusConflict, res.Status)
	})

	t.Run("unknown_error", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
	})
}

func TestWrap(t *testing.T) {
	err := apperror.Wrap(sql.ErrConnDone, apperror.CodeInternalError, "Failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "Failed")
}

func TestWithDetails(t *testing.T) {
	base := apperror.New(apperror.CodeInvalidInput, "Invalid gift data", http.StatusBadRequest)
	details := []apperror.FieldError{{Field: "name", Rule: "required", Message: "is required"}}

	err := base.WithDetails(details)

	assert.ErrorIs(t, err, base)
	assert.Nil(t, base.Details)
	res := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, details, res.Details)
}

func TestValidationDetails(t *testing.T) {
	type signup struct {
		Email   string `json:"email" validate:"required,email"`
		Confirm string `json:"password_confirm" validate:"eqfield=Email"`
	}
	v := validator.New()
	apperror.RegisterJSONFieldNames(v)

	fields := apperror.ValidationDetails(v.Struct(signup{Email: "nope", Confirm: "x"}))

	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "email", fields[0].Rule)
	assert.Equal(t, "password_confirm", fields[1].Field)
	assert.Equal(t, "must match Email", fields[1].Message)

	assert.Nil(t, apperror.ValidationDetails(errors.New("boom")))
}
