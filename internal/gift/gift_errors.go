package gift

import (
	"go-gift-api/internal/pkg/apperror"
	"net/http"
)

var (
	ErrInvalidGiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid gift ID",
		http.StatusBadRequest,
	)

	ErrInvalidGiftInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid gift data",
		http.StatusBadRequest,
	)

	ErrGiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Gift not found",
		http.StatusNotFound,
	)

	ErrGiftFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process gift operation",
		http.StatusInternalServerError,
	)
)
