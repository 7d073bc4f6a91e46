package wishlist

import (
	"go-gift-api/internal/pkg/apperror"
	"net/http"
)

var (
	ErrInvalidWishlistID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid wishlist ID",
		http.StatusBadRequest,
	)

	ErrInvalidWishlistInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid wishlist data",
		http.StatusBadRequest,
	)

	ErrWishlistNotFound = apperror.New(
		apperror.CodeNotFound,
		"Wishlist not found",
		http.StatusNotFound,
	)

	ErrWishlistForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to modify this wishlist",
		http.StatusForbidden,
	)

	ErrGiftAlreadyInWishlist = apperror.New(
		apperror.CodeConflict,
		"Gift already in this wishlist",
		http.StatusConflict,
	)

	ErrMembershipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Gift is not in this wishlist",
		http.StatusNotFound,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process wishlist operation",
		http.StatusInternalServerError,
	)
)
