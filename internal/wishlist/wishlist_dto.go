package wishlist

import (
	"time"

	"go-gift-api/internal/gift"
)

// ==================== REQUEST STRUCTS ====================

type CreateWishlistRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateWishlistRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// ==================== RESPONSE STRUCTS ====================

type WishlistResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WishlistDetailResponse embeds the gifts in insertion order.
type WishlistDetailResponse struct {
	WishlistResponse
	Gifts []gift.GiftResponse `json:"gifts"`
}
