package membership

import (
	"time"

	"go-gift-api/internal/gift"
)

type AttachGiftRequest struct {
	GiftID string `json:"giftId" binding:"required"`
}

// MembershipResponse describes one gift placed on a wishlist. CreatedGift
// is true when the gift was created by the same request.
type MembershipResponse struct {
	ID          string            `json:"id"`
	WishlistID  string            `json:"wishlistId"`
	Gift        gift.GiftResponse `json:"gift"`
	CreatedGift bool              `json:"createdGift"`
	CreatedAt   time.Time         `json:"createdAt"`
}
