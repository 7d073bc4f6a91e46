package outbox

import (
	"encoding/json"
	"time"

	"go-gift-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

const (
	AggregateWishlist = "wishlist"

	EventWishlistGiftAdded   = "WISHLIST_GIFT_ADDED"
	EventWishlistGiftRemoved = "WISHLIST_GIFT_REMOVED"

	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

// WishlistGiftPayload is the message body published for membership changes.
type WishlistGiftPayload struct {
	WishlistID  string    `json:"wishlistId"`
	GiftID      string    `json:"giftId"`
	UserID      string    `json:"userId"`
	CreatedGift bool      `json:"createdGift,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewWishlistGiftEvent builds an outbox row keyed by the wishlist, so every
// change to one wishlist lands on the same partition.
func NewWishlistGiftEvent(eventType string, payload WishlistGiftPayload) (dbgen.CreateOutboxEventParams, error) {
	wid, err := uuid.Parse(payload.WishlistID)
	if err != nil {
		return dbgen.CreateOutboxEventParams{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return dbgen.CreateOutboxEventParams{}, err
	}

	return dbgen.CreateOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: AggregateWishlist,
		AggregateID:   wid,
		EventType:     eventType,
		Payload:       body,
	}, nil
}
