package gift

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusGifted    = "gifted"
)

// ==================== REQUEST STRUCTS ====================

// CreateGiftRequest carries gift-creation fields. Link and Image may be
// omitted, null or empty; all three are stored as "".
type CreateGiftRequest struct {
	Name   string           `json:"name"`
	Link   *string          `json:"link"`
	Cost   *decimal.Decimal `json:"cost"`
	Image  *string          `json:"image"`
	Status *string          `json:"status"`
}

// UpdateGiftRequest is a partial update: nil fields keep their value.
type UpdateGiftRequest struct {
	Name      *string          `json:"name"`
	Link      *string          `json:"link"`
	Cost      *decimal.Decimal `json:"cost"`
	ClearCost bool             `json:"clearCost"`
	Image     *string          `json:"image"`
	Status    *string          `json:"status"`
}

// ==================== RESPONSE STRUCTS ====================

type GiftResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Link      string           `json:"link"`
	Cost      *decimal.Decimal `json:"cost"`
	Image     string           `json:"image"`
	Status    string           `json:"status"`
	UserID    string           `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
