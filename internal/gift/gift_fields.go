package gift

import (
	"strings"

	"go-gift-api/internal/pkg/apperror"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// numeric(10,2)
var maxCost = decimal.New(1, 8)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	apperror.RegisterJSONFieldNames(v)
	return v
}

type giftFields struct {
	Name   string `json:"name" validate:"required,max=255"`
	Link   string `json:"link" validate:"omitempty,url,max=2048"`
	Image  string `json:"image" validate:"omitempty,url,max=2048"`
	Status string `json:"status" validate:"oneof=available reserved gifted"`
}

// NewCreateParams validates req and turns it into insert params owned by
// ownerID. Missing or empty link/image become "", a missing status becomes
// available.
func NewCreateParams(ownerID uuid.UUID, req CreateGiftRequest) (dbgen.CreateGiftParams, error) {
	fields := giftFields{
		Name:   strings.TrimSpace(req.Name),
		Link:   helper.TrimmedPtrValue(req.Link),
		Image:  helper.TrimmedPtrValue(req.Image),
		Status: StatusAvailable,
	}
	if req.Status != nil {
		fields.Status = *req.Status
	}

	if err := checkFields(fields, req.Cost); err != nil {
		return dbgen.CreateGiftParams{}, err
	}

	return dbgen.CreateGiftParams{
		UserID: ownerID,
		Name:   fields.Name,
		Link:   fields.Link,
		Cost:   helper.DecimalToNull(req.Cost),
		Image:  fields.Image,
		Status: fields.Status,
	}, nil
}

// NewUpdateParams merges req into the current row.
func NewUpdateParams(current dbgen.Gift, req UpdateGiftRequest) (dbgen.UpdateGiftParams, error) {
	fields := giftFields{
		Name:   current.Name,
		Link:   current.Link,
		Image:  current.Image,
		Status: current.Status,
	}
	if req.Name != nil {
		fields.Name = strings.TrimSpace(*req.Name)
	}
	if req.Link != nil {
		fields.Link = strings.TrimSpace(*req.Link)
	}
	if req.Image != nil {
		fields.Image = strings.TrimSpace(*req.Image)
	}
	if req.Status != nil {
		fields.Status = *req.Status
	}

	cost := current.Cost
	switch {
	case req.ClearCost:
		cost = decimal.NullDecimal{}
	case req.Cost != nil:
		cost = helper.DecimalToNull(req.Cost)
	}

	if err := checkFields(fields, helper.NullDecimalToPtr(cost)); err != nil {
		return dbgen.UpdateGiftParams{}, err
	}

	return dbgen.UpdateGiftParams{
		ID:     current.ID,
		Name:   fields.Name,
		Link:   fields.Link,
		Cost:   cost,
		Image:  fields.Image,
		Status: fields.Status,
	}, nil
}

func checkFields(fields giftFields, cost *decimal.Decimal) error {
	if err := validate.Struct(fields); err != nil {
		return ErrInvalidGiftInput.WithDetails(apperror.ValidationDetails(err))
	}

	if cost != nil {
		if cost.IsNegative() {
			return costError("min", "must not be negative")
		}
		if !cost.Equal(cost.Round(2)) {
			return costError("decimal", "allows at most 2 decimal places")
		}
		if cost.GreaterThanOrEqual(maxCost) {
			return costError("max", "must be less than 100000000")
		}
	}

	return nil
}

func costError(rule, msg string) error {
	return ErrInvalidGiftInput.WithDetails([]apperror.FieldError{
		{Field: "cost", Rule: rule, Message: msg},
	})
}
