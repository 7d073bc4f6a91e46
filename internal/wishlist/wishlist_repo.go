package wishlist

import (
	"context"
	"database/sql"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/google/uuid"
)

// UniqueMembershipConstraint guards (wishlist_id, gift_id) in wishlist_gifts.
const UniqueMembershipConstraint = "wishlist_gifts_wishlist_id_gift_id_key"

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository
	Create(ctx context.Context, params dbgen.CreateWishlistParams) (dbgen.Wishlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Wishlist, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Wishlist, error)
	UpdateName(ctx context.Context, params dbgen.UpdateWishlistNameParams) (dbgen.Wishlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GiftExists(ctx context.Context, wishlistID, giftID uuid.UUID) (bool, error)
	AddGift(ctx context.Context, wishlistID, giftID uuid.UUID) (dbgen.WishlistGift, error)
	ListGifts(ctx context.Context, wishlistID uuid.UUID) ([]dbgen.ListWishlistGiftsRow, error)
	RemoveGift(ctx context.Context, wishlistID, giftID uuid.UUID) (int64, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *repository) Create(ctx context.Context, params dbgen.CreateWishlistParams) (dbgen.Wishlist, error) {
	return r.queries.CreateWishlist(ctx, params)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Wishlist, error) {
	return r.queries.GetWishlistByID(ctx, id)
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Wishlist, error) {
	return r.queries.ListWishlistsByUser(ctx, userID)
}

func (r *repository) UpdateName(ctx context.Context, params dbgen.UpdateWishlistNameParams) (dbgen.Wishlist, error) {
	return r.queries.UpdateWishlistName(ctx, params)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteWishlist(ctx, id)
}

func (r *repository) GiftExists(ctx context.Context, wishlistID, giftID uuid.UUID) (bool, error) {
	return r.queries.CheckWishlistGiftExists(ctx, dbgen.CheckWishlistGiftExistsParams{
		WishlistID: wishlistID,
		GiftID:     giftID,
	})
}

// AddGift inserts the membership row. A unique_violation on the pair is
// reported as ErrGiftAlreadyInWishlist; any other error is returned as is.
func (r *repository) AddGift(ctx context.Context, wishlistID, giftID uuid.UUID) (dbgen.WishlistGift, error) {
	wg, err := r.queries.AddWishlistGift(ctx, dbgen.AddWishlistGiftParams{
		WishlistID: wishlistID,
		GiftID:     giftID,
	})
	if err != nil {
		if helper.IsUniqueViolation(err, UniqueMembershipConstraint) {
			return dbgen.WishlistGift{}, ErrGiftAlreadyInWishlist
		}
		return dbgen.WishlistGift{}, err
	}
	return wg, nil
}

func (r *repository) ListGifts(ctx context.Context, wishlistID uuid.UUID) ([]dbgen.ListWishlistGiftsRow, error) {
	return r.queries.ListWishlistGifts(ctx, wishlistID)
}

func (r *repository) RemoveGift(ctx context.Context, wishlistID, giftID uuid.UUID) (int64, error) {
	return r.queries.DeleteWishlistGift(ctx, dbgen.DeleteWishlistGiftParams{
		WishlistID: wishlistID,
		GiftID:     giftID,
	})
}
