package wishlist

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	autherrors "go-gift-api/internal/auth/errors"
	"go-gift-api/internal/gift"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, req CreateWishlistRequest) (WishlistResponse, error)
	List(ctx context.Context, userID string) ([]WishlistResponse, error)
	Detail(ctx context.Context, userID, wishlistID string) (WishlistDetailResponse, error)
	Rename(ctx context.Context, userID, wishlistID string, req UpdateWishlistRequest) (WishlistResponse, error)
	Delete(ctx context.Context, userID, wishlistID string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(r Repository, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wishlist.service")
	}
	return &service{repo: r, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateWishlistRequest) (WishlistResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return WishlistResponse{}, autherrors.ErrInvalidUserID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return WishlistResponse{}, ErrInvalidWishlistInput
	}

	w, err := s.repo.Create(ctx, dbgen.CreateWishlistParams{UserID: uid, Name: name})
	if err != nil {
		s.logger.Error("failed to create wishlist", zap.String("user_id", userID), zap.Error(err))
		return WishlistResponse{}, ErrWishlistFailed
	}

	return ToResponse(w), nil
}

func (s *service) List(ctx context.Context, userID string) ([]WishlistResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	lists, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to list wishlists", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrWishlistFailed
	}

	res := make([]WishlistResponse, 0, len(lists))
	for _, w := range lists {
		res = append(res, ToResponse(w))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, userID, wishlistID string) (WishlistDetailResponse, error) {
	w, err := s.getOwned(ctx, userID, wishlistID)
	if err != nil {
		return WishlistDetailResponse{}, err
	}

	rows, err := s.repo.ListGifts(ctx, w.ID)
	if err != nil {
		s.logger.Error("failed to list wishlist gifts", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return WishlistDetailResponse{}, ErrWishlistFailed
	}

	gifts := make([]gift.GiftResponse, 0, len(rows))
	for _, row := range rows {
		gifts = append(gifts, GiftFromRow(row))
	}

	return WishlistDetailResponse{
		WishlistResponse: ToResponse(w),
		Gifts:            gifts,
	}, nil
}

func (s *service) Rename(ctx context.Context, userID, wishlistID string, req UpdateWishlistRequest) (WishlistResponse, error) {
	w, err := s.getOwned(ctx, userID, wishlistID)
	if err != nil {
		return WishlistResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return WishlistResponse{}, ErrInvalidWishlistInput
	}

	updated, err := s.repo.UpdateName(ctx, dbgen.UpdateWishlistNameParams{ID: w.ID, Name: name})
	if err != nil {
		s.logger.Error("failed to rename wishlist", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return WishlistResponse{}, ErrWishlistFailed
	}

	return ToResponse(updated), nil
}

// Delete removes the wishlist and, through the cascade, its memberships.
// The gifts themselves are kept.
func (s *service) Delete(ctx context.Context, userID, wishlistID string) error {
	w, err := s.getOwned(ctx, userID, wishlistID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, w.ID); err != nil {
		s.logger.Error("failed to delete wishlist", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return ErrWishlistFailed
	}
	return nil
}

// getOwned hides wishlists of other users behind ErrWishlistNotFound.
func (s *service) getOwned(ctx context.Context, userID, wishlistID string) (dbgen.Wishlist, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return dbgen.Wishlist{}, autherrors.ErrInvalidUserID
	}
	wid, err := uuid.Parse(wishlistID)
	if err != nil {
		return dbgen.Wishlist{}, ErrInvalidWishlistID
	}

	w, err := s.repo.GetByID(ctx, wid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Wishlist{}, ErrWishlistNotFound
		}
		s.logger.Error("failed to load wishlist", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return dbgen.Wishlist{}, ErrWishlistFailed
	}

	if w.UserID != uid {
		return dbgen.Wishlist{}, ErrWishlistNotFound
	}
	return w, nil
}

func ToResponse(w dbgen.Wishlist) WishlistResponse {
	return WishlistResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		UserID:    w.UserID.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func GiftFromRow(row dbgen.ListWishlistGiftsRow) gift.GiftResponse {
	return gift.GiftResponse{
		ID:        row.GiftID.String(),
		Name:      row.GiftName,
		Link:      row.GiftLink,
		Cost:      helper.NullDecimalToPtr(row.GiftCost),
		Image:     row.GiftImage,
		Status:    row.GiftStatus,
		UserID:    row.GiftUserID.String(),
		CreatedAt: row.GiftCreatedAt,
		UpdatedAt: row.GiftUpdatedAt,
	}
}
