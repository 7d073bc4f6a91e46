package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	autherrors "go-gift-api/internal/auth/errors"
	"go-gift-api/internal/gift"
	"go-gift-api/internal/outbox"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/wishlist"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	AttachExistingGift(ctx context.Context, userID, wishlistID, giftID string) (MembershipResponse, error)
	CreateAndAttachGift(ctx context.Context, userID, wishlistID string, req gift.CreateGiftRequest) (MembershipResponse, error)
	List(ctx context.Context, userID, wishlistID string) ([]MembershipResponse, error)
	Detach(ctx context.Context, userID, wishlistID, giftID string) error
}

type Deps struct {
	DB        *sql.DB
	Wishlists wishlist.Repository
	Gifts     gift.Repository
	Outbox    outbox.Repository
	Logger    *zap.Logger
}

type service struct {
	db        *sql.DB
	wishlists wishlist.Repository
	gifts     gift.Repository
	outbox    outbox.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(deps Deps) Service {
	l := zap.NewNop()
	if deps.Logger != nil {
		l = deps.Logger.Named("membership.service")
	}
	return &service{
		db:        deps.DB,
		wishlists: deps.Wishlists,
		gifts:     deps.Gifts,
		outbox:    deps.Outbox,
		logger:    l,
		now:       time.Now,
	}
}

// txRepos is the set of repositories bound to one transaction.
type txRepos struct {
	wishlists wishlist.Repository
	gifts     gift.Repository
	outbox    outbox.Repository
}

func (s *service) bind(tx *sql.Tx) txRepos {
	return txRepos{
		wishlists: s.wishlists.WithTx(tx),
		gifts:     s.gifts.WithTx(tx),
		outbox:    s.outbox.WithTx(tx),
	}
}

// AttachExistingGift links a gift that already exists to a wishlist the user
// owns. The gift itself may belong to anyone.
func (s *service) AttachExistingGift(ctx context.Context, userID, wishlistID, giftID string) (MembershipResponse, error) {
	uid, wid, err := parseIDs(userID, wishlistID)
	if err != nil {
		return MembershipResponse{}, err
	}
	gid, err := uuid.Parse(giftID)
	if err != nil {
		return MembershipResponse{}, gift.ErrInvalidGiftID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MembershipResponse{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	repos := s.bind(tx)

	if _, err := s.loadForWrite(ctx, repos.wishlists, wid, uid); err != nil {
		return MembershipResponse{}, err
	}

	g, err := repos.gifts.GetByID(ctx, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MembershipResponse{}, gift.ErrGiftNotFound
		}
		s.logger.Error("failed to load gift", zap.String("gift_id", giftID), zap.Error(err))
		return MembershipResponse{}, err
	}

	wg, err := s.insertMembership(ctx, repos, wid, g.ID)
	if err != nil {
		return MembershipResponse{}, err
	}

	if err := s.recordEvent(ctx, repos.outbox, outbox.EventWishlistGiftAdded, wid, g.ID, uid, false); err != nil {
		return MembershipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MembershipResponse{}, err
	}
	committed = true

	s.logger.Info("gift attached to wishlist",
		zap.String("wishlist_id", wishlistID),
		zap.String("gift_id", giftID),
	)

	return toMembershipResponse(wg, g, false), nil
}

// CreateAndAttachGift creates a gift owned by the user and links it to the
// wishlist in the same transaction. Nothing is persisted on failure.
func (s *service) CreateAndAttachGift(ctx context.Context, userID, wishlistID string, req gift.CreateGiftRequest) (MembershipResponse, error) {
	uid, wid, err := parseIDs(userID, wishlistID)
	if err != nil {
		return MembershipResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MembershipResponse{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	repos := s.bind(tx)

	if _, err := s.loadForWrite(ctx, repos.wishlists, wid, uid); err != nil {
		return MembershipResponse{}, err
	}

	params, err := gift.NewCreateParams(uid, req)
	if err != nil {
		return MembershipResponse{}, err
	}

	g, err := repos.gifts.Create(ctx, params)
	if err != nil {
		s.logger.Error("failed to create gift", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return MembershipResponse{}, err
	}

	wg, err := s.insertMembership(ctx, repos, wid, g.ID)
	if err != nil {
		return MembershipResponse{}, err
	}

	if err := s.recordEvent(ctx, repos.outbox, outbox.EventWishlistGiftAdded, wid, g.ID, uid, true); err != nil {
		return MembershipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MembershipResponse{}, err
	}
	committed = true

	s.logger.Info("gift created and attached to wishlist",
		zap.String("wishlist_id", wishlistID),
		zap.String("gift_id", g.ID.String()),
	)

	return toMembershipResponse(wg, g, true), nil
}

// List returns the memberships of an owned wishlist in insertion order.
// Wishlists of other users are reported as not found.
func (s *service) List(ctx context.Context, userID, wishlistID string) ([]MembershipResponse, error) {
	uid, wid, err := parseIDs(userID, wishlistID)
	if err != nil {
		return nil, err
	}

	w, err := s.loadWishlist(ctx, s.wishlists, wid)
	if err != nil {
		return nil, err
	}
	if w.UserID != uid {
		return nil, wishlist.ErrWishlistNotFound
	}

	rows, err := s.wishlists.ListGifts(ctx, wid)
	if err != nil {
		s.logger.Error("failed to list memberships", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return nil, err
	}

	res := make([]MembershipResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, MembershipResponse{
			ID:         row.ID.String(),
			WishlistID: row.WishlistID.String(),
			Gift:       wishlist.GiftFromRow(row),
			CreatedAt:  row.CreatedAt,
		})
	}
	return res, nil
}

// Detach removes a gift from an owned wishlist. The gift record is kept.
func (s *service) Detach(ctx context.Context, userID, wishlistID, giftID string) error {
	uid, wid, err := parseIDs(userID, wishlistID)
	if err != nil {
		return err
	}
	gid, err := uuid.Parse(giftID)
	if err != nil {
		return gift.ErrInvalidGiftID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	repos := s.bind(tx)

	if _, err := s.loadForWrite(ctx, repos.wishlists, wid, uid); err != nil {
		return err
	}

	n, err := repos.wishlists.RemoveGift(ctx, wid, gid)
	if err != nil {
		s.logger.Error("failed to remove membership", zap.String("wishlist_id", wishlistID), zap.Error(err))
		return err
	}
	if n == 0 {
		return wishlist.ErrMembershipNotFound
	}

	if err := s.recordEvent(ctx, repos.outbox, outbox.EventWishlistGiftRemoved, wid, gid, uid, false); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}

// loadForWrite returns the wishlist if uid may modify its memberships.
func (s *service) loadForWrite(ctx context.Context, repo wishlist.Repository, wid, uid uuid.UUID) (dbgen.Wishlist, error) {
	w, err := s.loadWishlist(ctx, repo, wid)
	if err != nil {
		return dbgen.Wishlist{}, err
	}
	if w.UserID != uid {
		s.logger.Warn("membership write rejected",
			zap.String("wishlist_id", wid.String()),
			zap.String("user_id", uid.String()),
		)
		return dbgen.Wishlist{}, wishlist.ErrWishlistForbidden
	}
	return w, nil
}

func (s *service) loadWishlist(ctx context.Context, repo wishlist.Repository, wid uuid.UUID) (dbgen.Wishlist, error) {
	w, err := repo.GetByID(ctx, wid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Wishlist{}, wishlist.ErrWishlistNotFound
		}
		s.logger.Error("failed to load wishlist", zap.String("wishlist_id", wid.String()), zap.Error(err))
		return dbgen.Wishlist{}, err
	}
	return w, nil
}

// insertMembership checks for an existing row first; the unique constraint
// still decides when two requests race past the check.
func (s *service) insertMembership(ctx context.Context, repos txRepos, wid, gid uuid.UUID) (dbgen.WishlistGift, error) {
	exists, err := repos.wishlists.GiftExists(ctx, wid, gid)
	if err != nil {
		s.logger.Error("failed to check membership", zap.String("wishlist_id", wid.String()), zap.Error(err))
		return dbgen.WishlistGift{}, err
	}
	if exists {
		return dbgen.WishlistGift{}, wishlist.ErrGiftAlreadyInWishlist
	}

	wg, err := repos.wishlists.AddGift(ctx, wid, gid)
	if err != nil {
		if !errors.Is(err, wishlist.ErrGiftAlreadyInWishlist) {
			s.logger.Error("failed to add membership", zap.String("wishlist_id", wid.String()), zap.Error(err))
		}
		return dbgen.WishlistGift{}, err
	}
	return wg, nil
}

func (s *service) recordEvent(ctx context.Context, repo outbox.Repository, eventType string, wid, gid, uid uuid.UUID, created bool) error {
	params, err := outbox.NewWishlistGiftEvent(eventType, outbox.WishlistGiftPayload{
		WishlistID:  wid.String(),
		GiftID:      gid.String(),
		UserID:      uid.String(),
		CreatedGift: created,
		OccurredAt:  s.now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := repo.CreateEvent(ctx, params); err != nil {
		s.logger.Error("failed to write outbox event", zap.String("event_type", eventType), zap.Error(err))
		return err
	}
	return nil
}

func parseIDs(userID, wishlistID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, autherrors.ErrInvalidUserID
	}
	wid, err := uuid.Parse(wishlistID)
	if err != nil {
		return uuid.Nil, uuid.Nil, wishlist.ErrInvalidWishlistID
	}
	return uid, wid, nil
}

func toMembershipResponse(wg dbgen.WishlistGift, g dbgen.Gift, created bool) MembershipResponse {
	return MembershipResponse{
		ID:          wg.ID.String(),
		WishlistID:  wg.WishlistID.String(),
		Gift:        gift.ToResponse(g),
		CreatedGift: created,
		CreatedAt:   wg.CreatedAt,
	}
}
