package gift

import (
	"context"
	"database/sql"
	"errors"

	autherrors "go-gift-api/internal/auth/errors"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, req CreateGiftRequest) (GiftResponse, error)
	List(ctx context.Context, userID string) ([]GiftResponse, error)
	Detail(ctx context.Context, userID, giftID string) (GiftResponse, error)
	Update(ctx context.Context, userID, giftID string, req UpdateGiftRequest) (GiftResponse, error)
	Delete(ctx context.Context, userID, giftID string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(r Repository, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gift.service")
	}
	return &service{repo: r, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateGiftRequest) (GiftResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return GiftResponse{}, autherrors.ErrInvalidUserID
	}

	params, err := NewCreateParams(uid, req)
	if err != nil {
		return GiftResponse{}, err
	}

	g, err := s.repo.Create(ctx, params)
	if err != nil {
		s.logger.Error("failed to create gift", zap.String("user_id", userID), zap.Error(err))
		return GiftResponse{}, ErrGiftFailed
	}

	return ToResponse(g), nil
}

func (s *service) List(ctx context.Context, userID string) ([]GiftResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	gifts, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to list gifts", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrGiftFailed
	}

	res := make([]GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		res = append(res, ToResponse(g))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, userID, giftID string) (GiftResponse, error) {
	g, err := s.getOwned(ctx, userID, giftID)
	if err != nil {
		return GiftResponse{}, err
	}
	return ToResponse(g), nil
}

func (s *service) Update(ctx context.Context, userID, giftID string, req UpdateGiftRequest) (GiftResponse, error) {
	current, err := s.getOwned(ctx, userID, giftID)
	if err != nil {
		return GiftResponse{}, err
	}

	params, err := NewUpdateParams(current, req)
	if err != nil {
		return GiftResponse{}, err
	}

	g, err := s.repo.Update(ctx, params)
	if err != nil {
		s.logger.Error("failed to update gift", zap.String("gift_id", giftID), zap.Error(err))
		return GiftResponse{}, ErrGiftFailed
	}

	return ToResponse(g), nil
}

func (s *service) Delete(ctx context.Context, userID, giftID string) error {
	g, err := s.getOwned(ctx, userID, giftID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, g.ID); err != nil {
		s.logger.Error("failed to delete gift", zap.String("gift_id", giftID), zap.Error(err))
		return ErrGiftFailed
	}
	return nil
}

// getOwned hides gifts of other users behind ErrGiftNotFound.
func (s *service) getOwned(ctx context.Context, userID, giftID string) (dbgen.Gift, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return dbgen.Gift{}, autherrors.ErrInvalidUserID
	}
	gid, err := uuid.Parse(giftID)
	if err != nil {
		return dbgen.Gift{}, ErrInvalidGiftID
	}

	g, err := s.repo.GetByID(ctx, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Gift{}, ErrGiftNotFound
		}
		return dbgen.Gift{}, ErrGiftFailed
	}

	if g.UserID != uid {
		return dbgen.Gift{}, ErrGiftNotFound
	}
	return g, nil
}

func ToResponse(g dbgen.Gift) GiftResponse {
	return GiftResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		Link:      g.Link,
		Cost:      helper.NullDecimalToPtr(g.Cost),
		Image:     g.Image,
		Status:    g.Status,
		UserID:    g.UserID.String(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
