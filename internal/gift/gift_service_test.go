package gift_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	autherrors "go-gift-api/internal/auth/errors"
	"go-gift-api/internal/gift"
	giftMock "go-gift-api/internal/mock/gift"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGiftService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := giftMock.NewMockRepository(ctrl)
	svc := gift.NewService(repo)
	ctx := context.Background()

	t.Run("success_normalizes_optional_fields", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p dbgen.CreateGiftParams) (dbgen.Gift, error) {
				assert.Equal(t, userID, p.UserID)
				assert.Equal(t, "", p.Link)
				assert.Equal(t, "", p.Image)
				return dbgen.Gift{
					ID:        uuid.New(),
					UserID:    p.UserID,
					Name:      p.Name,
					Status:    p.Status,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil
			})

		res, err := svc.Create(ctx, userID.String(), gift.CreateGiftRequest{
			Name: "Board game",
			Link: helper.StringPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "Board game", res.Name)
		assert.Equal(t, userID.String(), res.UserID)
		assert.Equal(t, gift.StatusAvailable, res.Status)
		assert.Nil(t, res.Cost)
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		_, err := svc.Create(ctx, "not-a-uuid", gift.CreateGiftRequest{Name: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("error_invalid_input_skips_store", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.New().String(), gift.CreateGiftRequest{Name: ""})
		assert.ErrorIs(t, err, gift.ErrInvalidGiftInput)
	})

	t.Run("error_store_failure", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dbgen.Gift{}, errors.New("db down"))

		_, err := svc.Create(ctx, uuid.New().String(), gift.CreateGiftRequest{Name: "Book"})
		assert.ErrorIs(t, err, gift.ErrGiftFailed)
	})
}

func TestGiftService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := giftMock.NewMockRepository(ctrl)
	svc := gift.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		repo.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return([]dbgen.Gift{
				{ID: uuid.New(), UserID: userID, Name: "A"},
				{ID: uuid.New(), UserID: userID, Name: "B"},
			}, nil)

		res, err := svc.List(ctx, userID.String())

		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "A", res[0].Name)
	})

	t.Run("success_empty", func(t *testing.T) {
		userID := uuid.New()
		repo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

		res, err := svc.List(ctx, userID.String())

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestGiftService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := giftMock.NewMockRepository(ctrl)
	svc := gift.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		giftID := uuid.New()
		repo.EXPECT().
			GetByID(gomock.Any(), giftID).
			Return(dbgen.Gift{ID: giftID, UserID: userID, Name: "Lamp"}, nil)

		res, err := svc.Detail(ctx, userID.String(), giftID.String())

		require.NoError(t, err)
		assert.Equal(t, giftID.String(), res.ID)
	})

	t.Run("error_not_found", func(t *testing.T) {
		giftID := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), giftID).Return(dbgen.Gift{}, sql.ErrNoRows)

		_, err := svc.Detail(ctx, uuid.New().String(), giftID.String())
		assert.ErrorIs(t, err, gift.ErrGiftNotFound)
	})

	t.Run("error_other_owner_is_hidden", func(t *testing.T) {
		giftID := uuid.New()
		repo.EXPECT().
			GetByID(gomock.Any(), giftID).
			Return(dbgen.Gift{ID: giftID, UserID: uuid.New()}, nil)

		_, err := svc.Detail(ctx, uuid.New().String(), giftID.String())
		assert.ErrorIs(t, err, gift.ErrGiftNotFound)
	})

	t.Run("error_invalid_gift_id", func(t *testing.T) {
		_, err := svc.Detail(ctx, uuid.New().String(), "bad")
		assert.ErrorIs(t, err, gift.ErrInvalidGiftID)
	})
}

func TestGiftService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := giftMock.NewMockRepository(ctrl)
	svc := gift.NewService(repo)
	ctx := context.Background()

	t.Run("success_partial_update", func(t *testing.T) {
		userID := uuid.New()
		current := dbgen.Gift{
			ID:     uuid.New(),
			UserID: userID,
			Name:   "Lamp",
			Link:   "https://shop.example.com/lamp",
			Status: gift.StatusAvailable,
		}
		status := gift.StatusGifted

		repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p dbgen.UpdateGiftParams) (dbgen.Gift, error) {
				assert.Equal(t, "Lamp", p.Name)
				assert.Equal(t, gift.StatusGifted, p.Status)
				assert.Equal(t, current.Link, p.Link)
				updated := current
				updated.Status = p.Status
				return updated, nil
			})

		res, err := svc.Update(ctx, userID.String(), current.ID.String(), gift.UpdateGiftRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, gift.StatusGifted, res.Status)
	})

	t.Run("error_invalid_input", func(t *testing.T) {
		userID := uuid.New()
		current := dbgen.Gift{ID: uuid.New(), UserID: userID, Name: "Lamp", Status: gift.StatusAvailable}
		repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil)

		_, err := svc.Update(ctx, userID.String(), current.ID.String(), gift.UpdateGiftRequest{
			Image: helper.StringPtr("ftp//broken"),
		})
		assert.ErrorIs(t, err, gift.ErrInvalidGiftInput)
	})
}

func TestGiftService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := giftMock.NewMockRepository(ctrl)
	svc := gift.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		giftID := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), giftID).Return(dbgen.Gift{ID: giftID, UserID: userID}, nil)
		repo.EXPECT().Delete(gomock.Any(), giftID).Return(nil)

		err := svc.Delete(ctx, userID.String(), giftID.String())
		assert.NoError(t, err)
	})

	t.Run("error_not_owner", func(t *testing.T) {
		giftID := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), giftID).Return(dbgen.Gift{ID: giftID, UserID: uuid.New()}, nil)

		err := svc.Delete(ctx, uuid.New().String(), giftID.String())
		assert.ErrorIs(t, err, gift.ErrGiftNotFound)
	})
}
