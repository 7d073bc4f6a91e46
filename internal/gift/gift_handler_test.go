package gift_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gift-api/internal/gift"
	"go-gift-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE SERVICE ====================

type fakeGiftService struct {
	createFunc func(ctx context.Context, userID string, req gift.CreateGiftRequest) (gift.GiftResponse, error)
	listFunc   func(ctx context.Context, userID string) ([]gift.GiftResponse, error)
	detailFunc func(ctx context.Context, userID, giftID string) (gift.GiftResponse, error)
	updateFunc func(ctx context.Context, userID, giftID string, req gift.UpdateGiftRequest) (gift.GiftResponse, error)
	deleteFunc func(ctx context.Context, userID, giftID string) error
}

func (f *fakeGiftService) Create(ctx context.Context, userID string, req gift.CreateGiftRequest) (gift.GiftResponse, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, userID, req)
	}
	return gift.GiftResponse{}, nil
}

func (f *fakeGiftService) List(ctx context.Context, userID string) ([]gift.GiftResponse, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID)
	}
	return []gift.GiftResponse{}, nil
}

func (f *fakeGiftService) Detail(ctx context.Context, userID, giftID string) (gift.GiftResponse, error) {
	if f.detailFunc != nil {
		return f.detailFunc(ctx, userID, giftID)
	}
	return gift.GiftResponse{}, nil
}

func (f *fakeGiftService) Update(ctx context.Context, userID, giftID string, req gift.UpdateGiftRequest) (gift.GiftResponse, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, userID, giftID, req)
	}
	return gift.GiftResponse{}, nil
}

func (f *fakeGiftService) Delete(ctx context.Context, userID, giftID string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, userID, giftID)
	}
	return nil
}

// ==================== HELPER FUNCTIONS ====================

func newGiftContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()
	var res response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

// ==================== TESTS ====================

func TestGiftHandler_Create(t *testing.T) {
	t.Run("success_create", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeGiftService{
			createFunc: func(_ context.Context, uid string, req gift.CreateGiftRequest) (gift.GiftResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, "Kite", req.Name)
				assert.Nil(t, req.Link)
				return gift.GiftResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		c, w := newGiftContext(http.MethodPost, "/gifts", map[string]any{"name": "Kite"})
		c.Set("user_id", userID)

		gift.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Kite")
	})

	t.Run("error_user_not_authenticated", func(t *testing.T) {
		c, w := newGiftContext(http.MethodPost, "/gifts", map[string]any{"name": "Kite"})

		gift.NewHandler(&fakeGiftService{}).Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error_invalid_body", func(t *testing.T) {
		c, w := newGiftContext(http.MethodPost, "/gifts", "not-an-object")
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(&fakeGiftService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_validation", func(t *testing.T) {
		svc := &fakeGiftService{
			createFunc: func(context.Context, string, gift.CreateGiftRequest) (gift.GiftResponse, error) {
				return gift.GiftResponse{}, gift.ErrInvalidGiftInput
			},
		}
		c, w := newGiftContext(http.MethodPost, "/gifts", map[string]any{"name": ""})
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeBody(t, w)
		require.NotNil(t, res.Error)
		assert.Equal(t, "INVALID_INPUT", res.Error.Code)
	})
}

func TestGiftHandler_Detail(t *testing.T) {
	t.Run("success_detail", func(t *testing.T) {
		giftID := uuid.New().String()
		svc := &fakeGiftService{
			detailFunc: func(_ context.Context, _ string, gid string) (gift.GiftResponse, error) {
				assert.Equal(t, giftID, gid)
				return gift.GiftResponse{ID: gid, Name: "Lamp"}, nil
			},
		}
		c, w := newGiftContext(http.MethodGet, "/gifts/"+giftID, nil)
		c.Params = gin.Params{{Key: "id", Value: giftID}}
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(svc).Detail(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error_not_found", func(t *testing.T) {
		svc := &fakeGiftService{
			detailFunc: func(context.Context, string, string) (gift.GiftResponse, error) {
				return gift.GiftResponse{}, gift.ErrGiftNotFound
			},
		}
		c, w := newGiftContext(http.MethodGet, "/gifts/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(svc).Detail(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGiftHandler_Update(t *testing.T) {
	t.Run("success_clear_cost", func(t *testing.T) {
		svc := &fakeGiftService{
			updateFunc: func(_ context.Context, _, _ string, req gift.UpdateGiftRequest) (gift.GiftResponse, error) {
				assert.True(t, req.ClearCost)
				assert.Nil(t, req.Name)
				return gift.GiftResponse{}, nil
			},
		}
		c, w := newGiftContext(http.MethodPatch, "/gifts/x", map[string]any{"clearCost": true})
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGiftHandler_Delete(t *testing.T) {
	t.Run("success_delete", func(t *testing.T) {
		c, w := newGiftContext(http.MethodDelete, "/gifts/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(&fakeGiftService{}).Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error_internal", func(t *testing.T) {
		svc := &fakeGiftService{
			deleteFunc: func(context.Context, string, string) error {
				return errors.New("boom")
			},
		}
		c, w := newGiftContext(http.MethodDelete, "/gifts/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		gift.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
