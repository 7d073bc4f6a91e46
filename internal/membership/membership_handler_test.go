package membership_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gift-api/internal/gift"
	"go-gift-api/internal/membership"
	"go-gift-api/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeMembershipService struct {
	attachFunc func(ctx context.Context, userID, wishlistID, giftID string) (membership.MembershipResponse, error)
	createFunc func(ctx context.Context, userID, wishlistID string, req gift.CreateGiftRequest) (membership.MembershipResponse, error)
	listFunc   func(ctx context.Context, userID, wishlistID string) ([]membership.MembershipResponse, error)
	detachFunc func(ctx context.Context, userID, wishlistID, giftID string) error
}

func (f *fakeMembershipService) AttachExistingGift(ctx context.Context, userID, wishlistID, giftID string) (membership.MembershipResponse, error) {
	if f.attachFunc != nil {
		return f.attachFunc(ctx, userID, wishlistID, giftID)
	}
	return membership.MembershipResponse{}, nil
}

func (f *fakeMembershipService) CreateAndAttachGift(ctx context.Context, userID, wishlistID string, req gift.CreateGiftRequest) (membership.MembershipResponse, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, userID, wishlistID, req)
	}
	return membership.MembershipResponse{}, nil
}

func (f *fakeMembershipService) List(ctx context.Context, userID, wishlistID string) ([]membership.MembershipResponse, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID, wishlistID)
	}
	return []membership.MembershipResponse{}, nil
}

func (f *fakeMembershipService) Detach(ctx context.Context, userID, wishlistID, giftID string) error {
	if f.detachFunc != nil {
		return f.detachFunc(ctx, userID, wishlistID, giftID)
	}
	return nil
}

// ==================== HELPER FUNCTIONS ====================

func newContext(method, target string, body any, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
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
	c.Params = params
	return c, w
}

// ==================== TESTS ====================

func TestMembershipHandler_Attach(t *testing.T) {
	wid := uuid.New().String()
	gid := uuid.New().String()
	params := gin.Params{{Key: "id", Value: wid}}

	t.Run("success_attach", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeMembershipService{
			attachFunc: func(_ context.Context, uid, w, g string) (membership.MembershipResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, wid, w)
				assert.Equal(t, gid, g)
				return membership.MembershipResponse{ID: uuid.New().String(), WishlistID: w}, nil
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{"giftId": gid}, params)
		c.Set("user_id", userID)

		membership.NewHandler(svc).Attach(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Gift added to wishlist successfully")
	})

	t.Run("error_missing_gift_id", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(&fakeMembershipService{}).Attach(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_forbidden", func(t *testing.T) {
		svc := &fakeMembershipService{
			attachFunc: func(context.Context, string, string, string) (membership.MembershipResponse, error) {
				return membership.MembershipResponse{}, wishlist.ErrWishlistForbidden
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{"giftId": gid}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Attach(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("error_conflict", func(t *testing.T) {
		svc := &fakeMembershipService{
			attachFunc: func(context.Context, string, string, string) (membership.MembershipResponse, error) {
				return membership.MembershipResponse{}, wishlist.ErrGiftAlreadyInWishlist
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{"giftId": gid}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Attach(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Gift already in this wishlist")
	})

	t.Run("error_gift_not_found", func(t *testing.T) {
		svc := &fakeMembershipService{
			attachFunc: func(context.Context, string, string, string) (membership.MembershipResponse, error) {
				return membership.MembershipResponse{}, gift.ErrGiftNotFound
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{"giftId": gid}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Attach(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error_unexpected", func(t *testing.T) {
		svc := &fakeMembershipService{
			attachFunc: func(context.Context, string, string, string) (membership.MembershipResponse, error) {
				return membership.MembershipResponse{}, errors.New("connection reset")
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts", map[string]string{"giftId": gid}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Attach(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestMembershipHandler_CreateAndAttach(t *testing.T) {
	wid := uuid.New().String()
	params := gin.Params{{Key: "id", Value: wid}}

	t.Run("success_create_and_attach", func(t *testing.T) {
		svc := &fakeMembershipService{
			createFunc: func(_ context.Context, _, w string, req gift.CreateGiftRequest) (membership.MembershipResponse, error) {
				assert.Equal(t, wid, w)
				assert.Equal(t, "Bike", req.Name)
				assert.Nil(t, req.Image)
				return membership.MembershipResponse{CreatedGift: true}, nil
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts/new", map[string]any{"name": "Bike", "cost": "99.90"}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).CreateAndAttach(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"createdGift":true`)
	})

	t.Run("error_invalid_input", func(t *testing.T) {
		svc := &fakeMembershipService{
			createFunc: func(context.Context, string, string, gift.CreateGiftRequest) (membership.MembershipResponse, error) {
				return membership.MembershipResponse{}, gift.ErrInvalidGiftInput
			},
		}
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts/new", map[string]any{"name": ""}, params)
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).CreateAndAttach(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_user_not_authenticated", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/wishlists/"+wid+"/gifts/new", map[string]any{"name": "Bike"}, params)

		membership.NewHandler(&fakeMembershipService{}).CreateAndAttach(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMembershipHandler_Detach(t *testing.T) {
	t.Run("success_detach", func(t *testing.T) {
		wid, gid := uuid.New().String(), uuid.New().String()
		svc := &fakeMembershipService{
			detachFunc: func(_ context.Context, _, w, g string) error {
				assert.Equal(t, wid, w)
				assert.Equal(t, gid, g)
				return nil
			},
		}
		c, w := newContext(http.MethodDelete, "/", nil, gin.Params{{Key: "id", Value: wid}, {Key: "giftId", Value: gid}})
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Detach(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error_membership_not_found", func(t *testing.T) {
		svc := &fakeMembershipService{
			detachFunc: func(context.Context, string, string, string) error {
				return wishlist.ErrMembershipNotFound
			},
		}
		c, w := newContext(http.MethodDelete, "/", nil, gin.Params{{Key: "id", Value: uuid.New().String()}, {Key: "giftId", Value: uuid.New().String()}})
		c.Set("user_id", uuid.New().String())

		membership.NewHandler(svc).Detach(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
