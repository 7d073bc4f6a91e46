package membership

import (
	"go-gift-api/internal/gift"
	"go-gift-api/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("membership.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("membership.handler")
	}
	return &Handler{service: svc, logger: l}
}

// POST /wishlists/:id/gifts
func (h *Handler) Attach(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req AttachGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.AttachExistingGift(c.Request.Context(), userID, c.Param("id"), req.GiftID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Gift added to wishlist successfully", res)
}

// POST /wishlists/:id/gifts/new
func (h *Handler) CreateAndAttach(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req gift.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.CreateAndAttachGift(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Gift created and added to wishlist successfully", res)
}

// GET /wishlists/:id/gifts
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	res, err := h.service.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// DELETE /wishlists/:id/gifts/:giftId
func (h *Handler) Detach(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	if err := h.service.Detach(c.Request.Context(), userID, c.Param("id"), c.Param("giftId")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gift removed from wishlist successfully", nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if response.IsServerError(err) {
		h.logger.Error("membership request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.FromError(c, err)
}
