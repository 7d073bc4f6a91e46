package wishlist

import (
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
	l := zap.L().Named("wishlist.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wishlist.handler")
	}
	return &Handler{service: svc, logger: l}
}

// POST /wishlists
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Wishlist created successfully", res)
}

// GET /wishlists
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	res, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /wishlists/:id
func (h *Handler) Detail(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	res, err := h.service.Detail(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// PATCH /wishlists/:id
func (h *Handler) Rename(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Rename(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Wishlist updated successfully", res)
}

// DELETE /wishlists/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Wishlist deleted successfully", nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if response.IsServerError(err) {
		h.logger.Error("wishlist request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.FromError(c, err)
}
