package gift

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
	l := zap.L().Named("gift.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gift.handler")
	}
	return &Handler{service: svc, logger: l}
}

// POST /gifts
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Gift created successfully", res)
}

// GET /gifts
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

// GET /gifts/:id
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

// PATCH /gifts/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	var req UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gift updated successfully", res)
}

// DELETE /gifts/:id
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

	response.Success(c, http.StatusOK, "Gift deleted successfully", nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if response.IsServerError(err) {
		h.logger.Error("gift request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.FromError(c, err)
}
