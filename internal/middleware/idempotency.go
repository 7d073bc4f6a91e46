package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-gift-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader         = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotent-Replayed"

	// IdempotencyTTL is how long a finished result is replayed for.
	IdempotencyTTL = 24 * time.Hour
	// a crashed request frees its key after this long
	idempotencyPendingTTL = 30 * time.Second

	idempotencyPending = "pending"
)

// IdempotencyStore is the subset of *redis.Client used for idempotency keys.
type IdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type storedResult struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter keeps a copy of the body so it can be stored for replay.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency makes a retried request with the same Idempotency-Key (per
// user, method and route) return the first response instead of running the
// handler again. While the first request is still running, duplicates get
// 409. Results below 500 are replayed for IdempotencyTTL; a 5xx frees the key
// so the client can retry. Requests without the header pass through. Redis
// failures fail open: the database constraints still reject duplicates.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idemKey := c.GetHeader(IdempotencyHeader)
		if idemKey == "" || store == nil {
			c.Next()
			return
		}

		key := "idem:" + c.GetString("user_id") + ":" + c.Request.Method + ":" + c.FullPath() + ":" + idemKey
		ctx := c.Request.Context()

		acquired, err := store.SetNX(ctx, key, idempotencyPending, idempotencyPendingTTL).Result()
		if err != nil {
			logger.Warn("idempotency store unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !acquired {
			replayOrReject(c, store, key, logger)
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		bg := context.WithoutCancel(ctx)
		status := cw.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Del(bg, key).Err(); err != nil {
				logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(err))
			}
			return
		}

		raw, err := json.Marshal(storedResult{
			Status:      status,
			ContentType: cw.Header().Get("Content-Type"),
			Body:        cw.buf.Bytes(),
		})
		if err == nil {
			err = store.Set(bg, key, raw, IdempotencyTTL).Err()
		}
		if err != nil {
			logger.Warn("failed to store idempotent result", zap.String("key", key), zap.Error(err))
			_ = store.Del(bg, key).Err()
		}
	}
}

func replayOrReject(c *gin.Context, store IdempotencyStore, key string, logger *zap.Logger) {
	val, err := store.Get(c.Request.Context(), key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// finished and expired between SetNX and Get; treat as still busy
		val = idempotencyPending
	case err != nil:
		logger.Warn("idempotency lookup failed", zap.String("key", key), zap.Error(err))
		val = idempotencyPending
	}

	if val == idempotencyPending {
		response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "A request with this Idempotency-Key is already being processed", nil)
		c.Abort()
		return
	}

	var res storedResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		logger.Warn("corrupt idempotent result", zap.String("key", key), zap.Error(err))
		response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "A request with this Idempotency-Key is already being processed", nil)
		c.Abort()
		return
	}

	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(res.Status, res.ContentType, res.Body)
	c.Abort()
}
