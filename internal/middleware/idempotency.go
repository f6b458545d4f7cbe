package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
)

const idempotencyTTL = 24 * time.Hour

// storedResponse is what gets cached per idempotency key: the body alone is
// not enough, a replayed create must answer with the original status.
type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bufferingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key and
// holds a short redis lock while the first request is in flight, so a
// double-submitted check-in cannot race itself.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := contextutil.GetUserID(c.Request.Context())

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var stored storedResponse
			if err := json.Unmarshal([]byte(cached), &stored); err == nil {
				c.Header("X-Idempotent-Replay", "true")
				c.Data(stored.Status, "application/json", []byte(stored.Body))
				c.Abort()
				return
			}
		}

		// Short expiry on the lock so a crashed request cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already in progress",
			})
			return
		}

		writer := &bufferingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		// Only successful outcomes are replayable; a failed attempt may be
		// retried with the same key.
		if status := c.Writer.Status(); status >= 200 && status < 300 {
			if payload, err := json.Marshal(storedResponse{Status: status, Body: writer.body.String()}); err == nil {
				_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL).Err()
			}
		}
		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
