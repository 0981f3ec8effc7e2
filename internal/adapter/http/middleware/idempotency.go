package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderIdempotencyReplay = "X-Idempotency-Replay"

	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = time.Minute
	maxIdempotencyKey  = 128
)

// cachedResponse is what gets stored for a completed request.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyRecorder tees the response body so it can be cached.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the cached 2xx response of a POST that carries an
// Idempotency-Key already seen for the same operator and path. The key is
// reserved before the handler runs, so a duplicate arriving meanwhile gets
// IDEM_001 instead of a second mutation. Requests without the header pass
// straight through. Cache failures never block the request.
func Idempotency(cache ports.IdempotencyCache, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKey {
			key = key[:maxIdempotencyKey]
		}

		cacheKey := idempotencyCacheKey(Operator(c), c.Request.Method, c.Request.URL.Path, key)
		ctx := c.Request.Context()

		raw, err := cache.Get(ctx, cacheKey)
		switch {
		case errors.Is(err, ports.ErrRequestInFlight):
			rejectInFlight(c, log, key)
			return
		case err != nil:
			log.Warn().Err(err).Msg("idempotency lookup failed, processing request")
		case raw != nil:
			if replay(c, raw) {
				log.Info().Str("idempotency_key", key).Str("path", c.Request.URL.Path).Msg("idempotent replay")
				return
			}
			log.Warn().Str("idempotency_key", key).Msg("discarding corrupt idempotency entry")
			if err := cache.Release(ctx, cacheKey); err != nil {
				log.Warn().Err(err).Msg("idempotency release failed")
			}
		}

		reserved, err := cache.Reserve(ctx, cacheKey, idempotencyLockTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency reserve failed, processing request")
		} else if !reserved {
			// Taken between Get and Reserve; a retry will replay it.
			rejectInFlight(c, log, key)
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// The outcome must be recorded even if the client went away.
		ctx = context.WithoutCancel(ctx)

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if reserved {
				if err := cache.Release(ctx, cacheKey); err != nil {
					log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency release failed")
				}
			}
			return
		}

		payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
		if err == nil {
			err = cache.Set(ctx, cacheKey, payload, idempotencyTTL)
		}
		if err != nil {
			log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency store failed")
		}
	}
}

func replay(c *gin.Context, raw []byte) bool {
	var cached cachedResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		return false
	}
	c.Header(HeaderIdempotencyReplay, "true")
	c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
	c.Abort()
	return true
}

func rejectInFlight(c *gin.Context, log zerolog.Logger, key string) {
	log.Warn().Str("idempotency_key", key).Str("path", c.Request.URL.Path).Msg("duplicate request while original in flight")
	response.Error(c, apperror.ErrRequestInProgress())
	c.Abort()
}

func idempotencyCacheKey(operator, method, path, key string) string {
	return operator + ":" + method + ":" + path + ":" + key
}
