package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/log"
	"github.com/givehub/backend/internal/metrics"
	"github.com/givehub/backend/internal/repo"
	"github.com/givehub/backend/internal/security"
)

const principalKey = "principal"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.L().Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("X-Request-ID")),
		)
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.InFlight.Inc()
		start := time.Now()
		c.Next()
		metrics.InFlight.Dec()
		route := c.FullPath()
		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ReqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Authenticate extracts the bearer token, verifies it and resolves the
// embedded id against each resolver in order; the first match becomes the
// request's principal. A token over a deleted principal fails here too:
// tokens are never invalidated server-side, but the lookup is.
func Authenticate(secret string, resolvers []repo.PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"status": "error", "message": "you are not logged in"})
			return
		}
		tok := strings.TrimSpace(h[len("Bearer "):])
		sub, err := security.ParseToken(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"status": "error", "message": "invalid or expired token"})
			return
		}
		id, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"status": "error", "message": "invalid or expired token"})
			return
		}
		for _, r := range resolvers {
			p, err := r.ResolvePrincipal(c.Request.Context(), id)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"status": "error", "message": "something went wrong"})
				return
			}
			if p != nil {
				c.Set(principalKey, p)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"status": "error", "message": "the user belonging to this token no longer exists"})
	}
}

// RestrictTo runs after Authenticate; authentication failures always
// surface before authorization ones.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		for _, r := range roles {
			if p != nil && p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"status": "error", "message": "you do not have permission to perform this action"})
	}
}

// RateLimit guards the credential endpoints with a per-IP fixed window.
// Without a redis client it is a no-op.
func RateLimit(rds *repo.Redis, perMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rds == nil || perMin <= 0 {
			c.Next()
			return
		}
		key := "rl:" + c.FullPath() + ":" + c.ClientIP()
		allowed, err := rds.Allow(c.Request.Context(), key, perMin, time.Minute)
		if err != nil {
			log.L().Warn("rate limiter unavailable", zap.Error(err))
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"status": "error", "message": "too many requests"})
			return
		}
		c.Next()
	}
}

func currentPrincipal(c *gin.Context) *domain.Principal {
	v, okv := c.Get(principalKey)
	if !okv {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}
