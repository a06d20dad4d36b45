package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/log"
	"github.com/givehub/backend/internal/repo"
)

type Handler struct {
	Store           *repo.Store
	Resolvers       []repo.PrincipalResolver
	JWTSecret       string
	TokenTTL        time.Duration
	Redis           *repo.Redis
	RateLimitPerMin int
}

func NewHandler(store *repo.Store, jwtSecret string, ttlHours int, rds *repo.Redis, rlPerMin int) *Handler {
	return &Handler{
		Store:           store,
		Resolvers:       store.PrincipalResolvers(),
		JWTSecret:       jwtSecret,
		TokenTTL:        time.Duration(ttlHours) * time.Hour,
		Redis:           rds,
		RateLimitPerMin: rlPerMin,
	}
}

func isDup(err error) bool { return repo.IsDup(err) }

// notify records an admin-facing notification; a failed write is logged
// and never fails the triggering request.
func (h *Handler) notify(c *gin.Context, typ, title, msg string) {
	n := &domain.Notification{Type: typ, Title: title, Message: msg}
	if err := h.Store.CreateNotification(c.Request.Context(), n); err != nil {
		log.L().Warn("notification write failed", zap.String("type", typ), zap.Error(err))
	}
}
