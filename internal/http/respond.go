package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/log"
)

// Every response uses the same envelope: success carries data, error
// carries a human-readable message.

func ok(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": "error", "message": msg})
}

// failInternal logs the real error and answers with a generic message so
// persistence details never leak to clients.
func failInternal(c *gin.Context, during string, err error) {
	log.L().Error("internal error",
		zap.String("during", during),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	fail(c, http.StatusInternalServerError, "something went wrong")
}

const msgBadCredentials = "incorrect email or password"
