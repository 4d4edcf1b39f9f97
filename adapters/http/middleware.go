package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrahman/profilio/internal/domain/blog"
	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/internal/domain/resume"
	"github.com/hrahman/profilio/internal/domain/user"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/auth"
	"github.com/hrahman/profilio/pkg/logger"
)

// Domain sentinels that map straight to 404. Repositories return these
// as-is; anything not listed here falls through to the generic handling.
var notFoundErrors = []error{
	user.ErrUserNotFound,
	calendar.ErrEventNotFound,
	blog.ErrPostNotFound,
	resume.ErrHeadingNotFound,
	resume.ErrSummaryNotFound,
	resume.ErrEducationNotFound,
	resume.ErrExperienceNotFound,
	resume.ErrSkillNotFound,
}

const (
	GinContextKeyOwnerID = "ownerID"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)

		c.Next()
	}
}

// ErrorMiddleware maps errors attached by handlers to JSON responses.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		for _, sentinel := range notFoundErrors {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": sentinel.Error()})
				return
			}
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr, zap.String("path", c.FullPath()))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err, zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}
