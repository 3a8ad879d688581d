package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/pkg/helpers"
	"github.com/oksasatya/wil-portal/pkg/response"
)

const CtxClaimsKey = "claims"

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*helpers.SessionClaims, error)
}

// Auth requires "Authorization: Bearer <token>" and stores the verified
// claims in the Gin context under CtxClaimsKey. isRejection classifies
// verifier errors; nil treats every error as a rejection.
func Auth(v TokenVerifier, isRejection func(error) bool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		claims, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			if isRejection == nil || isRejection(err) {
				response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
				return
			}
			helpers.LogError(logger, "token verification failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}

// Claims returns the claims stored by Auth, if any.
func Claims(c *gin.Context) (*helpers.SessionClaims, bool) {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*helpers.SessionClaims)
	return claims, ok && claims != nil
}

func bearerToken(h string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
