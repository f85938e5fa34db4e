package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/auth"
	"go-peerrank-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies a bearer token (or auth_token cookie) issued by the
// identity service and loads the user it names. HS256 tokens are checked
// against jwtSecret, RS256 tokens against jwks when it is set.
func AuthMiddleware(jwtSecret string, jwks *auth.Provider, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			switch token.Method.(type) {
			case *jwt.SigningMethodHMAC:
				if jwtSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(jwtSecret), nil
			case *jwt.SigningMethodRSA:
				if jwks == nil {
					return nil, fmt.Errorf("RS256 token received but JWT_JWKS_URL is not configured")
				}
				return jwks.KeyFunc(c.Request.Context())(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodRS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Log.Warn("Token validation failed", "error", err, "ip", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		userID, ok := subjectID(claims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid subject claim", nil)
			c.Abort()
			return
		}

		// The token only proves identity; the user must still exist locally
		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)

		// Usecases read identity from the request context
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// subjectID reads the numeric user id from the "sub" claim, which may be
// encoded as a JSON string or number.
func subjectID(claims jwt.MapClaims) (int64, bool) {
	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		return id, err == nil && id > 0
	case float64:
		id := int64(sub)
		return id, float64(id) == sub && id > 0
	}
	return 0, false
}
