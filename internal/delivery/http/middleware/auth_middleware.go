package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"peso-job-portal/config"
	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and loads the user into the
// request context. The role always comes fresh from the database, never
// from the token, so a role change takes effect on the next request.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
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
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
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

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if user.IsDisabled {
			response.Error(c, http.StatusForbidden, "Account disabled", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read these through the request context, not gin keys.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole guards a route group to the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		c.Abort()
	}
}
