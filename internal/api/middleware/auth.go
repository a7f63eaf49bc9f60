// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity"    // Key to store provider identity claims in context
	currentUserCtx      = "currentUser" // Key to store the resolved local user in context
)

// SessionClaims are the claims of the identity provider's session JWT.
// Subject carries the provider's user id.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// SessionAuthMiddleware creates a Gin middleware that verifies the identity
// provider's session JWT and stores the asserted identity in context.
// It performs no database access; role resolution happens in RequireRole.
func SessionAuthMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		token, err := jwt.ParseWithClaims(headerParts[1], &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(sessionSecret), nil
		})
		if err != nil {
			log.Printf("Auth middleware: Error parsing session token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*SessionClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityCtx, &dto.Identity{
			ExternalID: claims.Subject,
			Email:      claims.Email,
			Name:       claims.Name,
		})
		c.Next()
	}
}

// RequireRole creates a Gin middleware that resolves the local user for the
// authenticated identity and admits the request only when the user's role is
// in the allow list. The role is read fresh from the store on every request;
// lookup failures deny access. The body of a denial never says whether the
// target resource exists.
func RequireRole(bridge services.IdentityService, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := GetIdentityFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := bridge.EnsureUser(c.Request.Context(), identity)
		if err != nil {
			log.Printf("Auth middleware: Error resolving user for %s: %v", identity.ExternalID, err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		allowed := false
		for _, role := range roles {
			if user.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set(currentUserCtx, user)
		c.Next()
	}
}

// GetIdentityFromContext returns the provider identity stored by SessionAuthMiddleware.
func GetIdentityFromContext(c *gin.Context) (*dto.Identity, error) {
	identityAny, exists := c.Get(identityCtx)
	if !exists {
		return nil, errors.New("identity not found in context")
	}

	identity, ok := identityAny.(*dto.Identity)
	if !ok {
		return nil, errors.New("identity in context is of invalid type")
	}

	return identity, nil
}

// GetCurrentUser returns the local user stored by RequireRole.
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	userAny, exists := c.Get(currentUserCtx)
	if !exists {
		return nil, errors.New("current user not found in context")
	}

	user, ok := userAny.(*models.User)
	if !ok {
		return nil, errors.New("current user in context is of invalid type")
	}

	return user, nil
}
