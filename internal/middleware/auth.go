package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
)

const (
	ContextUserID   = logger.UserIDKey
	ContextIdentity = "identity"
	ContextClaims   = "claims"

	// TokenCookie carries the session token for browser clients.
	TokenCookie = "token"
)

// AuthMiddleware accepts the session token from the Authorization header or
// the token cookie, rejects revoked tokens and loads the requester so the
// e-mail confirmation flag is current.
func AuthMiddleware(tokens *auth.TokenService, revoker auth.Revoker, users account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			httperr.Unauthorized(c, "unauthorized", "Não autorizado para acessar esta rota.")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Não autorizado para acessar esta rota.")
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.WithError(err).Error("token revocation lookup failed")
				httperr.Internal(c, "internal_error", "Erro do servidor.")
				return
			}
			if revoked {
				httperr.Unauthorized(c, "invalid_token", "Sessão encerrada.")
				return
			}
		}

		user, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			httperr.Unauthorized(c, "unauthorized", "Não autorizado para acessar esta rota.")
			return
		}

		id := authz.Identity{
			UserID:         user.ID,
			Role:           user.Role,
			EmailConfirmed: user.EmailConfirmed,
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextIdentity, id)
		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(authz.WithIdentity(c.Request.Context(), id))

		c.Next()
	}
}

// OptionalClaims records the session claims when a valid token is present
// and never rejects the request.
func OptionalClaims(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := tokens.Parse(tokenString); err == nil {
				c.Set(ContextClaims, claims)
			}
		}
		c.Next()
	}
}

// RequireEmailConfirmed must run after AuthMiddleware.
func RequireEmailConfirmed() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		if err := authz.RequireConfirmed(id); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		if err := authz.RequireAdmin(id); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (authz.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return authz.Identity{}, false
	}
	id, ok := v.(authz.Identity)
	return id, ok
}

func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "none" {
		return cookie
	}
	return ""
}
