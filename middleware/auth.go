package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/services"
)

const usuarioKey = "usuario"

// TokenVerifier is the slice of the token service the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*services.TokenPayload, error)
}

// Auth rejects requests without a valid bearer token and attaches the
// verified payload to the context for downstream handlers.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader("Authorization")
		if authorizationHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token não informado"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		payload, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}
		c.Set(usuarioKey, payload)
	}
}

// MustGetUsuario returns the authenticated caller. Only valid on routes
// behind Auth.
func MustGetUsuario(c *gin.Context) *services.TokenPayload {
	usuario, _ := c.Get(usuarioKey)
	return usuario.(*services.TokenPayload)
}
