// Package middleware carries the request-scoped plumbing shared by the
// protected route groups.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"consorcio_crm/pkg"
)

const (
	// HeaderUsuarioID is set by the API gateway after authenticating the
	// session; this service never sees credentials.
	HeaderUsuarioID = "X-Usuario-ID"

	// ContextUsuarioID is the gin context key the handlers read.
	ContextUsuarioID = "usuario_id"
)

var errUsuarioNaoIdentificado = pkg.NewDomainErrorSimple("USUARIO_NAO_IDENTIFICADO", "Missing "+HeaderUsuarioID+" header", http.StatusUnauthorized)

// RequireUsuario rejects requests that arrive without a resolved actor and
// exposes the actor id to the handlers.
func RequireUsuario() gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := strings.TrimSpace(c.GetHeader(HeaderUsuarioID))
		if usuarioID == "" {
			c.AbortWithStatusJSON(errUsuarioNaoIdentificado.HTTPStatus, errUsuarioNaoIdentificado.ToHTTPError())
			return
		}
		c.Set(ContextUsuarioID, usuarioID)
		c.Next()
	}
}
