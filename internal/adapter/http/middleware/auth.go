package middleware

import (
	"crypto/subtle"
	"net/http"

	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg"

	"github.com/gin-gonic/gin"
)

const authRealm = `Basic realm="gestion-oficina"`

// BasicAuth guards the office API with a single admin account whose password
// is stored as a hash.
func BasicAuth(user, passwordHash string, hasher interfaces.IPasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		gotUser, gotPass, ok := c.Request.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(gotUser), []byte(user)) != 1 || !hasher.Verify(gotPass, passwordHash) {
			c.Header("WWW-Authenticate", authRealm)
			appErr := &pkg.AppError{
				Code:       "UNAUTHORIZED",
				Message:    "Invalid or missing credentials",
				HTTPStatus: http.StatusUnauthorized,
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set("user", gotUser)
		c.Next()
	}
}
