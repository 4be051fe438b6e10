package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusvinicius1er/Reach-online/pkg/origin"
)

// CORS attaches CORS headers to every response, success or error, so
// browser callers can always read the body. Preflight requests are
// answered here with 204 regardless of path.
//
// The Allow-Origin value comes from the origin policy: the caller's own
// origin when allow-listed, otherwise the first configured origin. The
// header is cosmetic for rejected callers; the status code on the actual
// request is the access decision.
func CORS(policy *origin.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqOrigin := origin.FromRequest(c.Request)
		if allow := policy.AllowHeader(reqOrigin); allow != "" {
			c.Header("Access-Control-Allow-Origin", allow)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
