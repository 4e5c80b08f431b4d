// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/rentall-backend/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage picks the first preference of a header like
// "es-MX,es;q=0.9,en;q=0.8", falling back to English.
func parseLanguage(header string) string {
	if header == "" {
		return "en"
	}

	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	base, _, _ := strings.Cut(strings.TrimSpace(first), "-")
	base, _, _ = strings.Cut(base, "_")
	base = strings.ToLower(base)

	if i18n.IsSupported(base) {
		return base
	}
	return "en"
}
