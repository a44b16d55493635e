package middleware

import (
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// I18n resolves the Accept-Language header into the display locale.
// The raw header is matched as a whole ("zh", "zh-TW", "zh-CN" are
// Chinese); anything else, including q-value lists, is English.
func I18n() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Resolve(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Header("Content-Language", locale.String())
		c.Next()
	}
}

// GetLocale returns the locale from the gin context (set by I18n middleware)
func GetLocale(c *gin.Context) i18n.Locale {
	if v, exists := c.Get(localeKey); exists {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.Resolve(c.GetHeader("Accept-Language"))
}
