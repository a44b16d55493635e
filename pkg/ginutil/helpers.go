package ginutil

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := strings.TrimSpace(c.Query(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// QueryString returns the trimmed query value
func QueryString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// ParamID extracts a trimmed path parameter; ok is false when it is blank
func ParamID(c *gin.Context, key string) (string, bool) {
	id := strings.TrimSpace(c.Param(key))
	return id, id != ""
}
