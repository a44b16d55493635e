package middleware

import (
	"errors"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	adminIDKey = "adminID"
	accountKey = "account"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.Fail(c, common.Unauthorized("缺少授權標頭"))
			return
		}

		// 2. Parse Bearer token
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			common.Fail(c, common.Unauthorized("授權標頭格式錯誤"))
			return
		}

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.Fail(c, common.Unauthorized("登入已過期"))
			} else {
				common.Fail(c, common.Unauthorized("無效的 Token"))
			}
			return
		}

		// 4. Store admin identity in context
		c.Set(adminIDKey, claims.AdminID())
		c.Set(accountKey, claims.Account)

		c.Next()
	}
}

// GetActor returns the admin identity stored by JWTAuth
func GetActor(c *gin.Context) domain.Actor {
	return domain.Actor{
		AdminID: c.GetString(adminIDKey),
		Account: c.GetString(accountKey),
	}
}
