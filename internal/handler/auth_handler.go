package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin sign in
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      管理員登入
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LoginRequest  true  "帳號密碼"
// @Success      200   {object}  common.Response{result=domain.LoginResponse}
// @Failure      400   {object}  common.Response
// @Failure      401   {object}  common.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "登入成功", resp)
}
