package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the signed-in admin's own account
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Me godoc
// @Summary      取得管理員資料
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response{result=domain.AdminProfile}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	profile, err := h.service.Me(c.Request.Context(), actor(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "取得管理員資料成功", profile)
}

// UpdateMe godoc
// @Summary      更新管理員資料
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.UpdateAdminRequest  true  "管理員資料"
// @Success      200   {object}  common.Response{result=domain.AdminProfile}
// @Failure      400   {object}  common.Response
// @Router       /admin/me [put]
func (h *AdminHandler) UpdateMe(c *gin.Context) {
	var req domain.UpdateAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.service.UpdateMe(c.Request.Context(), actor(c), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "更新管理員資料成功", profile)
}

// ChangePassword godoc
// @Summary      更新管理員密碼
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.ChangePasswordRequest  true  "密碼"
// @Success      200   {object}  common.Response
// @Failure      400   {object}  common.Response
// @Router       /admin/me/password [put]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor(c), &req); err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "更新管理員密碼成功", nil)
}
