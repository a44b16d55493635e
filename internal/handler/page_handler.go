package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// patchBody is a pointer to a PUT body that lists its changed columns
type patchBody[P any] interface {
	*P
	service.Patch
}

// SingletonHandler serves a one-row resource (about, privacy policy,
// company info). P is the body bound on PUT.
type SingletonHandler[T, R, P any, PP patchBody[P]] struct {
	service service.SingletonService[T, R]
	detail  string
	updated string
}

// NewSingletonHandler creates a SingletonHandler; label names the
// resource in response messages, e.g. "關於我們".
func NewSingletonHandler[T, R, P any, PP patchBody[P]](s service.SingletonService[T, R], label string) *SingletonHandler[T, R, P, PP] {
	return &SingletonHandler[T, R, P, PP]{
		service: s,
		detail:  "獲取" + label + "成功",
		updated: label + "更新成功",
	}
}

// Get godoc
// @Summary      取得頁面內容
// @Tags         pages
// @Produce      json
// @Param        Accept-Language  header  string  false  "zh, zh-TW, zh-CN 或 en"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /about [get]
// @Router       /privacy-policy [get]
// @Router       /company-info [get]
func (h *SingletonHandler[T, R, P, PP]) Get(c *gin.Context) {
	row, err := h.service.Get(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.detail, row)
}

// GetAdmin godoc
// @Summary      取得頁面原始中英文內容
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /about/admin [get]
// @Router       /privacy-policy/admin [get]
// @Router       /company-info/admin [get]
func (h *SingletonHandler[T, R, P, PP]) GetAdmin(c *gin.Context) {
	row, err := h.service.GetAdmin(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.detail, row)
}

// Update godoc
// @Summary      更新頁面內容
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /about [put]
// @Router       /privacy-policy [put]
// @Router       /company-info [put]
func (h *SingletonHandler[T, R, P, PP]) Update(c *gin.Context) {
	req := PP(new(P))
	if !bindJSON(c, req) {
		return
	}

	row, err := h.service.Update(c.Request.Context(), actor(c), req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.updated, row)
}
