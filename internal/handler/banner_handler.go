package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// BannerHandler handles HTTP requests for banners
type BannerHandler struct {
	service service.BannerService
	msg     messages
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(service service.BannerService) *BannerHandler {
	return &BannerHandler{service: service, msg: messagesFor("Banner")}
}

// Create godoc
// @Summary      新增 Banner
// @Description  新 Banner 排在最後；顯示的語言必須有對應的圖片或影片連結
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CreateBannerRequest  true  "Banner"
// @Success      201   {object}  common.Response{result=domain.Banner}
// @Failure      400   {object}  common.Response
// @Failure      401   {object}  common.Response
// @Router       /banners [post]
func (h *BannerHandler) Create(c *gin.Context) {
	var req domain.CreateBannerRequest
	if !bindJSON(c, &req) {
		return
	}

	banner, err := h.service.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, h.msg.Created, banner)
}

// List godoc
// @Summary      Banner 列表
// @Description  回傳目前語言顯示的 Banner，依排序由小到大，不分頁
// @Tags         banners
// @Produce      json
// @Param        Accept-Language  header  string  false  "zh, zh-TW, zh-CN 或 en"
// @Success      200  {object}  common.Response{result=[]domain.BannerResponse}
// @Router       /banners [get]
func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.service.List(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, banners)
}

// ListAdmin godoc
// @Summary      管理員 Banner 列表
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        language  query  string  false  "語言篩選（zh 或 en）"
// @Success      200  {object}  common.Response{result=[]domain.Banner}
// @Failure      401  {object}  common.Response
// @Router       /banners/admin [get]
func (h *BannerHandler) ListAdmin(c *gin.Context) {
	banners, err := h.service.ListAdmin(c.Request.Context(), ginutil.QueryString(c, "language"))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, banners)
}

// Get godoc
// @Summary      Banner 詳情
// @Tags         banners
// @Produce      json
// @Param        id  path  string  true  "Banner ID"
// @Success      200  {object}  common.Response{result=domain.BannerResponse}
// @Failure      404  {object}  common.Response
// @Router       /banners/{id} [get]
func (h *BannerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	banner, err := h.service.Get(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, banner)
}

// GetAdmin godoc
// @Summary      管理員 Banner 詳情
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Banner ID"
// @Success      200  {object}  common.Response{result=domain.Banner}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /banners/admin/{id} [get]
func (h *BannerHandler) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	banner, err := h.service.GetAdmin(c.Request.Context(), id)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, banner)
}

// Sort godoc
// @Summary      更新 Banner 排序
// @Description  所有排序在同一個交易中寫入；任何 ID 不存在時整批不變
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.SortRequest  true  "排序"
// @Success      200   {object}  common.Response{result=[]domain.Banner}
// @Failure      400   {object}  common.Response
// @Failure      404   {object}  common.Response
// @Router       /banners/sort [put]
func (h *BannerHandler) Sort(c *gin.Context) {
	var req domain.SortRequest
	if !bindJSON(c, &req) {
		return
	}

	banners, err := h.service.Reorder(c.Request.Context(), actor(c), req.Orders)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Sorted, banners)
}

// Update godoc
// @Summary      更新 Banner
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Banner ID"
// @Param        body  body      domain.UpdateBannerRequest  true  "Banner"
// @Success      200   {object}  common.Response{result=domain.Banner}
// @Failure      400   {object}  common.Response
// @Failure      404   {object}  common.Response
// @Router       /banners/{id} [put]
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateBannerRequest
	if !bindJSON(c, &req) {
		return
	}

	banner, err := h.service.Update(c.Request.Context(), actor(c), id, &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Updated, banner)
}

// Delete godoc
// @Summary      刪除 Banner
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Banner ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /banners/{id} [delete]
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Deleted, nil)
}
