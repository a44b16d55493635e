package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for one category table
type CategoryHandler[T any] struct {
	service service.CategoryService[T]
	msg     messages
}

// NewCategoryHandler creates a CategoryHandler; label names the table
// in response messages, e.g. "新聞分類".
func NewCategoryHandler[T any](s service.CategoryService[T], label string) *CategoryHandler[T] {
	return &CategoryHandler[T]{service: s, msg: messagesFor(label)}
}

// Create godoc
// @Summary      新增分類
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CategoryRequest  true  "分類名稱"
// @Success      201   {object}  common.Response
// @Failure      400   {object}  common.Response
// @Router       /news-categories [post]
// @Router       /blog-categories [post]
// @Router       /case-categories [post]
// @Router       /service-categories [post]
func (h *CategoryHandler[T]) Create(c *gin.Context) {
	var req domain.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.service.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, h.msg.Created, category)
}

// List godoc
// @Summary      分類列表
// @Description  不分頁，依建立時間新到舊
// @Tags         categories
// @Produce      json
// @Param        Accept-Language  header  string  false  "zh, zh-TW, zh-CN 或 en"
// @Success      200  {object}  common.Response{result=[]domain.CategoryRef}
// @Router       /news-categories [get]
// @Router       /blog-categories [get]
// @Router       /case-categories [get]
// @Router       /service-categories [get]
func (h *CategoryHandler[T]) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, categories)
}

// ListAdmin godoc
// @Summary      管理員分類列表
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "頁碼"
// @Param        limit  query  int     false  "每頁數量"
// @Param        query  query  string  false  "搜尋中英文名稱"
// @Success      200  {object}  common.Response
// @Router       /news-categories/admin [get]
// @Router       /blog-categories/admin [get]
// @Router       /case-categories/admin [get]
// @Router       /service-categories/admin [get]
func (h *CategoryHandler[T]) ListAdmin(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	page, err := h.service.ListAdmin(c.Request.Context(), params)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, page)
}

// Get godoc
// @Summary      分類詳情
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "分類 ID"
// @Success      200  {object}  common.Response{result=domain.CategoryRef}
// @Failure      404  {object}  common.Response
// @Router       /news-categories/{id} [get]
// @Router       /blog-categories/{id} [get]
// @Router       /case-categories/{id} [get]
// @Router       /service-categories/{id} [get]
func (h *CategoryHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.service.Get(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, category)
}

// GetAdmin godoc
// @Summary      管理員分類詳情
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "分類 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news-categories/admin/{id} [get]
// @Router       /blog-categories/admin/{id} [get]
// @Router       /case-categories/admin/{id} [get]
// @Router       /service-categories/admin/{id} [get]
func (h *CategoryHandler[T]) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.service.GetAdmin(c.Request.Context(), id)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, category)
}

// Update godoc
// @Summary      更新分類
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "分類 ID"
// @Param        body  body      domain.CategoryRequest  true  "分類名稱"
// @Success      200   {object}  common.Response
// @Failure      400   {object}  common.Response
// @Failure      404   {object}  common.Response
// @Router       /news-categories/{id} [put]
// @Router       /blog-categories/{id} [put]
// @Router       /case-categories/{id} [put]
// @Router       /service-categories/{id} [put]
func (h *CategoryHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.service.Update(c.Request.Context(), actor(c), id, &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Updated, category)
}

// Delete godoc
// @Summary      刪除分類
// @Description  分類下仍有內容時回傳 400
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "分類 ID"
// @Success      200  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news-categories/{id} [delete]
// @Router       /blog-categories/{id} [delete]
// @Router       /case-categories/{id} [delete]
// @Router       /service-categories/{id} [delete]
func (h *CategoryHandler[T]) Delete(c *gin.Context) {
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
