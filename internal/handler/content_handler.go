package handler

import (
	"context"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// ContentService is the method set shared by the news, blog, case and
// product services. M is the stored row, L the public list item, D the
// public detail, C and U the create and update bodies.
type ContentService[M, L, D, C, U any] interface {
	Create(ctx context.Context, actor domain.Actor, req *C) (*M, error)
	List(ctx context.Context, loc i18n.Locale, params service.ListParams) (*domain.Page[L], error)
	ListAdmin(ctx context.Context, params service.ListParams) (*domain.Page[M], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*D, error)
	GetAdmin(ctx context.Context, id string) (*M, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *U) (*M, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

// ContentHandler handles HTTP requests for one paginated content resource
type ContentHandler[M, L, D, C, U any] struct {
	service ContentService[M, L, D, C, U]
	msg     messages
}

// NewsHandler serves /news
type NewsHandler = ContentHandler[domain.News, domain.NewsResponse, domain.NewsResponse, domain.CreateNewsRequest, domain.UpdateNewsRequest]

// BlogHandler serves /blogs
type BlogHandler = ContentHandler[domain.Blog, domain.BlogResponse, domain.BlogResponse, domain.CreateBlogRequest, domain.UpdateBlogRequest]

// CaseHandler serves /cases
type CaseHandler = ContentHandler[domain.Case, domain.CaseResponse, domain.CaseResponse, domain.CreateCaseRequest, domain.UpdateCaseRequest]

// ProductHandler serves /services
type ProductHandler = ContentHandler[domain.Service, domain.ServiceSummary, domain.ServiceDetail, domain.CreateServiceRequest, domain.UpdateServiceRequest]

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(s service.NewsService) *NewsHandler {
	return &NewsHandler{service: s, msg: messagesFor("新聞")}
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(s service.BlogService) *BlogHandler {
	return &BlogHandler{service: s, msg: messagesFor("部落格")}
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(s service.CaseService) *CaseHandler {
	return &CaseHandler{service: s, msg: messagesFor("案例")}
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s, msg: messagesFor("產品服務")}
}

// Create godoc
// @Summary      新增內容
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Router       /news [post]
// @Router       /blogs [post]
// @Router       /cases [post]
// @Router       /services [post]
func (h *ContentHandler[M, L, D, C, U]) Create(c *gin.Context) {
	req := new(C)
	if !bindJSON(c, req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, h.msg.Created, item)
}

// List godoc
// @Summary      公開內容列表
// @Description  依 Accept-Language 回傳單一語言，僅含 Active 且該語言顯示的資料
// @Tags         content
// @Produce      json
// @Param        Accept-Language  header  string  false  "zh, zh-TW, zh-CN 或 en"
// @Param        page        query  int     false  "頁碼（默認 1）"
// @Param        limit       query  int     false  "每頁數量（默認 25）"
// @Param        categoryId  query  string  false  "分類 ID"
// @Param        query       query  string  false  "搜尋關鍵字"
// @Success      200  {object}  common.Response
// @Router       /news [get]
// @Router       /blogs [get]
// @Router       /cases [get]
// @Router       /services [get]
func (h *ContentHandler[M, L, D, C, U]) List(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), middleware.GetLocale(c), params)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, page)
}

// ListAdmin godoc
// @Summary      管理員內容列表
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        page        query  int     false  "頁碼"
// @Param        limit       query  int     false  "每頁數量"
// @Param        categoryId  query  string  false  "分類 ID"
// @Param        query       query  string  false  "搜尋關鍵字"
// @Param        status      query  string  false  "狀態篩選"  Enums(Active, Draft, Closed)
// @Param        language    query  string  false  "語言篩選（zh 或 en）"
// @Success      200  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Router       /news/admin [get]
// @Router       /blogs/admin [get]
// @Router       /cases/admin [get]
// @Router       /services/admin [get]
func (h *ContentHandler[M, L, D, C, U]) ListAdmin(c *gin.Context) {
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
// @Summary      公開內容詳情
// @Tags         content
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news/{id} [get]
// @Router       /blogs/{id} [get]
// @Router       /cases/{id} [get]
// @Router       /services/{id} [get]
func (h *ContentHandler[M, L, D, C, U]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, item)
}

// GetAdmin godoc
// @Summary      管理員內容詳情
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news/admin/{id} [get]
// @Router       /blogs/admin/{id} [get]
// @Router       /cases/admin/{id} [get]
// @Router       /services/admin/{id} [get]
func (h *ContentHandler[M, L, D, C, U]) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.GetAdmin(c.Request.Context(), id)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, item)
}

// Update godoc
// @Summary      更新內容
// @Description  只更新請求中出現的欄位
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news/{id} [put]
// @Router       /blogs/{id} [put]
// @Router       /cases/{id} [put]
// @Router       /services/{id} [put]
func (h *ContentHandler[M, L, D, C, U]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := new(U)
	if !bindJSON(c, req) {
		return
	}

	item, err := h.service.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Updated, item)
}

// Delete godoc
// @Summary      刪除內容
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /news/{id} [delete]
// @Router       /blogs/{id} [delete]
// @Router       /cases/{id} [delete]
// @Router       /services/{id} [delete]
func (h *ContentHandler[M, L, D, C, U]) Delete(c *gin.Context) {
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
