package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles the public contact form and its admin inbox
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit godoc
// @Summary      提交聯絡表單
// @Description  儲存訊息並以背景寄送通知信；寄信失敗不影響回應
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateContactRequest  true  "聯絡表單"
// @Success      201   {object}  common.Response{result=domain.Contact}
// @Failure      400   {object}  common.Response
// @Failure      429   {object}  common.Response
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, "聯絡表單提交成功", contact)
}

// List godoc
// @Summary      聯絡表單列表
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "頁碼"
// @Param        limit  query  int     false  "每頁數量"
// @Param        query  query  string  false  "搜尋姓名、Email、電話或訊息"
// @Success      200  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Router       /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "獲取聯絡表單列表成功", page)
}

// Get godoc
// @Summary      聯絡表單詳情
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "聯絡表單 ID"
// @Success      200  {object}  common.Response{result=domain.Contact}
// @Failure      404  {object}  common.Response
// @Router       /contact/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "獲取聯絡表單成功", contact)
}

// Delete godoc
// @Summary      刪除聯絡表單
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "聯絡表單 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, "聯絡表單刪除成功", nil)
}
