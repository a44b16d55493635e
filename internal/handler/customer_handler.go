package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service service.CustomerService
	msg     messages
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service, msg: messagesFor("合作客戶")}
}

// Create godoc
// @Summary      新增合作客戶
// @Description  新客戶排在最後
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CreateCustomerRequest  true  "合作客戶"
// @Success      201   {object}  common.Response{result=domain.Customer}
// @Failure      400   {object}  common.Response
// @Failure      401   {object}  common.Response
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req domain.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, h.msg.Created, customer)
}

// List godoc
// @Summary      合作客戶列表
// @Description  依排序由小到大，不分頁
// @Tags         customers
// @Produce      json
// @Param        Accept-Language  header  string  false  "zh, zh-TW, zh-CN 或 en"
// @Success      200  {object}  common.Response{result=[]domain.CustomerResponse}
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, customers)
}

// ListAdmin godoc
// @Summary      管理員合作客戶列表
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response{result=[]domain.Customer}
// @Failure      401  {object}  common.Response
// @Router       /customers/admin [get]
func (h *CustomerHandler) ListAdmin(c *gin.Context) {
	customers, err := h.service.ListAdmin(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.List, customers)
}

// Get godoc
// @Summary      合作客戶詳情
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "客戶 ID"
// @Success      200  {object}  common.Response{result=domain.CustomerResponse}
// @Failure      404  {object}  common.Response
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, customer)
}

// GetAdmin godoc
// @Summary      管理員合作客戶詳情
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "客戶 ID"
// @Success      200  {object}  common.Response{result=domain.Customer}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /customers/admin/{id} [get]
func (h *CustomerHandler) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.service.GetAdmin(c.Request.Context(), id)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Detail, customer)
}

// Sort godoc
// @Summary      更新合作客戶排序
// @Description  所有排序在同一個交易中寫入；任何 ID 不存在時整批不變
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.SortRequest  true  "排序"
// @Success      200   {object}  common.Response{result=[]domain.Customer}
// @Failure      400   {object}  common.Response
// @Failure      404   {object}  common.Response
// @Router       /customers/sort [put]
func (h *CustomerHandler) Sort(c *gin.Context) {
	var req domain.SortRequest
	if !bindJSON(c, &req) {
		return
	}

	customers, err := h.service.Reorder(c.Request.Context(), actor(c), req.Orders)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Sorted, customers)
}

// Update godoc
// @Summary      更新合作客戶
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "客戶 ID"
// @Param        body  body      domain.UpdateCustomerRequest  true  "合作客戶"
// @Success      200   {object}  common.Response{result=domain.Customer}
// @Failure      400   {object}  common.Response
// @Failure      404   {object}  common.Response
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Update(c.Request.Context(), actor(c), id, &req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.OK(c, h.msg.Updated, customer)
}

// Delete godoc
// @Summary      刪除合作客戶
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "客戶 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
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
