package handler

import (
	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidStatus = "無效的狀態值"
	msgMissingID     = "缺少 ID 參數"
)

// messages are the success messages of one resource
type messages struct {
	Created string
	List    string
	Detail  string
	Updated string
	Deleted string
	Sorted  string
}

func messagesFor(label string) messages {
	return messages{
		Created: label + "創建成功",
		List:    "獲取" + label + "列表成功",
		Detail:  "獲取" + label + "詳情成功",
		Updated: label + "更新成功",
		Deleted: label + "刪除成功",
		Sorted:  label + "排序更新成功",
	}
}

// bindJSON binds the body into req and renders a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		common.Fail(c, common.BindingError(err))
		return false
	}
	return true
}

// pathID returns the :id parameter and renders a 400 when it is blank
func pathID(c *gin.Context) (string, bool) {
	id, ok := ginutil.ParamID(c, "id")
	if !ok {
		common.Fail(c, common.BadRequest(msgMissingID))
	}
	return id, ok
}

// listParams reads page, limit, categoryId, query, status and language.
// An unknown status renders a 400.
func listParams(c *gin.Context) (service.ListParams, bool) {
	params := service.ListParams{
		Page:       ginutil.QueryInt(c, "page", domain.DefaultPage),
		Limit:      ginutil.QueryInt(c, "limit", domain.DefaultLimit),
		CategoryID: ginutil.QueryString(c, "categoryId"),
		Query:      ginutil.QueryString(c, "query"),
		Language:   ginutil.QueryString(c, "language"),
	}
	if raw := ginutil.QueryString(c, "status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			common.Fail(c, common.BadRequest(msgInvalidStatus))
			return params, false
		}
		params.Status = status
	}
	return params, true
}

func actor(c *gin.Context) domain.Actor {
	return middleware.GetActor(c)
}
