package handler

import (
	"errors"
	"net/http"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// FileHandler handles admin media uploads
type FileHandler struct {
	service service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(service service.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload godoc
// @Summary      上傳檔案
// @Description  form-data 欄位名稱為 file，回傳可公開存取的 URL
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "檔案"
// @Success      201   {object}  common.Response{result=domain.UploadResponse}
// @Failure      400   {object}  common.Response
// @Failure      413   {object}  common.Response
// @Router       /files/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			common.Fail(c, common.PayloadTooLarge("檔案大小超過限制"))
		default:
			common.Fail(c, common.BadRequest("請選擇要上傳的檔案"))
		}
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), actor(c), file)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.Created(c, "檔案上傳成功", resp)
}
