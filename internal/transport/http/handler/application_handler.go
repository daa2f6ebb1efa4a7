package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/domain"
	"go-job-board/internal/service"
	mdw "go-job-board/internal/transport/http/middleware"
	resp "go-job-board/internal/transport/http/response"
)

// CVField 简历上传的 multipart 字段名
const CVField = "CV"

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	// 附件缺失不在这里拦截：角色/职位检查优先级更高，由 service 统一排序
	var cv *service.CVUpload
	if fh, err := c.FormFile(CVField); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "CV not readable"))
			return
		}
		defer f.Close()
		cv = &service.CVUpload{Filename: fh.Filename, Data: f}
	}

	app, err := h.svc.Apply(c.Request.Context(), c.GetString(mdw.KeyUserID), c.Param("id"), cv)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OKMsg("Application submitted", app))
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), c.GetString(mdw.KeyUserID))
	if err != nil {
		writeErr(c, err)
		return
	}
	if rows == nil {
		rows = []domain.ApplicationSummary{}
	}
	c.JSON(http.StatusOK, resp.OK(rows))
}
