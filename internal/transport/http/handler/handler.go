package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/apperr"
	resp "go-job-board/internal/transport/http/response"
)

// writeErr 统一错误出口；只透出短消息，不泄漏内部错误详情
func writeErr(c *gin.Context, err error) {
	status := apperr.Status(err)
	msg := "internal error"
	var e *apperr.Error
	if errors.As(err, &e) && e.Msg != "" {
		msg = e.Msg
	}
	c.JSON(status, resp.Error(status, msg))
}
