package handler

import (
	"github.com/gin-gonic/gin"

	resp "go-course-platform/internal/transport/http/response"
)

func writeErr(c *gin.Context, err error) {
	status, body := resp.FromError(err)
	_ = c.Error(err)
	c.JSON(status, body)
}
