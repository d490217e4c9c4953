package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-course-platform/internal/domain"
	"go-course-platform/internal/service"
	mdw "go-course-platform/internal/transport/http/middleware"
	resp "go-course-platform/internal/transport/http/response"
)

type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

type enrollIn struct {
	CourseID string `json:"courseId" binding:"required"`
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var in enrollIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, domain.Wrap(domain.CodeInvalidInput, "invalid request body", err))
		return
	}
	uid := c.GetString(mdw.KeyUserID)
	e, err := h.enrollments.Enroll(c.Request.Context(), uid, in.CourseID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"enrollmentId": e.ID, "status": e.Status}))
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	list, err := h.enrollments.ListForUser(c.Request.Context(), uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"items": list, "total": len(list)}))
}

func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	if err := h.enrollments.Cancel(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id"), "status": domain.EnrollmentCancelled}))
}

func (h *EnrollmentHandler) Complete(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	if err := h.enrollments.Complete(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id"), "status": domain.EnrollmentCompleted}))
}
