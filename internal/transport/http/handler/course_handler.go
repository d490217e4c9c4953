package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-course-platform/internal/domain"
	"go-course-platform/internal/service"
	resp "go-course-platform/internal/transport/http/response"
)

type CourseHandler struct {
	catalog *service.CatalogService
}

func NewCourseHandler(catalog *service.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

type courseIn struct {
	Title       string  `json:"title" binding:"required,max=191"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor" binding:"max=64"`
	Duration    int     `json:"duration" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

func (h *CourseHandler) Create(c *gin.Context) {
	var in courseIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, domain.Wrap(domain.CodeInvalidInput, "invalid request body", err))
		return
	}
	course := &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		Instructor:  in.Instructor,
		Duration:    in.Duration,
		Price:       in.Price,
	}
	id, err := h.catalog.Create(c.Request.Context(), course)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"courseId": id}))
}

func (h *CourseHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	courses, total, err := h.catalog.List(c.Request.Context(), offset, limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"items": courses, "total": total}))
}

func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(course))
}
