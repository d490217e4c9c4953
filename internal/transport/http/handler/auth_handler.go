package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-course-platform/internal/core/auth"
	"go-course-platform/internal/domain"
	"go-course-platform/internal/service"
	mdw "go-course-platform/internal/transport/http/middleware"
	resp "go-course-platform/internal/transport/http/response"
)

type AuthHandler struct {
	accounts *service.AccountService
	jwter    *auth.JWTer
}

func NewAuthHandler(accounts *service.AccountService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwter: jwter}
}

type registerIn struct {
	Name      string `json:"name" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email"`
	RawSecret string `json:"rawSecret" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, domain.Wrap(domain.CodeInvalidInput, "invalid request body", err))
		return
	}
	id, err := h.accounts.Register(c.Request.Context(), in.Name, in.Email, in.RawSecret)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"userId": id}))
}

type loginIn struct {
	Email     string `json:"email" binding:"required,email"`
	RawSecret string `json:"rawSecret" binding:"required"`
}

type loginOut struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, domain.Wrap(domain.CodeInvalidInput, "invalid request body", err))
		return
	}
	uid, err := h.accounts.Verify(c.Request.Context(), in.Email, in.RawSecret)
	if err != nil {
		writeErr(c, err)
		return
	}
	token, exp, err := h.jwter.Issue(uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(loginOut{Token: token, ExpiresAt: exp}))
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	u, err := h.accounts.Get(c.Request.Context(), uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": u.ID, "name": u.Name, "email": u.Email}))
}
