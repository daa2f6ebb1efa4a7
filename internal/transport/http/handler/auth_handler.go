package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/service"
	mdw "go-job-board/internal/transport/http/middleware"
	resp "go-job-board/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// 指针字段用于区分“字段缺失”（400）和“类型不符”（422）
type registerIn struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	IsEmployer *bool   `json:"is_employer"`
}

func (in *registerIn) missing() []string {
	var fields []string
	if in.FirstName == nil {
		fields = append(fields, "first_name")
	}
	if in.LastName == nil {
		fields = append(fields, "last_name")
	}
	if in.Email == nil {
		fields = append(fields, "email")
	}
	if in.Password == nil {
		fields = append(fields, "password")
	}
	if in.IsEmployer == nil {
		fields = append(fields, "is_employer")
	}
	return fields
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.JSON(http.StatusUnprocessableEntity, resp.Error(resp.CodeInvalid, "invalid data, check data types and format"))
			return
		}
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "invalid json body"))
		return
	}
	if fields := in.missing(); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "missing fields: "+strings.Join(fields, ", ")))
		return
	}

	err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		FirstName:  *in.FirstName,
		LastName:   *in.LastName,
		Email:      *in.Email,
		Password:   *in.Password,
		IsEmployer: *in.IsEmployer,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OKMsg("User registered successfully", nil))
}

type loginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		// 绑定错误细节不外泄
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "email and password are required"))
		return
	}
	token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OKMsg("Login successful", gin.H{"token": token}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(mdw.KeyTokenJTI)
	exp, _ := c.Get(mdw.KeyTokenExp)
	expAt, _ := exp.(time.Time)

	if err := h.svc.Logout(c.Request.Context(), jti, expAt); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OKMsg("Logged out", nil))
}
