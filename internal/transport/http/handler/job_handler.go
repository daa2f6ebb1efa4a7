package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/domain"
	"go-job-board/internal/service"
	mdw "go-job-board/internal/transport/http/middleware"
	resp "go-job-board/internal/transport/http/response"
)

type JobHandler struct {
	svc *service.JobService
}

func NewJobHandler(svc *service.JobService) *JobHandler { return &JobHandler{svc: svc} }

type createJobIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var in createJobIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "title and description are required"))
		return
	}
	job, err := h.svc.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in.Title, in.Description)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OKMsg("Job posted successfully", job))
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusOK, resp.OKMsg("No job listings available.", []domain.Job{}))
		return
	}
	c.JSON(http.StatusOK, resp.OK(jobs))
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(job))
}
