package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-job-board/internal/core/auth"
	"go-job-board/internal/transport/http/handler"
	mdw "go-job-board/internal/transport/http/middleware"
)

type Deps struct {
	Auth        *handler.AuthHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	JWTer       *auth.JWTer
	Blocklist   auth.Blocklist
	UploadDir   string // 非空时以 /uploads 静态目录对外提供附件下载
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查与指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// 公开接口
	r.POST("/register", d.Auth.Register)
	r.POST("/login", d.Auth.Login)
	r.GET("/jobs", d.Job.List)
	r.GET("/jobs/:id", d.Job.Get)

	// 需要有效且未注销的令牌
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer, d.Blocklist))
	authed.GET("/logout", d.Auth.Logout)
	authed.POST("/jobs", d.Job.Create)
	authed.POST("/jobs/:id/apply", d.Application.Apply)
	authed.GET("/applications", d.Application.ListMine)

	return r
}
