package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/core/auth"
	resp "go-job-board/internal/transport/http/response"
)

const (
	KeyUserID   = "userId"
	KeyTokenJTI = "jti"
	KeyTokenExp = "tokenExp"
)

// AuthJWT 先验签，再查黑名单；被注销的令牌在任何角色判断之前就被拒绝
func AuthJWT(j *auth.JWTer, bl auth.Blocklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		revoked, err := bl.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "auth check failed"))
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "token revoked"))
			return
		}
		// 角色不从令牌带入上下文，权限一律以数据库里的当前角色为准
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyTokenJTI, claims.ID)
		var exp time.Time
		if claims.ExpiresAt != nil {
			exp = claims.ExpiresAt.Time
		}
		c.Set(KeyTokenExp, exp)
		c.Next()
	}
}
