package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"uniadmin/pkg/jwt"
	"uniadmin/pkg/response"
)

// MustGetClaims 从 Gin 上下文中安全提取 JWT Claims。
// 如果 JWT 中间件未正确注入 claims，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return nil, false
	}
	return claims, true
}

// MustParseID 解析路径中的整数主键，失败时写入 400 响应
func MustParseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.CodeInvalidParam, name+" 必须为正整数")
		return 0, false
	}
	return id, true
}
