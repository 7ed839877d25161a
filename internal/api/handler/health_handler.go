package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uniadmin/pkg/database"
	"uniadmin/pkg/response"
)

const dbPingTimeout = 3 * time.Second

// HealthHandler 存活与数据库连通性检查
type HealthHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(db *gorm.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health 进程存活
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// DB 测试数据库连接，失败返回 503 与驱动原文
// GET /health/db
func (h *HealthHandler) DB(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db, dbPingTimeout); err != nil {
		h.logger.Warn("数据库连通性检查失败", zap.Error(err))
		response.ServiceUnavailable(c, response.CodeDBUnavailable, "数据库不可用", err.Error())
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
