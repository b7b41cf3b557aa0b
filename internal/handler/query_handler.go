package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/samarth/internal/service"
	"github.com/ashwinyue/samarth/internal/service/query"
)

// QueryHandler 问答处理器
type QueryHandler struct {
	svc *service.Services
}

// NewQueryHandler 创建问答处理器
func NewQueryHandler(svc *service.Services) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// getUserID 获取用户ID
// 请求体里的 user_id 优先，否则用认证中间件注入的
func getUserID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	if id, exists := c.Get("user_id"); exists {
		if userID, ok := id.(string); ok {
			return userID
		}
	}
	return ""
}

// Ask 处理自然语言问答
// 管道内部吸收所有错误，响应总是 200，置信度反映质量
func (h *QueryHandler) Ask(c *gin.Context) {
	var req query.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "question is required")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		BadRequest(c, "question must not be empty")
		return
	}

	resp := h.svc.Query.ProcessQuery(c.Request.Context(), req.Question, getUserID(c, req.UserID))
	c.JSON(http.StatusOK, resp)
}

// ListDatasets 列出可用数据集
func (h *QueryHandler) ListDatasets(c *gin.Context) {
	datasets, err := h.svc.Query.ListDatasets()
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, datasets)
}

// RecentQueries 列出最近的问答记录
func (h *QueryHandler) RecentQueries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	logs, err := h.svc.Query.RecentQueries(limit)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, logs)
}
