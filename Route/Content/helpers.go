package Content

import (
	"errors"
	"net/http"

	"cloudysky/database"

	"github.com/gin-gonic/gin"
)

// statusForError 服务层错误分类映射到HTTP状态码
func statusForError(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, database.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID 从上下文取当前用户ID，未认证时写响应并返回 false
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "用户未认证",
		})
		return 0, false
	}
	return userID.(uint), true
}
