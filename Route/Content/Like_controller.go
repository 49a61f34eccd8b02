package Content

import (
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceContent "cloudysky/service/Content"

	"github.com/gin-gonic/gin"
)

// LikeTarget 点赞帖子或评论，重复点赞返回409
func LikeTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req database.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	like, err := serviceContent.GlobalLikeService.Like(userID, req.TargetType, req.TargetID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "点赞成功",
		"data":    like,
	})
}

// UnlikeTarget 取消点赞
func UnlikeTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req database.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	if err := serviceContent.GlobalLikeService.Unlike(userID, req.TargetType, req.TargetID); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "已取消点赞",
	})
}

// CountLikes 某对象的点赞数
func CountLikes(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	targetType := c.Param("type")
	if targetType != database.TargetPost && targetType != database.TargetComment {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的目标类型",
		})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	count, err := serviceContent.GlobalLikeService.CountLikes(targetType, uint(targetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"target_type": targetType,
			"target_id":   targetID,
			"count":       count,
		},
	})
}
