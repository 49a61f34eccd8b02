package Content

import (
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceContent "cloudysky/service/Content"

	"github.com/gin-gonic/gin"
)

// 以下接口都挂在 AdminMiddleware 之后，服务层仍会再校验一次角色

// HidePost 隐藏帖子
func HidePost(c *gin.Context) {
	hideTarget(c, database.TargetPost)
}

// HideComment 隐藏评论
func HideComment(c *gin.Context) {
	hideTarget(c, database.TargetComment)
}

func hideTarget(c *gin.Context, targetType string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	var req database.HideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	if targetType == database.TargetPost {
		err = serviceContent.GlobalModerationService.HidePost(userID, uint(id), req.ReasonCode)
	} else {
		err = serviceContent.GlobalModerationService.HideComment(userID, uint(id), req.ReasonCode)
	}
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "已隐藏",
	})
}

// UnhidePost 取消隐藏帖子
func UnhidePost(c *gin.Context) {
	unhideTarget(c, database.TargetPost)
}

// UnhideComment 取消隐藏评论
func UnhideComment(c *gin.Context) {
	unhideTarget(c, database.TargetComment)
}

func unhideTarget(c *gin.Context, targetType string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	if targetType == database.TargetPost {
		err = serviceContent.GlobalModerationService.UnhidePost(userID, uint(id))
	} else {
		err = serviceContent.GlobalModerationService.UnhideComment(userID, uint(id))
	}
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "已取消隐藏",
	})
}

// CreateBlockReason 创建屏蔽原因
func CreateBlockReason(c *gin.Context) {
	var req database.CreateBlockReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	reason, err := serviceContent.GlobalModerationService.CreateBlockReason(req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建成功",
		"data":    reason,
	})
}

// GetBlockReasons 屏蔽原因列表
func GetBlockReasons(c *gin.Context) {
	reasons, err := serviceContent.GlobalModerationService.GetAllBlockReasons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": reasons,
	})
}

// DeleteBlockReason 删除屏蔽原因，引用它的内容保持隐藏但原因变为未知
func DeleteBlockReason(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	if err := serviceContent.GlobalModerationService.DeleteBlockReason(uint(id)); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "删除成功",
	})
}
