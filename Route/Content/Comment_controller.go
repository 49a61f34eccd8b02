package Content

import (
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceAuth "cloudysky/service/Auth"
	serviceContent "cloudysky/service/Content"

	"github.com/gin-gonic/gin"
)

// CreateComment 评论一个帖子
func CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req database.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	comment, err := serviceContent.GlobalCommentService.CreateComment(userID, req.PostID, req.Text)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评论成功",
		"data":    comment,
	})
}

// GetCommentsByPost 某帖子下的评论列表
func GetCommentsByPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	includeHidden := false
	if c.Query("include_hidden") == "true" {
		isAdmin, err := serviceAuth.GlobalUserService.IsAdministrator(userID)
		if err == nil && isAdmin {
			includeHidden = true
		}
	}

	comments, err := serviceContent.GlobalCommentService.GetCommentsByPost(uint(postID), includeHidden)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": comments,
	})
}

// DeleteComment 删除评论，作者本人或管理员可删
func DeleteComment(c *gin.Context) {
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

	comment, err := serviceContent.GlobalCommentService.GetCommentByID(uint(id))
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	if comment.AuthorID != userID {
		isAdmin, err := serviceAuth.GlobalUserService.IsAdministrator(userID)
		if err != nil || !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "只有作者或管理员可以删除",
			})
			return
		}
	}

	if err := serviceContent.GlobalCommentService.DeleteComment(uint(id)); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "删除成功",
	})
}
