package Content

import (
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceAuth "cloudysky/service/Auth"
	serviceContent "cloudysky/service/Content"

	"github.com/gin-gonic/gin"
)

// CreatePost 发帖
func CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req database.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	post, err := serviceContent.GlobalPostService.CreatePost(userID, req.Text)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "发帖成功",
		"data":    post,
	})
}

// GetPosts 帖子列表。普通用户看不到已隐藏的帖子，管理员加 include_hidden=true 可见
func GetPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	includeHidden := false
	if c.Query("include_hidden") == "true" {
		isAdmin, err := serviceAuth.GlobalUserService.IsAdministrator(userID)
		if err == nil && isAdmin {
			includeHidden = true
		}
	}

	posts, err := serviceContent.GlobalPostService.GetAllPosts(includeHidden)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": posts,
	})
}

// GetPostByID 帖子详情
func GetPostByID(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	post, err := serviceContent.GlobalPostService.GetPostByID(uint(id))
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": post,
	})
}

// GetPostsByAuthor 某用户发过的帖子
func GetPostsByAuthor(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	posts, err := serviceContent.GlobalPostService.GetPostsByAuthor(uint(authorID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": posts,
	})
}

// DeletePost 删除帖子，作者本人或管理员可删
func DeletePost(c *gin.Context) {
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

	post, err := serviceContent.GlobalPostService.GetPostByID(uint(id))
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	if post.AuthorID != userID {
		isAdmin, err := serviceAuth.GlobalUserService.IsAdministrator(userID)
		if err != nil || !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "只有作者或管理员可以删除",
			})
			return
		}
	}

	if err := serviceContent.GlobalPostService.DeletePost(uint(id)); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "删除成功",
	})
}
