package Content

import (
	"io"
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceContent "cloudysky/service/Content"

	"github.com/gin-gonic/gin"
)

// UploadMedia 上传文件并挂到帖子或评论上（multipart表单：file, target_type, target_id）
func UploadMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetType := c.PostForm("target_type")
	if targetType != database.TargetPost && targetType != database.TargetComment {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的目标类型",
		})
		return
	}

	targetID, err := strconv.ParseUint(c.PostForm("target_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的目标ID",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "缺少文件: " + err.Error(),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "读取文件失败: " + err.Error(),
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "读取文件失败: " + err.Error(),
		})
		return
	}

	media, err := serviceContent.GlobalMediaService.UploadMedia(userID, targetType, uint(targetID), fileHeader.Filename, data)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "上传成功",
		"data":    media,
	})
}

// GetMediaByTarget 某帖子/评论的媒体列表
func GetMediaByTarget(c *gin.Context) {
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

	items, err := serviceContent.GlobalMediaService.GetMediaByTarget(targetType, uint(targetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": items,
	})
}

// GetUserStats 某用户最近N天的活跃度统计（默认7天）
func GetUserStats(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "无效的天数",
			})
			return
		}
	}

	stats, err := serviceContent.GlobalStatsService.UserStats(uint(userID), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": stats,
	})
}
