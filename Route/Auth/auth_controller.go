package Auth

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"cloudysky/database"
	serviceAuth "cloudysky/service/Auth"
	serviceContent "cloudysky/service/Content"

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

// Register 注册新用户，角色固定为普通用户
func Register(c *gin.Context) {
	var req database.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	user, err := serviceAuth.GlobalUserService.CreateUser(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, database.ErrConstraintViolation) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"data":    user.ToResponse(),
	})
}

// Login 登录，成功返回JWT令牌
func Login(c *gin.Context) {
	var req database.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	user, err := serviceAuth.GlobalUserService.Authenticate(req.Nickname, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "昵称或密码错误",
		})
		return
	}

	token, err := serviceAuth.GenerateToken(user.ID, user.Nickname, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "生成令牌失败",
		})
		return
	}

	c.JSON(http.StatusOK, database.LoginResponse{
		Message: "登录成功",
		Token:   token,
		User:    user.ToResponse(),
	})
}

// GetMe 当前用户信息
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "用户未认证",
		})
		return
	}

	user, err := serviceAuth.GlobalUserService.GetUserByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": user.ToResponse(),
	})
}

// UpdateAvatar 上传头像（multipart表单：file）。
// 文件经存储层落盘后，用户头像字段保存返回的引用
func UpdateAvatar(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "用户未认证",
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

	path, _, err := serviceContent.GlobalFileStorage.Save(fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "保存文件失败: " + err.Error(),
		})
		return
	}

	if err := serviceAuth.GlobalUserService.UpdateAvatar(userID.(uint), path); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "头像已更新",
		"data":    gin.H{"avatar": path},
	})
}

// AdminCreateUser 管理员创建用户，可指定角色
func AdminCreateUser(c *gin.Context) {
	var req database.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "参数错误: " + err.Error(),
		})
		return
	}

	user, err := serviceAuth.GlobalUserService.CreateUserWithRole(req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建成功",
		"data":    user.ToResponse(),
	})
}

// AdminDeleteUser 删除用户及其全部内容，不可恢复
func AdminDeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的ID",
		})
		return
	}

	if err := serviceAuth.GlobalUserService.DeleteUser(uint(id)); err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "用户及其内容已删除",
	})
}
