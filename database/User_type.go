package database

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色
const (
	RoleAdmin = "admin" // 管理员，可隐藏内容
	RoleSerf  = "serf"  // 普通用户
)

// User 用户数据存储结构
type User struct {
	gorm.Model
	Nickname     string `gorm:"uniqueIndex;not null;size:40" json:"nickname"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`
	Role         string `gorm:"not null;size:8;default:'serf'" json:"role"`
	Avatar       string `gorm:"size:255" json:"avatar"`
	Bio          string `gorm:"type:text" json:"bio"`
}

// RegisterRequest 注册时候的请求结构体
type RegisterRequest struct {
	Nickname string `json:"nickname" binding:"required,min=3,max=40"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Bio      string `json:"bio"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminCreateUserRequest 管理员创建用户请求（可指定角色）
type AdminCreateUserRequest struct {
	Nickname string `json:"nickname" binding:"required,min=3,max=40"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Role     string `json:"role" binding:"required,oneof=admin serf"`
	Bio      string `json:"bio"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse 登录响应结构体
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UserStatsResponse 用户活跃度统计响应
type UserStatsResponse struct {
	UserID        uint  `json:"user_id"`
	Days          int   `json:"days"`
	PostCount     int64 `json:"post_count"`
	CommentCount  int64 `json:"comment_count"`
	BytesUploaded int64 `json:"bytes_uploaded"`
}

// ToResponse 转换为对外的用户信息
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
