package database

import (
	"time"

	"gorm.io/gorm"
)

// 点赞/媒体的多态目标类型标签
const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Post 帖子。隐藏字段仅在 is_hidden 为 true 时有意义，
// 取消隐藏时三个辅助字段一并清空。
type Post struct {
	gorm.Model
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Text     string `gorm:"type:text;not null" json:"text"`

	IsHidden       bool       `gorm:"index;not null;default:false" json:"is_hidden"`
	HiddenReasonID *uint      `json:"hidden_reason_id"`
	HiddenByID     *uint      `json:"hidden_by_id"`
	HiddenAt       *time.Time `json:"hidden_at"`
}

// Comment 评论，恰好属于一个帖子，随帖子级联删除
type Comment struct {
	gorm.Model
	PostID   uint   `gorm:"index;not null" json:"post_id"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Text     string `gorm:"type:text;not null" json:"text"`

	IsHidden       bool       `gorm:"index;not null;default:false" json:"is_hidden"`
	HiddenReasonID *uint      `json:"hidden_reason_id"`
	HiddenByID     *uint      `json:"hidden_by_id"`
	HiddenAt       *time.Time `json:"hidden_at"`
}

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateCommentRequest 评论请求
type CreateCommentRequest struct {
	PostID uint   `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// HideRequest 隐藏帖子/评论请求
type HideRequest struct {
	ReasonCode string `json:"reason_code" binding:"required"`
}
