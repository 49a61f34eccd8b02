package database

import "gorm.io/gorm"

// Like 点赞，目标是一个帖子或评论（target_type + target_id 多态引用）。
// (user_id, target_type, target_id) 组合唯一：同一用户对同一对象至多点赞一次，
// 重复插入由唯一索引原子拒绝，并发场景下也不会出现两次成功。
type Like struct {
	gorm.Model
	UserID     uint   `gorm:"not null;uniqueIndex:idx_like_unique" json:"user_id"`
	TargetType string `gorm:"size:8;not null;uniqueIndex:idx_like_unique;index:idx_like_target" json:"target_type"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_like_unique;index:idx_like_target" json:"target_id"`
}

// LikeRequest 点赞/取消点赞请求
type LikeRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
	TargetID   uint   `json:"target_id" binding:"required"`
}
