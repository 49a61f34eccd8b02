package database

import "gorm.io/gorm"

// BlockReason 屏蔽原因查找表：code 唯一，description 为人类可读解释。
// 被隐藏的帖子/评论引用它；删除原因时引用被置空，内容的隐藏状态不变。
type BlockReason struct {
	gorm.Model
	Code        string `gorm:"uniqueIndex;not null;size:32" json:"code"`
	Description string `gorm:"size:255" json:"description"`
}

// CreateBlockReasonRequest 创建屏蔽原因请求
type CreateBlockReasonRequest struct {
	Code        string `json:"code" binding:"required,max=32"`
	Description string `json:"description" binding:"required,max=255"`
}
