package database

import (
	"time"

	"gorm.io/gorm"
)

// Media 上传的文件，挂在一个帖子或评论上（target_type + target_id 多态引用）。
// SizeBytes 在创建时记录一次，之后不再重算，按上传者聚合流量时直接求和，
// 不需要回到文件存储。UploaderID 冗余保存上传者，免去经由帖子/评论的连接查询。
type Media struct {
	gorm.Model
	FilePath   string    `gorm:"size:255;not null" json:"file_path"`
	SizeBytes  int64     `gorm:"not null" json:"size_bytes"`
	UploadedAt time.Time `gorm:"index;not null" json:"uploaded_at"`
	UploaderID uint      `gorm:"index;not null" json:"uploader_id"`

	TargetType string `gorm:"size:8;not null;index:idx_media_target" json:"target_type"`
	TargetID   uint   `gorm:"not null;index:idx_media_target" json:"target_id"`
}
