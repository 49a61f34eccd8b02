package Content

import (
	"fmt"

	"cloudysky/database"

	"gorm.io/gorm"
)

// targetExists 检查多态引用 (target_type, target_id) 指向的帖子/评论是否存在。
// 多态引用不是真正的外键，存在性必须由访问层自己保证。
func targetExists(db *gorm.DB, targetType string, targetID uint) (bool, error) {
	var count int64
	switch targetType {
	case database.TargetPost:
		if err := db.Model(&database.Post{}).Where("id = ?", targetID).Count(&count).Error; err != nil {
			return false, err
		}
	case database.TargetComment:
		if err := db.Model(&database.Comment{}).Where("id = ?", targetID).Count(&count).Error; err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("%w: 未知的目标类型 %q", database.ErrConstraintViolation, targetType)
	}
	return count > 0, nil
}

// deleteTargetChildren 删除指向一批帖子/评论的点赞和媒体。
// 使用 Unscoped 彻底删除，软删除残留会占用点赞唯一索引。
// 只删数据库行；媒体的底层文件不在事务内，留给存储层单独回收
// （单条删除走 DeleteMedia，会同时删文件）。
func deleteTargetChildren(tx *gorm.DB, targetType string, targetIDs []uint) error {
	if len(targetIDs) == 0 {
		return nil
	}
	if err := tx.Unscoped().Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Delete(&database.Like{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Delete(&database.Media{}).Error
}
