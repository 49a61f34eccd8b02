package Content

import (
	"errors"
	"fmt"
	"strings"

	"cloudysky/database"

	"gorm.io/gorm"
)

type LikeServiceInterface interface {
	Like(userID uint, targetType string, targetID uint) (*database.Like, error)
	Unlike(userID uint, targetType string, targetID uint) error
	CountLikes(targetType string, targetID uint) (int64, error)
}

var GlobalLikeService LikeServiceInterface

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) LikeServiceInterface {
	service := &LikeService{
		db: db,
	}
	GlobalLikeService = service
	return service
}

// Like 点赞一个帖子或评论。同一用户对同一对象的重复点赞
// 由 (user_id, target_type, target_id) 唯一索引原子拒绝，不做先查后插。
func (s *LikeService) Like(userID uint, targetType string, targetID uint) (*database.Like, error) {
	var count int64
	if err := s.db.Model(&database.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: 用户 %d", database.ErrNotFound, userID)
	}

	exists, err := targetExists(s.db, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s %d", database.ErrNotFound, targetType, targetID)
	}

	like := &database.Like{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if err := s.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, fmt.Errorf("%w: 重复点赞", database.ErrConstraintViolation)
		}
		return nil, err
	}
	return like, nil
}

// Unlike 取消点赞。彻底删除，之后允许再次点赞
func (s *LikeService) Unlike(userID uint, targetType string, targetID uint) error {
	result := s.db.Unscoped().
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&database.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: 点赞记录", database.ErrNotFound)
	}
	return nil
}

// CountLikes 统计某对象的点赞数
func (s *LikeService) CountLikes(targetType string, targetID uint) (int64, error) {
	var count int64
	err := s.db.Model(&database.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}
