package Content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloudysky/database"

	"gorm.io/gorm"
)

type ModerationServiceInterface interface {
	HidePost(actorID uint, postID uint, reasonCode string) error
	HideComment(actorID uint, commentID uint, reasonCode string) error
	UnhidePost(actorID uint, postID uint) error
	UnhideComment(actorID uint, commentID uint) error

	CreateBlockReason(req database.CreateBlockReasonRequest) (*database.BlockReason, error)
	GetAllBlockReasons() ([]database.BlockReason, error)
	DeleteBlockReason(id uint) error
}

var GlobalModerationService ModerationServiceInterface

type ModerationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewModerationService(db *gorm.DB) ModerationServiceInterface {
	service := &ModerationService{
		db:  db,
		now: time.Now,
	}
	GlobalModerationService = service
	return service
}

// requireAdmin 校验操作者是管理员
func (s *ModerationService) requireAdmin(actorID uint) error {
	var actor database.User
	if err := s.db.First(&actor, actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 用户 %d", database.ErrNotFound, actorID)
		}
		return err
	}
	if actor.Role != database.RoleAdmin {
		return fmt.Errorf("%w: 只有管理员可以执行此操作", database.ErrPermissionDenied)
	}
	return nil
}

// hide 设置隐藏状态。重复隐藏允许，换一个原因会直接覆盖原因、
// 操作者和时间戳（没有历史审计）。model 传 &database.Post{} 或 &database.Comment{}。
func (s *ModerationService) hide(actorID uint, model interface{}, targetID uint, reasonCode string) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	var reason database.BlockReason
	if err := s.db.Where("code = ?", reasonCode).First(&reason).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 屏蔽原因 %s", database.ErrNotFound, reasonCode)
		}
		return err
	}

	result := s.db.Model(model).Where("id = ?", targetID).Updates(map[string]interface{}{
		"is_hidden":        true,
		"hidden_reason_id": reason.ID,
		"hidden_by_id":     actorID,
		"hidden_at":        s.now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: 目标 %d", database.ErrNotFound, targetID)
	}
	return nil
}

// unhide 取消隐藏并清空三个辅助字段。
// 隐藏字段只在 is_hidden 为 true 时有意义，一并清空保持一致。
func (s *ModerationService) unhide(actorID uint, model interface{}, targetID uint) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	result := s.db.Model(model).Where("id = ?", targetID).Updates(map[string]interface{}{
		"is_hidden":        false,
		"hidden_reason_id": nil,
		"hidden_by_id":     nil,
		"hidden_at":        nil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: 目标 %d", database.ErrNotFound, targetID)
	}
	return nil
}

// HidePost 隐藏帖子
func (s *ModerationService) HidePost(actorID uint, postID uint, reasonCode string) error {
	return s.hide(actorID, &database.Post{}, postID, reasonCode)
}

// HideComment 隐藏评论
func (s *ModerationService) HideComment(actorID uint, commentID uint, reasonCode string) error {
	return s.hide(actorID, &database.Comment{}, commentID, reasonCode)
}

// UnhidePost 取消隐藏帖子
func (s *ModerationService) UnhidePost(actorID uint, postID uint) error {
	return s.unhide(actorID, &database.Post{}, postID)
}

// UnhideComment 取消隐藏评论
func (s *ModerationService) UnhideComment(actorID uint, commentID uint) error {
	return s.unhide(actorID, &database.Comment{}, commentID)
}

// CreateBlockReason 创建屏蔽原因，code 唯一
func (s *ModerationService) CreateBlockReason(req database.CreateBlockReasonRequest) (*database.BlockReason, error) {
	reason := &database.BlockReason{
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.db.Create(reason).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, fmt.Errorf("%w: 原因代码 %s 已存在", database.ErrConstraintViolation, req.Code)
		}
		return nil, err
	}
	return reason, nil
}

// GetAllBlockReasons 获取全部屏蔽原因，按 code 排序
func (s *ModerationService) GetAllBlockReasons() ([]database.BlockReason, error) {
	var reasons []database.BlockReason
	err := s.db.Order("code ASC").Find(&reasons).Error
	return reasons, err
}

// DeleteBlockReason 删除屏蔽原因。即使仍被引用也会成功：
// 引用它的帖子/评论 hidden_reason_id 置空，is_hidden 保持不变，
// 内容的隐藏状态不因原因丢失而改变。
func (s *ModerationService) DeleteBlockReason(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reason database.BlockReason
		if err := tx.First(&reason, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 屏蔽原因 %d", database.ErrNotFound, id)
			}
			return err
		}

		if err := tx.Model(&database.Post{}).Where("hidden_reason_id = ?", id).Update("hidden_reason_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&database.Comment{}).Where("hidden_reason_id = ?", id).Update("hidden_reason_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&database.BlockReason{}, id).Error
	})
}
