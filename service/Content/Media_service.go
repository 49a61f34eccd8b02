package Content

import (
	"errors"
	"fmt"
	"time"

	"cloudysky/database"

	"gorm.io/gorm"
)

type MediaServiceInterface interface {
	UploadMedia(uploaderID uint, targetType string, targetID uint, filename string, data []byte) (*database.Media, error)
	GetMediaByID(id uint) (*database.Media, error)
	GetMediaByTarget(targetType string, targetID uint) ([]database.Media, error)
	DeleteMedia(id uint) error
}

var GlobalMediaService MediaServiceInterface

type MediaService struct {
	db      *gorm.DB
	storage FileStorage
	now     func() time.Time
}

func NewMediaService(db *gorm.DB, storage FileStorage) (MediaServiceInterface, error) {
	if storage == nil {
		return nil, errors.New("文件存储不能为空")
	}
	service := &MediaService{
		db:      db,
		storage: storage,
		now:     time.Now,
	}
	GlobalMediaService = service
	return service, nil
}

// UploadMedia 上传文件并挂到一个帖子或评论上。
// SizeBytes 在写入存储时记录一次，和数据行在同一事务内落库，
// 并发的聚合查询不会看到缺少大小的媒体行。
func (s *MediaService) UploadMedia(uploaderID uint, targetType string, targetID uint, filename string, data []byte) (*database.Media, error) {
	var count int64
	if err := s.db.Model(&database.User{}).Where("id = ?", uploaderID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: 上传者 %d", database.ErrNotFound, uploaderID)
	}

	exists, err := targetExists(s.db, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s %d", database.ErrNotFound, targetType, targetID)
	}

	path, size, err := s.storage.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("保存文件失败: %v", err)
	}

	media := &database.Media{
		FilePath:   path,
		SizeBytes:  size,
		UploadedAt: s.now(),
		UploaderID: uploaderID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if err := s.db.Create(media).Error; err != nil {
		// 落库失败时清理已写入的文件
		_ = s.storage.Remove(path)
		return nil, err
	}
	return media, nil
}

// GetMediaByID 根据ID获取媒体
func (s *MediaService) GetMediaByID(id uint) (*database.Media, error) {
	var media database.Media
	err := s.db.First(&media, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 媒体 %d", database.ErrNotFound, id)
		}
		return nil, err
	}
	return &media, nil
}

// GetMediaByTarget 获取挂在某帖子/评论上的媒体列表
func (s *MediaService) GetMediaByTarget(targetType string, targetID uint) ([]database.Media, error) {
	var items []database.Media
	err := s.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("uploaded_at ASC").Find(&items).Error
	return items, err
}

// DeleteMedia 删除媒体行和底层文件
func (s *MediaService) DeleteMedia(id uint) error {
	media, err := s.GetMediaByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Unscoped().Delete(&database.Media{}, id).Error; err != nil {
		return err
	}
	return s.storage.Remove(media.FilePath)
}
