package Content

import (
	"errors"
	"fmt"

	"cloudysky/database"

	"gorm.io/gorm"
)

type CommentServiceInterface interface {
	CreateComment(authorID uint, postID uint, text string) (*database.Comment, error)
	GetCommentByID(id uint) (*database.Comment, error)
	GetCommentsByPost(postID uint, includeHidden bool) ([]database.Comment, error)
	DeleteComment(id uint) error
}

var GlobalCommentService CommentServiceInterface

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) CommentServiceInterface {
	service := &CommentService{
		db: db,
	}
	GlobalCommentService = service
	return service
}

// CreateComment 评论，父帖子和作者必须存在
func (s *CommentService) CreateComment(authorID uint, postID uint, text string) (*database.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: 内容不能为空", database.ErrConstraintViolation)
	}
	var count int64
	if err := s.db.Model(&database.User{}).Where("id = ?", authorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: 作者 %d", database.ErrNotFound, authorID)
	}
	if err := s.db.Model(&database.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: 帖子 %d", database.ErrNotFound, postID)
	}

	comment := &database.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentByID 根据ID获取评论
func (s *CommentService) GetCommentByID(id uint) (*database.Comment, error) {
	var comment database.Comment
	err := s.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 评论 %d", database.ErrNotFound, id)
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPost 获取某帖子下的评论，按时间正序
func (s *CommentService) GetCommentsByPost(postID uint, includeHidden bool) ([]database.Comment, error) {
	var comments []database.Comment
	query := s.db.Where("post_id = ?", postID).Order("created_at ASC")
	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}
	err := query.Find(&comments).Error
	return comments, err
}

// DeleteComment 删除评论并级联删除其媒体和点赞
func (s *CommentService) DeleteComment(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment database.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 评论 %d", database.ErrNotFound, id)
			}
			return err
		}
		if err := deleteTargetChildren(tx, database.TargetComment, []uint{id}); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&database.Comment{}, id).Error
	})
}
