package Content

import (
	"errors"
	"fmt"

	"cloudysky/database"

	"gorm.io/gorm"
)

type PostServiceInterface interface {
	CreatePost(authorID uint, text string) (*database.Post, error)
	GetPostByID(id uint) (*database.Post, error)
	GetAllPosts(includeHidden bool) ([]database.Post, error)
	GetPostsByAuthor(authorID uint) ([]database.Post, error)
	DeletePost(id uint) error
}

var GlobalPostService PostServiceInterface

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) PostServiceInterface {
	service := &PostService{
		db: db,
	}
	GlobalPostService = service
	return service
}

// CreatePost 发帖，作者必须存在
func (s *PostService) CreatePost(authorID uint, text string) (*database.Post, error) {
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

	post := &database.Post{
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostByID 根据ID获取帖子
func (s *PostService) GetPostByID(id uint) (*database.Post, error) {
	var post database.Post
	err := s.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 帖子 %d", database.ErrNotFound, id)
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts 获取帖子列表，普通浏览不含已隐藏的帖子
func (s *PostService) GetAllPosts(includeHidden bool) ([]database.Post, error) {
	var posts []database.Post
	query := s.db.Order("created_at DESC")
	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// GetPostsByAuthor 获取某作者的帖子
func (s *PostService) GetPostsByAuthor(authorID uint) ([]database.Post, error) {
	var posts []database.Post
	err := s.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// DeletePost 删除帖子并级联删除其评论、媒体、点赞。
// 评论自己的媒体和点赞也一并删除，事务内完成，不留孤儿行。
func (s *PostService) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post database.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 帖子 %d", database.ErrNotFound, id)
			}
			return err
		}

		var commentIDs []uint
		if err := tx.Model(&database.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if err := deleteTargetChildren(tx, database.TargetComment, commentIDs); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&database.Comment{}).Error; err != nil {
			return err
		}
		if err := deleteTargetChildren(tx, database.TargetPost, []uint{id}); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&database.Post{}, id).Error
	})
}
