package Auth

import (
	"errors"
	"fmt"

	"cloudysky/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GlobalUserService 全局 UserService 实例
var GlobalUserService UserService

// UserService 用户服务接口
type UserService interface {
	CreateUser(req database.RegisterRequest) (*database.User, error)
	CreateUserWithRole(req database.AdminCreateUserRequest) (*database.User, error)
	Authenticate(nickname, password string) (*database.User, error)
	GetUserByNickname(nickname string) (*database.User, error)
	GetUserByID(id uint) (*database.User, error)

	// IsAdministrator 授权判定：隐藏/取消隐藏前由调用方检查
	IsAdministrator(userID uint) (bool, error)

	// UpdateAvatar 更新头像引用（文件已由存储层保存）
	UpdateAvatar(userID uint, avatarPath string) error

	// DeleteUser 删除用户并级联删除其帖子/评论/点赞/媒体，不可恢复
	DeleteUser(userID uint) error
}

// 用户服务实现
type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) (UserService, error) {

	if db == nil {
		return nil, errors.New("数据库连接不能为空")
	}

	userService := &userService{db}
	GlobalUserService = userService
	return userService, nil
}

// HashPassword 生成密码哈希
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword 校验密码
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser 注册普通用户，昵称唯一
func (s *userService) CreateUser(req database.RegisterRequest) (*database.User, error) {
	return s.createUser(req.Nickname, req.Password, database.RoleSerf, req.Bio)
}

// CreateUserWithRole 管理员创建用户，可指定角色
func (s *userService) CreateUserWithRole(req database.AdminCreateUserRequest) (*database.User, error) {
	return s.createUser(req.Nickname, req.Password, req.Role, req.Bio)
}

func (s *userService) createUser(nickname, password, role, bio string) (*database.User, error) {
	var existingUser database.User
	err := s.db.Where("nickname = ?", nickname).First(&existingUser).Error
	if err == nil {
		return nil, fmt.Errorf("%w: 昵称已存在", database.ErrConstraintViolation)
	}
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &database.User{
		Nickname:     nickname,
		PasswordHash: hashedPassword,
		Role:         role,
		Bio:          bio,
	}
	err = s.db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: 昵称已存在", database.ErrConstraintViolation)
		}
		return nil, err
	}

	return user, nil
}

// Authenticate 校验昵称和密码，成功返回用户
func (s *userService) Authenticate(nickname, password string) (*database.User, error) {
	user, err := s.GetUserByNickname(nickname)
	if err != nil {
		return nil, err
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, errors.New("昵称或密码错误")
	}
	return user, nil
}

// GetUserByNickname 根据昵称获取用户
func (s *userService) GetUserByNickname(nickname string) (*database.User, error) {
	var user database.User
	if err := s.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 用户 %s", database.ErrNotFound, nickname)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 根据ID获取用户
func (s *userService) GetUserByID(id uint) (*database.User, error) {
	var user database.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 用户 %d", database.ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// IsAdministrator 判断用户是否为管理员
func (s *userService) IsAdministrator(userID uint) (bool, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	return user.Role == database.RoleAdmin, nil
}

// UpdateAvatar 更新头像引用
func (s *userService) UpdateAvatar(userID uint, avatarPath string) error {
	result := s.db.Model(&database.User{}).Where("id = ?", userID).Update("avatar", avatarPath)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: 用户 %d", database.ErrNotFound, userID)
	}
	return nil
}

// DeleteUser 删除用户及其全部内容。
// 多态引用无法靠数据库外键级联，按依赖顺序在一个事务里清理：
// 先删用户帖子/评论的点赞和媒体，再删评论、帖子，最后删用户本身。
// 其他内容上指向该用户的 hidden_by 置空，隐藏状态保留。
// 级联只清理数据库行；存储中的文件不在事务内，留给存储层单独回收。
func (s *userService) DeleteUser(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user database.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 用户 %d", database.ErrNotFound, userID)
			}
			return err
		}

		// 用户自己发出的点赞和上传的媒体
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&database.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("uploader_id = ?", userID).Delete(&database.Media{}).Error; err != nil {
			return err
		}

		// 用户的评论（挂在任何帖子下）及其子项
		var commentIDs []uint
		if err := tx.Model(&database.Comment{}).Where("author_id = ?", userID).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if err := deleteTargetChildren(tx, database.TargetComment, commentIDs); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("author_id = ?", userID).Delete(&database.Comment{}).Error; err != nil {
			return err
		}

		// 用户的帖子：先清理帖子下所有评论（包括他人的）及其子项
		var postIDs []uint
		if err := tx.Model(&database.Post{}).Where("author_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			var postCommentIDs []uint
			if err := tx.Model(&database.Comment{}).Where("post_id IN ?", postIDs).Pluck("id", &postCommentIDs).Error; err != nil {
				return err
			}
			if err := deleteTargetChildren(tx, database.TargetComment, postCommentIDs); err != nil {
				return err
			}
			if err := tx.Unscoped().Where("post_id IN ?", postIDs).Delete(&database.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := deleteTargetChildren(tx, database.TargetPost, postIDs); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("author_id = ?", userID).Delete(&database.Post{}).Error; err != nil {
			return err
		}

		// 该用户作为隐藏操作者的引用置空
		if err := tx.Model(&database.Post{}).Where("hidden_by_id = ?", userID).Update("hidden_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&database.Comment{}).Where("hidden_by_id = ?", userID).Update("hidden_by_id", nil).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&database.User{}, userID).Error
	})
}

// deleteTargetChildren 删除指向一批帖子/评论的点赞和媒体
func deleteTargetChildren(tx *gorm.DB, targetType string, targetIDs []uint) error {
	if len(targetIDs) == 0 {
		return nil
	}
	if err := tx.Unscoped().Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Delete(&database.Like{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Delete(&database.Media{}).Error
}
