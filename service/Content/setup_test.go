package Content

import (
	"testing"

	"cloudysky/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库（SQLite 内存库），迁移全部表
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}

	err = db.AutoMigrate(
		&database.User{},
		&database.BlockReason{},
		&database.Post{},
		&database.Comment{},
		&database.Media{},
		&database.Like{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

// createTestUser 创建测试用户
func createTestUser(t *testing.T, db *gorm.DB, nickname, role string) *database.User {
	user := &database.User{
		Nickname:     nickname,
		PasswordHash: "测试哈希",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// createTestPost 创建测试帖子
func createTestPost(t *testing.T, db *gorm.DB, authorID uint, text string) *database.Post {
	post := &database.Post{
		AuthorID: authorID,
		Text:     text,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("创建测试帖子失败: %v", err)
	}
	return post
}

// createTestComment 创建测试评论
func createTestComment(t *testing.T, db *gorm.DB, authorID, postID uint, text string) *database.Comment {
	comment := &database.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("创建测试评论失败: %v", err)
	}
	return comment
}

// countRows 统计某模型的行数（含软删除残留，用于检查孤儿行）
func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	var count int64
	q := db.Unscoped().Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("统计行数失败: %v", err)
	}
	return count
}
