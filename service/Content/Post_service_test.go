package Content

import (
	"errors"
	"testing"
	"time"

	"cloudysky/database"
)

// TestCreatePost 作者必须存在
func TestCreatePost(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)

	tests := []struct {
		name     string
		authorID uint
		text     string
		wantErr  error
	}{
		{
			name:     "正常发帖",
			authorID: alice.ID,
			text:     "你好世界",
			wantErr:  nil,
		},
		{
			name:     "作者不存在",
			authorID: 99999,
			text:     "无主帖子",
			wantErr:  database.ErrNotFound,
		},
		{
			name:     "内容为空",
			authorID: alice.ID,
			text:     "",
			wantErr:  database.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := service.CreatePost(tt.authorID, tt.text)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("错误类型不匹配: 得到 %v, 期望 %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("CreatePost() 意外返回错误: %v", err)
				return
			}
			if post.ID == 0 {
				t.Error("帖子没有生成ID")
			}
			if post.CreatedAt.IsZero() {
				t.Error("帖子没有创建时间")
			}
		})
	}
}

// TestDeletePostCascades 删除帖子必须级联删除评论、媒体、点赞，
// 包括评论自己的媒体和点赞，不留孤儿行
func TestDeletePostCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	bob := createTestUser(t, db, "bob", database.RoleSerf)

	post := createTestPost(t, db, alice.ID, "将被删除的帖子")
	other := createTestPost(t, db, alice.ID, "保留的帖子")
	comment := createTestComment(t, db, bob.ID, post.ID, "帖子下的评论")
	otherComment := createTestComment(t, db, bob.ID, other.ID, "另一个帖子的评论")

	// 帖子和评论各挂一条媒体、一条点赞
	for _, target := range []struct {
		targetType string
		targetID   uint
	}{
		{database.TargetPost, post.ID},
		{database.TargetComment, comment.ID},
	} {
		media := &database.Media{
			FilePath:   "uploads/x.bin",
			SizeBytes:  10,
			UploadedAt: time.Now(),
			UploaderID: bob.ID,
			TargetType: target.targetType,
			TargetID:   target.targetID,
		}
		if err := db.Create(media).Error; err != nil {
			t.Fatalf("创建测试媒体失败: %v", err)
		}
		like := &database.Like{
			UserID:     bob.ID,
			TargetType: target.targetType,
			TargetID:   target.targetID,
		}
		if err := db.Create(like).Error; err != nil {
			t.Fatalf("创建测试点赞失败: %v", err)
		}
	}

	if err := service.DeletePost(post.ID); err != nil {
		t.Fatalf("删除帖子失败: %v", err)
	}

	if n := countRows(t, db, &database.Post{}, "id = ?", post.ID); n != 0 {
		t.Errorf("帖子仍然存在: %d 行", n)
	}
	if n := countRows(t, db, &database.Comment{}, "post_id = ?", post.ID); n != 0 {
		t.Errorf("帖子的评论成为孤儿: %d 行", n)
	}
	if n := countRows(t, db, &database.Like{}, "target_type = ? AND target_id = ?", database.TargetPost, post.ID); n != 0 {
		t.Errorf("帖子的点赞成为孤儿: %d 行", n)
	}
	if n := countRows(t, db, &database.Media{}, "target_type = ? AND target_id = ?", database.TargetPost, post.ID); n != 0 {
		t.Errorf("帖子的媒体成为孤儿: %d 行", n)
	}
	if n := countRows(t, db, &database.Like{}, "target_type = ? AND target_id = ?", database.TargetComment, comment.ID); n != 0 {
		t.Errorf("评论的点赞成为孤儿: %d 行", n)
	}
	if n := countRows(t, db, &database.Media{}, "target_type = ? AND target_id = ?", database.TargetComment, comment.ID); n != 0 {
		t.Errorf("评论的媒体成为孤儿: %d 行", n)
	}

	// 无关内容不受影响
	if n := countRows(t, db, &database.Post{}, "id = ?", other.ID); n != 1 {
		t.Error("无关帖子被误删")
	}
	if n := countRows(t, db, &database.Comment{}, "id = ?", otherComment.ID); n != 1 {
		t.Error("无关评论被误删")
	}

	// 删除不存在的帖子
	if err := service.DeletePost(99999); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("删除不存在的帖子期望 ErrNotFound, 得到: %v", err)
	}
}

// TestGetPostsByAuthor 按作者过滤帖子
func TestGetPostsByAuthor(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	bob := createTestUser(t, db, "bob", database.RoleSerf)
	p1 := createTestPost(t, db, alice.ID, "alice的帖子1")
	p2 := createTestPost(t, db, alice.ID, "alice的帖子2")
	createTestPost(t, db, bob.ID, "bob的帖子")

	posts, err := service.GetPostsByAuthor(alice.ID)
	if err != nil {
		t.Fatalf("按作者查询失败: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("帖子数不匹配: 得到 %d, 期望 2", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != alice.ID {
			t.Errorf("返回了其他作者的帖子: %d", p.ID)
		}
		if p.ID != p1.ID && p.ID != p2.ID {
			t.Errorf("返回了预期之外的帖子: %d", p.ID)
		}
	}

	// 没有帖子的作者返回空列表
	empty, err := service.GetPostsByAuthor(99999)
	if err != nil {
		t.Fatalf("按作者查询失败: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("无帖子作者应返回空列表, 得到 %d 条", len(empty))
	}
}

// TestGetAllPostsHiddenFilter 普通列表不含已隐藏的帖子
func TestGetAllPostsHiddenFilter(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	visible := createTestPost(t, db, alice.ID, "可见帖子")
	hidden := createTestPost(t, db, alice.ID, "隐藏帖子")
	if err := db.Model(&database.Post{}).Where("id = ?", hidden.ID).Update("is_hidden", true).Error; err != nil {
		t.Fatalf("设置隐藏失败: %v", err)
	}

	posts, err := service.GetAllPosts(false)
	if err != nil {
		t.Fatalf("获取帖子列表失败: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != visible.ID {
		t.Errorf("普通列表应只含可见帖子, 得到 %d 条", len(posts))
	}

	all, err := service.GetAllPosts(true)
	if err != nil {
		t.Fatalf("获取帖子列表失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("管理员列表应含全部帖子, 得到 %d 条", len(all))
	}
}
