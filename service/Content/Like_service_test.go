package Content

import (
	"errors"
	"testing"

	"cloudysky/database"
)

// TestLike 测试点赞的存在性校验和唯一性约束
func TestLike(t *testing.T) {
	db := setupTestDB(t)
	service := NewLikeService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	bob := createTestUser(t, db, "bob", database.RoleSerf)
	post := createTestPost(t, db, alice.ID, "第一个帖子")
	comment := createTestComment(t, db, bob.ID, post.ID, "第一条评论")

	tests := []struct {
		name       string
		userID     uint
		targetType string
		targetID   uint
		wantErr    error
	}{
		{
			name:       "点赞帖子成功",
			userID:     bob.ID,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    nil,
		},
		{
			name:       "重复点赞同一帖子失败",
			userID:     bob.ID,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    database.ErrConstraintViolation,
		},
		{
			name:       "同一用户点赞评论成功",
			userID:     bob.ID,
			targetType: database.TargetComment,
			targetID:   comment.ID,
			wantErr:    nil,
		},
		{
			name:       "另一用户点赞同一帖子成功",
			userID:     alice.ID,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    nil,
		},
		{
			name:       "点赞不存在的帖子失败",
			userID:     bob.ID,
			targetType: database.TargetPost,
			targetID:   99999,
			wantErr:    database.ErrNotFound,
		},
		{
			name:       "不存在的用户点赞失败",
			userID:     99999,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    database.ErrNotFound,
		},
		{
			name:       "未知目标类型失败",
			userID:     bob.ID,
			targetType: "article",
			targetID:   post.ID,
			wantErr:    database.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			like, err := service.Like(tt.userID, tt.targetType, tt.targetID)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("Like() 期望返回错误，但没有")
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("错误类型不匹配: 得到 %v, 期望 %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Like() 意外返回错误: %v", err)
				return
			}
			if like == nil || like.ID == 0 {
				t.Error("点赞成功但没有返回持久化记录")
			}
		})
	}
}

// TestUnlikeThenRelike 取消点赞后允许再次点赞
func TestUnlikeThenRelike(t *testing.T) {
	db := setupTestDB(t)
	service := NewLikeService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	post := createTestPost(t, db, alice.ID, "帖子")

	if _, err := service.Like(alice.ID, database.TargetPost, post.ID); err != nil {
		t.Fatalf("首次点赞失败: %v", err)
	}

	if err := service.Unlike(alice.ID, database.TargetPost, post.ID); err != nil {
		t.Fatalf("取消点赞失败: %v", err)
	}

	// 取消不存在的点赞
	if err := service.Unlike(alice.ID, database.TargetPost, post.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("重复取消点赞期望 ErrNotFound, 得到: %v", err)
	}

	// 重新点赞必须成功，软删除残留不能占用唯一索引
	if _, err := service.Like(alice.ID, database.TargetPost, post.ID); err != nil {
		t.Errorf("取消后再次点赞失败: %v", err)
	}
}

// TestCountLikes 点赞计数
func TestCountLikes(t *testing.T) {
	db := setupTestDB(t)
	service := NewLikeService(db)

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	bob := createTestUser(t, db, "bob", database.RoleSerf)
	post := createTestPost(t, db, alice.ID, "帖子")

	for _, u := range []uint{alice.ID, bob.ID} {
		if _, err := service.Like(u, database.TargetPost, post.ID); err != nil {
			t.Fatalf("点赞失败: %v", err)
		}
	}

	count, err := service.CountLikes(database.TargetPost, post.ID)
	if err != nil {
		t.Fatalf("计数失败: %v", err)
	}
	if count != 2 {
		t.Errorf("点赞数不匹配: 得到 %v, 期望 2", count)
	}
}
