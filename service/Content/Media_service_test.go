package Content

import (
	"errors"
	"os"
	"testing"
	"time"

	"cloudysky/database"
)

func setupMediaService(t *testing.T) (*MediaService, *database.User, *database.Post) {
	db := setupTestDB(t)

	storage, err := NewLocalFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	service := &MediaService{
		db:      db,
		storage: storage,
		now:     time.Now,
	}

	alice := createTestUser(t, db, "alice", database.RoleSerf)
	post := createTestPost(t, db, alice.ID, "帖子")
	return service, alice, post
}

// TestUploadMedia 上传的存在性校验
func TestUploadMedia(t *testing.T) {
	service, alice, post := setupMediaService(t)

	tests := []struct {
		name       string
		uploaderID uint
		targetType string
		targetID   uint
		wantErr    error
	}{
		{
			name:       "正常上传",
			uploaderID: alice.ID,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    nil,
		},
		{
			name:       "上传者不存在",
			uploaderID: 99999,
			targetType: database.TargetPost,
			targetID:   post.ID,
			wantErr:    database.ErrNotFound,
		},
		{
			name:       "目标不存在",
			uploaderID: alice.ID,
			targetType: database.TargetComment,
			targetID:   99999,
			wantErr:    database.ErrNotFound,
		},
		{
			name:       "未知目标类型",
			uploaderID: alice.ID,
			targetType: "article",
			targetID:   post.ID,
			wantErr:    database.ErrConstraintViolation,
		},
	}

	data := []byte("测试文件内容")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media, err := service.UploadMedia(tt.uploaderID, tt.targetType, tt.targetID, "文件.png", data)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("错误类型不匹配: 得到 %v, 期望 %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("UploadMedia() 意外返回错误: %v", err)
				return
			}
			if media.SizeBytes != int64(len(data)) {
				t.Errorf("大小快照不匹配: 得到 %v, 期望 %v", media.SizeBytes, len(data))
			}
			if _, err := os.Stat(media.FilePath); err != nil {
				t.Errorf("文件未写入存储: %v", err)
			}
		})
	}
}

// TestMediaSizeSnapshot size_bytes 在创建时记录，之后即使底层文件变化也不变
func TestMediaSizeSnapshot(t *testing.T) {
	service, alice, post := setupMediaService(t)

	data := []byte("原始内容")
	media, err := service.UploadMedia(alice.ID, database.TargetPost, post.ID, "a.txt", data)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if media.SizeBytes != int64(len(data)) {
		t.Fatalf("大小快照不匹配: 得到 %v, 期望 %v", media.SizeBytes, len(data))
	}

	// 改写底层文件，模拟存储侧的变化
	bigger := []byte("底层文件被改写成了更长的内容，数据库里的快照不应跟着变")
	if err := os.WriteFile(media.FilePath, bigger, 0644); err != nil {
		t.Fatalf("改写文件失败: %v", err)
	}

	reloaded, err := service.GetMediaByID(media.ID)
	if err != nil {
		t.Fatalf("重新读取媒体失败: %v", err)
	}
	if reloaded.SizeBytes != int64(len(data)) {
		t.Errorf("大小快照被改变: 得到 %v, 期望 %v", reloaded.SizeBytes, len(data))
	}
}

// TestDeleteMedia 删除媒体行同时删除底层文件
func TestDeleteMedia(t *testing.T) {
	service, alice, post := setupMediaService(t)

	media, err := service.UploadMedia(alice.ID, database.TargetPost, post.ID, "b.txt", []byte("x"))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	if err := service.DeleteMedia(media.ID); err != nil {
		t.Fatalf("删除媒体失败: %v", err)
	}

	if _, err := service.GetMediaByID(media.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("媒体行应已删除, 得到: %v", err)
	}
	if _, err := os.Stat(media.FilePath); !os.IsNotExist(err) {
		t.Error("底层文件应已删除")
	}
}
