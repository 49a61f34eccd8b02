package Content

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorage 文件存储接口：接收字节流和建议文件名，
// 返回持久引用和字节数。Media 只保存引用和长度，不保存原始字节。
type FileStorage interface {
	Save(suggestedName string, data []byte) (string, int64, error)
	Remove(path string) error
}

// GlobalFileStorage 全局文件存储实例
var GlobalFileStorage FileStorage

// LocalFileStorage 本地磁盘存储实现
type LocalFileStorage struct {
	baseDir string
}

func NewLocalFileStorage(baseDir string) (*LocalFileStorage, error) {
	if baseDir == "" {
		return nil, errors.New("存储目录不能为空")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	storage := &LocalFileStorage{baseDir: baseDir}
	GlobalFileStorage = storage
	return storage, nil
}

// Save 保存文件，文件名用UUID避免冲突，保留原始扩展名
func (s *LocalFileStorage) Save(suggestedName string, data []byte) (string, int64, error) {
	name := uuid.New().String() + filepath.Ext(suggestedName)
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, err
	}
	return path, int64(len(data)), nil
}

// Remove 删除已保存的文件
func (s *LocalFileStorage) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
