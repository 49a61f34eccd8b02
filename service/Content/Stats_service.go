package Content

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"cloudysky/database"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// statsCacheTTL 统计结果的缓存时间
const statsCacheTTL = 60 * time.Second

type StatsServiceInterface interface {
	BytesUploadedSince(userID uint, days int) (int64, error)
	PostCountSince(userID uint, days int) (int64, error)
	CommentCountSince(userID uint, days int) (int64, error)
	UserStats(userID uint, days int) (*database.UserStatsResponse, error)
}

var GlobalStatsService StatsServiceInterface

// StatsService 活跃度统计。统计窗口为 [now-days*24h, now)：
// 下界含、上界不含。Redis 可用时结果短暂缓存，不可用时直接查库。
type StatsService struct {
	db          *gorm.DB
	redisClient *redis.Client
	now         func() time.Time
}

func NewStatsService(db *gorm.DB, redisClient *redis.Client) StatsServiceInterface {
	service := &StatsService{
		db:          db,
		redisClient: redisClient,
		now:         time.Now,
	}
	GlobalStatsService = service
	return service
}

// window 计算统计窗口边界
func (s *StatsService) window(days int) (time.Time, time.Time) {
	upper := s.now()
	lower := upper.Add(-time.Duration(days) * 24 * time.Hour)
	return lower, upper
}

// cachedInt64 读缓存，未命中或Redis不可用时查库并回填
func (s *StatsService) cachedInt64(key string, query func() (int64, error)) (int64, error) {
	if s.redisClient != nil {
		ctx := context.Background()
		if raw, err := s.redisClient.Get(ctx, key).Result(); err == nil {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return v, nil
			}
		}
	}

	v, err := query()
	if err != nil {
		return 0, err
	}

	if s.redisClient != nil {
		ctx := context.Background()
		if err := s.redisClient.Set(ctx, key, strconv.FormatInt(v, 10), statsCacheTTL).Err(); err != nil {
			log.Printf("统计缓存写入失败: %v", err) // 降级：缓存失败不影响结果
		}
	}
	return v, nil
}

// BytesUploadedSince 某用户最近 days 天上传的字节总数。
// 只对 size_bytes 快照求和，不访问文件存储。
func (s *StatsService) BytesUploadedSince(userID uint, days int) (int64, error) {
	key := fmt.Sprintf("stats:bytes:%d:%d", userID, days)
	return s.cachedInt64(key, func() (int64, error) {
		lower, upper := s.window(days)
		var total int64
		err := s.db.Model(&database.Media{}).
			Where("uploader_id = ? AND uploaded_at >= ? AND uploaded_at < ?", userID, lower, upper).
			Select("COALESCE(SUM(size_bytes), 0)").
			Scan(&total).Error
		return total, err
	})
}

// PostCountSince 某用户最近 days 天的发帖数
func (s *StatsService) PostCountSince(userID uint, days int) (int64, error) {
	key := fmt.Sprintf("stats:posts:%d:%d", userID, days)
	return s.cachedInt64(key, func() (int64, error) {
		lower, upper := s.window(days)
		var count int64
		err := s.db.Model(&database.Post{}).
			Where("author_id = ? AND created_at >= ? AND created_at < ?", userID, lower, upper).
			Count(&count).Error
		return count, err
	})
}

// CommentCountSince 某用户最近 days 天的评论数
func (s *StatsService) CommentCountSince(userID uint, days int) (int64, error) {
	key := fmt.Sprintf("stats:comments:%d:%d", userID, days)
	return s.cachedInt64(key, func() (int64, error) {
		lower, upper := s.window(days)
		var count int64
		err := s.db.Model(&database.Comment{}).
			Where("author_id = ? AND created_at >= ? AND created_at < ?", userID, lower, upper).
			Count(&count).Error
		return count, err
	})
}

// UserStats 汇总某用户最近 days 天的活跃度
func (s *StatsService) UserStats(userID uint, days int) (*database.UserStatsResponse, error) {
	posts, err := s.PostCountSince(userID, days)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentCountSince(userID, days)
	if err != nil {
		return nil, err
	}
	bytes, err := s.BytesUploadedSince(userID, days)
	if err != nil {
		return nil, err
	}
	return &database.UserStatsResponse{
		UserID:        userID,
		Days:          days,
		PostCount:     posts,
		CommentCount:  comments,
		BytesUploaded: bytes,
	}, nil
}
