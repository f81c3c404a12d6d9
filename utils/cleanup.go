package utils

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"inspection-backend/config"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// generatedFileDirs holds every directory whose contents are disposable
// build artifacts (error workbooks, inventory exports, rendered reports).
var generatedFileDirs = []string{"./public/files", "./public/reports"}

const generatedFileTTL = 7 * 24 * time.Hour

// CleanupExpiredFiles removes files under dir older than the TTL
func CleanupExpiredFiles(dir string, ttl time.Duration) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > ttl {
			if err := os.Remove(path); err != nil {
				config.Logger.Warn("Failed to delete expired file",
					zap.String("path", path), zap.Error(err))
				continue
			}
			config.Logger.Info("Deleted expired generated file", zap.String("path", path))
		}
	}
	return nil
}

// CleanupCachedListings drops the cached paginated listings so deletions of
// expired files are not served from stale cache entries.
func CleanupCachedListings(ctx context.Context, redisClient *redis.Client) {
	for _, pattern := range []string{"reports:list:*", "devices:export:*"} {
		iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := redisClient.Del(ctx, iter.Val()).Err(); err != nil {
				config.Logger.Warn("Failed to delete cache key",
					zap.String("key", iter.Val()), zap.Error(err))
			}
		}
	}
}

// RunScheduledCleanup wires the nightly cleanup of generated files and
// stale cache entries. Blocks; run it in its own goroutine.
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		for _, dir := range generatedFileDirs {
			if err := CleanupExpiredFiles(dir, generatedFileTTL); err != nil {
				config.Logger.Error("Scheduled file cleanup failed",
					zap.String("dir", dir), zap.Error(err))
			}
		}
		CleanupCachedListings(context.Background(), redisClient)
	})
	if err != nil {
		config.Logger.Error("Failed to schedule cleanup job", zap.Error(err))
		return
	}

	_, err = c.AddFunc("0 2 * * *", func() {
		if err := config.BackupDatabase(); err != nil {
			config.Logger.Error("Scheduled database backup failed", zap.Error(err))
		}
	})
	if err != nil {
		config.Logger.Error("Failed to schedule database backup job", zap.Error(err))
	}

	c.Run()
}
