package config

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// BackupDatabase runs pg_dump inside the database container and writes the
// dump under ./backups. Scheduled nightly alongside the file cleanup job.
func BackupDatabase() error {
	container := GetEnvWithDefault("DB_CONTAINER_NAME", "inspection-db-1")
	password := GetEnv("POSTGRES_PASSWORD")
	user := GetEnv("POSTGRES_USER")
	dbname := GetEnv("POSTGRES_DB")

	cmd := fmt.Sprintf("PGPASSWORD=%s docker exec -i %s pg_dump -U %s %s",
		password, container, user, dbname)
	execCmd := exec.Command("bash", "-c", cmd)
	output, err := execCmd.CombinedOutput()
	if err != nil {
		Logger.Error("Database backup failed", zap.Error(err), zap.ByteString("output", output))
		return err
	}

	if err := os.MkdirAll("backups", 0755); err != nil {
		return err
	}

	fileName := fmt.Sprintf("backups/db_backup_%s.sql", time.Now().Format("2006-01-02_15-04-05"))
	if err := os.WriteFile(fileName, output, 0644); err != nil {
		Logger.Error("Failed to write database backup file", zap.Error(err))
		return err
	}

	Logger.Info("Database backup written", zap.String("file", fileName))
	return nil
}
