package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/config"
)

const Version = "Jimmy's CMS v1.0"

var backupNamePattern = regexp.MustCompile(`^backup_\d{8}_\d{6}\.sql$`)

// ExecRunner runs external tools directly, without a shell.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, env []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	return cmd.CombinedOutput()
}

type AdminService struct {
	repo      AdminRepository
	runner    CommandRunner
	publisher EventPublisher
	db        config.DBConfig
	backup    config.BackupConfig
	started   time.Time
	Now       func() time.Time
}

func NewAdminService(repo AdminRepository, runner CommandRunner, publisher EventPublisher, db config.DBConfig, backup config.BackupConfig) *AdminService {
	return &AdminService{
		repo:      repo,
		runner:    runner,
		publisher: publisher,
		db:        db,
		backup:    backup,
		started:   time.Now(),
		Now:       time.Now,
	}
}

func ValidBackupName(name string) bool {
	return backupNamePattern.MatchString(name)
}

// ListBackups returns the .sql dumps in the backup directory, newest first.
// A missing directory is an empty list.
func (s *AdminService) ListBackups(ctx context.Context) ([]domain.BackupFile, error) {
	entries, err := os.ReadDir(s.backup.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.BackupFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	backups := make([]domain.BackupFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, domain.BackupFile{
			Filename: e.Name(),
			Created:  info.ModTime().UTC(),
			Size:     info.Size(),
			Type:     "postgres",
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})
	return backups, nil
}

func (s *AdminService) connArgs() []string {
	return []string{
		"--host", s.db.Host,
		"--port", strconv.Itoa(s.db.Port),
		"--username", s.db.User,
		"--dbname", s.db.Name,
	}
}

func (s *AdminService) connEnv() []string {
	env := []string{"PGSSLMODE=" + s.db.SSLMode}
	if s.db.Password != "" {
		env = append(env, "PGPASSWORD="+s.db.Password)
	}
	return env
}

func (s *AdminService) CreateBackup(ctx context.Context, actor string) (*domain.BackupFile, error) {
	if err := os.MkdirAll(s.backup.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	name := "backup_" + s.Now().Format("20060102_150405") + ".sql"
	path := filepath.Join(s.backup.Dir, name)
	args := append(s.connArgs(), "--no-owner", "--clean", "--if-exists", "--file", path)
	if out, err := s.runner.Run(ctx, s.backup.PgDumpPath, args, s.connEnv()); err != nil {
		return nil, fmt.Errorf("backup failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	file := &domain.BackupFile{Filename: name, Created: s.Now().UTC(), Type: "postgres"}
	if info, err := os.Stat(path); err == nil {
		file.Size = info.Size()
		file.Created = info.ModTime().UTC()
	}
	publish(ctx, s.publisher, domain.EventBackupCreated, name, actor, nil)
	return file, nil
}

// RestoreBackup replays a dump produced by CreateBackup. Only names matching
// the backup pattern inside the backup directory are accepted.
func (s *AdminService) RestoreBackup(ctx context.Context, actor, filename string) error {
	if !ValidBackupName(filename) {
		return domain.Invalid("filename", "must look like backup_YYYYMMDD_HHMMSS.sql")
	}
	path := filepath.Join(s.backup.Dir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("stat backup: %w", err)
	}

	args := append(s.connArgs(), "--set", "ON_ERROR_STOP=1", "--file", path)
	if out, err := s.runner.Run(ctx, s.backup.PsqlPath, args, s.connEnv()); err != nil {
		return fmt.Errorf("restore failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	publish(ctx, s.publisher, domain.EventBackupRestored, filename, actor, nil)
	return nil
}

func (s *AdminService) SystemInfo(ctx context.Context) domain.SystemInfo {
	status := "PostgreSQL Connected"
	if err := s.repo.Ping(ctx); err != nil {
		status = "PostgreSQL Unavailable"
	}
	return domain.SystemInfo{
		Version:   Version,
		Uptime:    s.Now().Sub(s.started).Round(time.Second).String(),
		Database:  status,
		GoVersion: runtime.Version(),
		Goroutine: runtime.NumGoroutine(),
	}
}

// DatabaseConfig describes the connection without the password.
func (s *AdminService) DatabaseConfig() domain.DatabaseConfig {
	return domain.DatabaseConfig{
		Host:     s.db.Host,
		Port:     s.db.Port,
		Username: s.db.User,
		Database: s.db.Name,
		SSL:      s.db.SSLMode != "" && s.db.SSLMode != "disable",
		SSLMode:  s.db.SSLMode,
		Charset:  "UTF8",
	}
}

func (s *AdminService) AuditLog(ctx context.Context, limit int) ([]domain.ActionLogEntry, error) {
	return s.repo.ListActions(ctx, limit)
}
