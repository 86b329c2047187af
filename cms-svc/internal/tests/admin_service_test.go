package tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/mocks"
	"tapasbar-cms/cms-svc/internal/service"
	"tapasbar-cms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDB = config.DBConfig{
	Host:     "db",
	Port:     5432,
	User:     "jimmy",
	Password: "secret",
	Name:     "jimmys_cms",
	SSLMode:  "disable",
}

func newAdminService(t *testing.T, dir string) (*service.AdminService, *mocks.AdminRepository, *mocks.CommandRunner) {
	t.Helper()
	repo := mocks.NewAdminRepository(t)
	runner := mocks.NewCommandRunner(t)
	svc := service.NewAdminService(repo, runner, nil, testDB, config.BackupConfig{
		Dir:        dir,
		PgDumpPath: "pg_dump",
		PsqlPath:   "psql",
	})
	return svc, repo, runner
}

func writeBackup(t *testing.T, dir, name string, modTime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("-- dump"), 0o600))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestAdminService_ListBackups(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_dir", func(t *testing.T) {
		svc, _, _ := newAdminService(t, filepath.Join(t.TempDir(), "nope"))
		backups, err := svc.ListBackups(ctx)
		require.NoError(t, err)
		assert.Empty(t, backups)
		assert.NotNil(t, backups)
	})

	t.Run("newest_first", func(t *testing.T) {
		dir := t.TempDir()
		base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		writeBackup(t, dir, "backup_20240501_100000.sql", base)
		writeBackup(t, dir, "backup_20240503_100000.sql", base.Add(48*time.Hour))
		writeBackup(t, dir, "backup_20240502_100000.sql", base.Add(24*time.Hour))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

		svc, _, _ := newAdminService(t, dir)
		backups, err := svc.ListBackups(ctx)
		require.NoError(t, err)
		require.Len(t, backups, 3)
		assert.Equal(t, "backup_20240503_100000.sql", backups[0].Filename)
		assert.Equal(t, "backup_20240501_100000.sql", backups[2].Filename)
		assert.Equal(t, "postgres", backups[0].Type)
		assert.EqualValues(t, len("-- dump"), backups[0].Size)
	})
}

func TestAdminService_CreateBackup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	svc, _, runner := newAdminService(t, dir)
	svc.Now = func() time.Time { return time.Date(2024, 7, 14, 18, 30, 5, 0, time.UTC) }
	expectedPath := filepath.Join(dir, "backup_20240714_183005.sql")

	runner.On("Run", ctx, "pg_dump",
		mock.MatchedBy(func(args []string) bool {
			return slices.Contains(args, "--no-owner") &&
				slices.Contains(args, "jimmys_cms") &&
				args[len(args)-2] == "--file" && args[len(args)-1] == expectedPath
		}),
		mock.MatchedBy(func(env []string) bool {
			return slices.Contains(env, "PGPASSWORD=secret")
		}),
	).Return([]byte{}, nil).Once()

	file, err := svc.CreateBackup(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "backup_20240714_183005.sql", file.Filename)
	assert.True(t, service.ValidBackupName(file.Filename))
}

func TestAdminService_CreateBackupFailure(t *testing.T) {
	ctx := context.Background()
	svc, _, runner := newAdminService(t, t.TempDir())

	runner.On("Run", ctx, "pg_dump", mock.Anything, mock.Anything).
		Return([]byte("pg_dump: connection refused"), errors.New("exit status 1")).Once()

	_, err := svc.CreateBackup(ctx, "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAdminService_RestoreBackup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		filename      string
		present       bool
		prepareMocks  func(runner *mocks.CommandRunner, dir string)
		expectedError error
	}{
		{
			name:          "path_traversal",
			filename:      "../etc/passwd",
			prepareMocks:  func(runner *mocks.CommandRunner, dir string) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "shell_metacharacters",
			filename:      "backup_20240101_000000.sql; rm -rf /",
			prepareMocks:  func(runner *mocks.CommandRunner, dir string) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "missing_file",
			filename:      "backup_20240101_000000.sql",
			prepareMocks:  func(runner *mocks.CommandRunner, dir string) {},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "replays_with_psql",
			filename: "backup_20240101_000000.sql",
			present:  true,
			prepareMocks: func(runner *mocks.CommandRunner, dir string) {
				path := filepath.Join(dir, "backup_20240101_000000.sql")
				runner.On("Run", ctx, "psql",
					mock.MatchedBy(func(args []string) bool {
						return slices.Contains(args, "ON_ERROR_STOP=1") && args[len(args)-1] == path
					}),
					mock.Anything,
				).Return([]byte{}, nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dir := t.TempDir()
			if testCase.present {
				writeBackup(t, dir, testCase.filename, time.Now())
			}
			svc, _, runner := newAdminService(t, dir)
			testCase.prepareMocks(runner, dir)

			err := svc.RestoreBackup(ctx, "admin", testCase.filename)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminService_SystemInfo(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newAdminService(t, t.TempDir())

	repo.On("Ping", ctx).Return(nil).Once()
	assert.Equal(t, "PostgreSQL Connected", svc.SystemInfo(ctx).Database)

	repo.On("Ping", ctx).Return(errors.New("dial tcp: refused")).Once()
	info := svc.SystemInfo(ctx)
	assert.Equal(t, "PostgreSQL Unavailable", info.Database)
	assert.Equal(t, service.Version, info.Version)
}

func TestAdminService_DatabaseConfigHidesPassword(t *testing.T) {
	svc, _, _ := newAdminService(t, t.TempDir())
	cfg := svc.DatabaseConfig()

	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "jimmys_cms", cfg.Database)
	assert.False(t, cfg.SSL)
	assert.NotContains(t, []string{cfg.Host, cfg.Username, cfg.Database, cfg.SSLMode, cfg.Charset}, "secret")
}
