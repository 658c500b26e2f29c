package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "defaults fill missing sections",
			body: "env: production\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Env)
				assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
				assert.Equal(t, "SavedWords", cfg.Storage.Key)
				assert.Equal(t, "wordapp.db", cfg.Storage.SQLite.Path)
				assert.Equal(t, 1500*time.Millisecond, cfg.Quiz.AutoAdvance)
				assert.Equal(t, ":8080", cfg.HTTP.Addr)
			},
		},
		{
			name: "environment overrides file",
			body: "storage:\n  driver: memory\n",
			env:  map[string]string{"HTTP_ADDR": ":9090", "STORAGE_DRIVER": "redis", "REDIS_ADDR": "cache:6379"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9090", cfg.HTTP.Addr)
				assert.Equal(t, DriverRedis, cfg.Storage.Driver)
				assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
			},
		},
		{
			name:    "unknown driver",
			body:    "storage:\n  driver: mongo\n",
			wantErr: true,
		},
		{
			name:    "postgres requires connection settings",
			body:    "storage:\n  driver: postgres\n",
			wantErr: true,
		},
		{
			name:    "telegram requires token when enabled",
			body:    "telegram:\n  enabled: true\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(writeConfig(t, tt.body), "test")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "absent")
	require.Error(t, err)
}
