package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("REDIS_URL", "")

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "workwhere"
password = "secret"
dbname = "workwhere"

[reservations]
horizon_days = 14
timezone = "Europe/Madrid"

[redis]
enabled = true
url = "redis://localhost:6379/0"

[cors]
allowed_origins = ["https://intranet.example.com"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 14, cfg.Reservations.HorizonDays)
	assert.Equal(t, 3, cfg.Reservations.MaxRetries)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, []string{"https://intranet.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=db port=5433 user=workwhere password=secret dbname=workwhere sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Reservations.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")

	path := writeConfig(t, `
[database]
host = "db"
dbname = "workwhere"
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing dbname",
			content: "[database]\nhost = \"db\"\ndbname = \"\"\n",
		},
		{
			name:    "bad timezone",
			content: "[database]\nhost = \"db\"\ndbname = \"w\"\n[reservations]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "redis without url",
			content: "[database]\nhost = \"db\"\ndbname = \"w\"\n[redis]\nenabled = true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_URL", "")
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
