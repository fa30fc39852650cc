package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRE", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("EMAIL_SERVICE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpire)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, "console", cfg.EmailService)
	assert.Equal(t, "0 18 * * *", cfg.ReminderCron)
	assert.False(t, cfg.CheckEmailDomain)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "MONGO")
	t.Setenv("JWT_EXPIRE", "2h")
	t.Setenv("JWT_COOKIE_EXPIRE_DAYS", "7")
	t.Setenv("CORS_ORIGINS", "http://a.com, http://b.com,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")

	cfg := Load()

	assert.Equal(t, "mongo", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 7*24*60*60, cfg.CookieMaxAge())
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.CheckEmailDomain)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "production default secret",
			mutate:  func(c *Config) { c.Env = "production"; c.JWTSecret = "changeme" },
			wantErr: "JWT_SECRET must be set in production",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.DBDriver = "mysql" },
			wantErr: `unknown DB_DRIVER "mysql"`,
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.StorageBackend = "s3"; c.S3Bucket = "" },
			wantErr: "AWS_S3_BUCKET is required",
		},
		{
			name:    "smtp without host",
			mutate:  func(c *Config) { c.EmailService = "smtp"; c.SMTPHost = "" },
			wantErr: "SMTP_HOST is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				JWTSecret:      "secret",
				DBDriver:       "postgres",
				StorageBackend: "local",
				EmailService:   "console",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
