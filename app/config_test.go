package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	content := `PORT=4000
ENVIRONMENT=test
VERSION=1.0.0
JWT_SECRET=test-secret
CORS_ORIGIN=http://localhost:3000
POSTGRES_HOST=localhost
POSTGRES_PORT=5432
POSTGRES_USER=user
POSTGRES_PASSWORD=password
POSTGRES_DB=blogory
MAIL_HOST=smtp.example.com
MAIL_PORT=25
MAIL_USER=mailer
MAIL_PASSWORD=mailerpass
MAIL_SENDER=Blogory <no-reply@blogory.test>
RABBITMQ_HOST=localhost
RABBITMQ_PORT=5672
RABBITMQ_USER=guest
RABBITMQ_PASSWORD=guest
LIMITER_RPS=2
LIMITER_BURST=4
LIMITER_ENABLED=true
`

	path := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	cfg, err := loadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "blogory", cfg.DB.Name)

	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 25, cfg.Mail.Port)

	assert.Equal(t, "guest", cfg.RabbitMQ.User)

	assert.Equal(t, float64(2), cfg.Limiter.RPS)
	assert.Equal(t, 4, cfg.Limiter.Burst)
	assert.True(t, cfg.Limiter.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("does-not-exist.env")
	assert.Error(t, err)
}
