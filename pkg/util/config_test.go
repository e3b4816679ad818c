package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ALLOWED_ORIGINS", "MIN_ENTROPY", "MAX_PASSWORD_LENGTH", "MINIO_ENDPOINT", "LOGGING_WEBHOOK"} {
		t.Setenv(k, "")
	}

	InitConfig()

	assert.Equal(t, "8080", Config.Port)
	assert.Equal(t, []string{"*"}, Config.AllowedOrigins)
	assert.Equal(t, 60.0, Config.MinEntropy)
	assert.Equal(t, 256, Config.MaxPasswordLength)
	assert.Nil(t, Config.Minio)
	assert.Nil(t, Config.LoggingWebhook)
	assert.NotZero(t, Config.StartTime)
}

func TestInitConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("MIN_ENTROPY", "72.5")
	t.Setenv("MAX_PASSWORD_LENGTH", "nope")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_SECURE", "1")
	t.Setenv("WORDLIST_BUCKET", "")
	t.Setenv("LOGGING_WEBHOOK", "https://hooks.example/x")

	InitConfig()

	assert.Equal(t, "9000", Config.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, Config.AllowedOrigins)
	assert.Equal(t, 72.5, Config.MinEntropy)
	assert.Equal(t, 256, Config.MaxPasswordLength)

	require.NotNil(t, Config.Minio)
	assert.True(t, Config.Minio.Secure)
	assert.Equal(t, "wordlists", Config.Minio.Bucket)
	assert.Equal(t, "common-passwords.txt", Config.Minio.Object)

	require.NotNil(t, Config.LoggingWebhook)
	assert.Equal(t, "https://hooks.example/x", *Config.LoggingWebhook)
}
