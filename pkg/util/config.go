package util

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

func InitConfig() {
	origins := []string{}
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var loggingWebhook *string
	if w := os.Getenv("LOGGING_WEBHOOK"); w != "" {
		loggingWebhook = &w
	}

	minioCfg := func() *minio {
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			return nil
		}
		return &minio{
			Endpoint:  endpoint,
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Secure:    os.Getenv("MINIO_SECURE") == "1",
			Bucket:    envOr("WORDLIST_BUCKET", "wordlists"),
			Object:    envOr("WORDLIST_OBJECT", "common-passwords.txt"),
		}
	}()

	minEntropy, err := strconv.ParseFloat(envOr("MIN_ENTROPY", "60"), 64)
	if err != nil {
		slog.Warn("Invalid MIN_ENTROPY, using default", "value", os.Getenv("MIN_ENTROPY"))
		minEntropy = 60
	}

	maxLen, err := strconv.Atoi(envOr("MAX_PASSWORD_LENGTH", "256"))
	if err != nil || maxLen <= 0 {
		slog.Warn("Invalid MAX_PASSWORD_LENGTH, using default", "value", os.Getenv("MAX_PASSWORD_LENGTH"))
		maxLen = 256
	}

	Config = config{
		StartTime:         time.Now().Unix(),
		Version:           envOr("VERSION", "dev"),
		Port:              envOr("PORT", "8080"),
		AllowedOrigins:    origins,
		LoggingWebhook:    loggingWebhook,
		DBPath:            os.Getenv("DB_PATH"),
		WordlistPath:      os.Getenv("WORDLIST_PATH"),
		WordlistURL:       os.Getenv("WORDLIST_URL"),
		MinEntropy:        minEntropy,
		MaxPasswordLength: maxLen,
		Minio:             minioCfg,
	}
}

var Config config

type config struct {
	StartTime         int64
	Version           string
	Port              string
	AllowedOrigins    []string
	LoggingWebhook    *string
	DBPath            string
	WordlistPath      string
	WordlistURL       string
	MinEntropy        float64
	MaxPasswordLength int
	Minio             *minio
}

type minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
	Bucket    string
	Object    string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
