package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	CatalogPath   string
	SessionSecret string
	GinMode       string
	GeminiAPIKey  string
	DoshaModelURL string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "dietveda.db"
	}

	catalogPath := strings.TrimSpace(os.Getenv("CATALOG_PATH"))
	if catalogPath == "" {
		catalogPath = "data/dishes_dataset.csv"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "dietveda-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	geminiAPIKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	doshaModelURL := strings.TrimSpace(os.Getenv("DOSHA_MODEL_URL"))

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		CatalogPath:   catalogPath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		GeminiAPIKey:  geminiAPIKey,
		DoshaModelURL: doshaModelURL,
	}
}
