package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	RawReportDir string
	OutputDir    string

	SourceProvider string
	SheetName      string
	FetchMax       int

	DriveCredentialsFile string
	DriveRawFolderID     string
	DriveArchiveFolderID string

	IMAPHost     string
	IMAPPort     int
	IMAPSecure   bool
	IMAPUser     string
	IMAPPassword string
	IMAPMailbox  string

	SupabaseURL      string
	SupabaseKey      string
	SinkTable        string
	SinkTimeoutMs    int
	SinkRateLimitRPS int

	WatchIntervalSec int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		RawReportDir: getEnv("RAW_REPORT_DIR", filepath.Join(cwd, "data", "raw")),
		OutputDir:    getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SourceProvider: getEnv("SOURCE_PROVIDER", "drive"),
		SheetName:      getEnv("REPORT_SHEET_NAME", "Paid order list"),
		FetchMax:       getEnvInt("FETCH_MAX", 50),

		DriveCredentialsFile: getEnv("DRIVE_CREDENTIALS_FILE", "service_account.json"),
		DriveRawFolderID:     getEnv("DRIVE_RAW_FOLDER_ID", ""),
		DriveArchiveFolderID: getEnv("DRIVE_ARCHIVE_FOLDER_ID", ""),

		IMAPHost:     getEnv("IMAP_HOST", ""),
		IMAPPort:     getEnvInt("IMAP_PORT", 993),
		IMAPSecure:   getEnvBool("IMAP_SECURE", true),
		IMAPUser:     getEnv("IMAP_USER", ""),
		IMAPPassword: getEnv("IMAP_PASSWORD", ""),
		IMAPMailbox:  getEnv("IMAP_MAILBOX", "INBOX"),

		SupabaseURL:      getEnv("SUPABASE_URL", ""),
		SupabaseKey:      getEnv("SUPABASE_KEY", ""),
		SinkTable:        getEnv("SINK_TABLE", "fact_sales2026"),
		SinkTimeoutMs:    getEnvInt("SINK_TIMEOUT_MS", 30000),
		SinkRateLimitRPS: getEnvInt("SINK_RATE_LIMIT_RPS", 5),

		WatchIntervalSec: getEnvInt("WATCH_INTERVAL_SEC", 300),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
