package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// ファイルパス
	InputHTML  string
	OutputJSON string
	OutputCSV  string

	// スプリント集計設定
	SprintField     string
	StoryPointField string
	DoneKeyword     string
}

// デフォルトの入出力ファイル
const (
	DefaultInputHTML  = "GoFast Traffic Light Automation System.html"
	DefaultOutputJSON = "jira_backlog.json"
)

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む（存在しなくてもよい）
	_ = godotenv.Load()

	config := &Config{
		InputHTML:       getEnvWithDefault("JIRA_HTML", DefaultInputHTML),
		OutputJSON:      getEnvWithDefault("JIRA_BACKLOG_JSON", DefaultOutputJSON),
		OutputCSV:       strings.TrimSpace(os.Getenv("JIRA_BACKLOG_CSV")),
		SprintField:     getEnvWithDefault("JIRA_SPRINT_FIELD", "customfield_10020"),
		StoryPointField: getEnvWithDefault("JIRA_STORY_POINT_FIELD", "customfield_10016"),
		DoneKeyword:     strings.ToLower(getEnvWithDefault("JIRA_DONE_KEYWORD", "done")),
	}

	return config, nil
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
