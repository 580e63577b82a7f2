package main

import (
	"flag"
	"fmt"
	"os"

	"jirabacklog/config"
	"jirabacklog/services"
	"jirabacklog/utils"
)

func main() {
	inputJSON := flag.String("input", "", "変換済みJSONファイルのパス（指定しない場合は環境変数から取得）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	flag.Parse()

	if *help {
		printHelp()
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}
	if *inputJSON != "" {
		cfg.OutputJSON = *inputJSON
	}

	doc, err := services.LoadDocument(cfg.OutputJSON)
	if err != nil {
		utils.LogError("JSONの読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	planner := services.NewSprintPlanner(cfg)
	report := planner.Report(doc.Issues)

	utils.LogInfo("スプリント集計: %s (%d 件のイシュー)", cfg.OutputJSON, len(doc.Issues))
	for _, stats := range report {
		utils.LogInfo("%s: 合計=%d, Epic=%d, Story=%d, Subtask=%d, 完了=%d, ポイント=%d",
			stats.Name, stats.Total, stats.Epics, stats.Stories, stats.Subtasks, stats.Done, stats.Points)
	}
	utils.LogInfo("未割り当て: %d 件", len(planner.UnassignedIssues(doc.Issues)))
}

func printHelp() {
	fmt.Printf(`
スプリント集計ツール

使用方法:
  %s [オプション]

オプション:
  -input ファイル      変換済みのJSON
  -help               このヘルプを表示する

環境変数:
  JIRA_BACKLOG_JSON       JSONファイルパス (デフォルト: %s)
  JIRA_SPRINT_FIELD       スプリントのフィールドID (デフォルト: customfield_10020)
  JIRA_STORY_POINT_FIELD  ストーリーポイントのフィールドID (デフォルト: customfield_10016)
  JIRA_DONE_KEYWORD       完了とみなすステータスに含まれる文字列 (デフォルト: done)
`, os.Args[0], config.DefaultOutputJSON)
}
