package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"jirabacklog/config"
	"jirabacklog/services"
	"jirabacklog/utils"
)

func main() {
	// コマンドラインフラグの定義
	inputHTML := flag.String("input", "", "JiraからエクスポートしたHTMLファイルのパス（指定しない場合は環境変数から取得）")
	outputJSON := flag.String("output", "", "出力するJSONファイルのパス（指定しない場合は環境変数から取得）")
	outputCSV := flag.String("csv", "", "イシュー一覧をCSVでも出力する場合のパス")
	quiet := flag.Bool("quiet", false, "情報ログを出力しない")
	help := flag.Bool("help", false, "ヘルプを表示する")

	flag.Parse()

	if *help {
		printHelp()
		return
	}

	utils.SetQuiet(*quiet)
	utils.LogInfo("Jira HTML → JSON 変換ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインでパスが指定された場合、設定を上書き
	if *inputHTML != "" {
		cfg.InputHTML = *inputHTML
	}
	if *outputJSON != "" {
		cfg.OutputJSON = *outputJSON
	}
	if *outputCSV != "" {
		cfg.OutputCSV = *outputCSV
	}

	converter := services.NewConverter(cfg, services.NewHTMLParser(), services.NewCSVProcessor(), utils.SystemClock)

	doc, err := converter.Run()
	if err != nil {
		var missing *services.MissingTableError
		if errors.As(err, &missing) {
			utils.LogError("%v", err)
			utils.LogError("JSONファイルは作成されませんでした")
		} else {
			utils.LogError("変換に失敗しました: %v", err)
		}
		os.Exit(1)
	}

	utils.LogInfo("変換が完了しました: %d 件のイシュー → %s", doc.Summary.TotalIssues, cfg.OutputJSON)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
Jira HTML → JSON 変換ツール

使用方法:
  %s [オプション]

オプション:
  -input ファイル      JiraからエクスポートしたHTML
  -output ファイル     出力するJSON
  -csv ファイル        イシュー一覧をCSVでも出力する
  -quiet              情報ログを出力しない
  -help               このヘルプを表示する

環境変数:
  JIRA_HTML           入力HTMLファイルパス (デフォルト: %s)
  JIRA_BACKLOG_JSON   出力JSONファイルパス (デフォルト: %s)
  JIRA_BACKLOG_CSV    出力CSVファイルパス (デフォルト: 出力しない)

説明:
  Jiraの課題一覧（table#issuetable）をHTMLとして保存したファイルを読み込み、
  イシューを Epic / Story / Subtask / その他 に分類したJSONを出力します。
`, os.Args[0], config.DefaultInputHTML, config.DefaultOutputJSON)
}
