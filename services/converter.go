package services

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"jirabacklog/config"
	"jirabacklog/models"
	"jirabacklog/utils"
)

// Converter は Jira の HTML エクスポートを JSON に変換します
type Converter struct {
	config  *config.Config
	parser  *HTMLParser
	csvProc *CSVProcessor
	now     utils.Clock
}

// NewConverter は新しい変換サービスを作成します。clock が nil の場合は実時間を使います。
func NewConverter(cfg *config.Config, parser *HTMLParser, csvProc *CSVProcessor, clock utils.Clock) *Converter {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &Converter{
		config:  cfg,
		parser:  parser,
		csvProc: csvProc,
		now:     clock,
	}
}

// Convert は inputPath の HTML を読み込み、分類済みの JSON を outputPath に書き出します。
// テーブルが見つからない場合は *MissingTableError を返し、出力ファイルは作成しません。
func (c *Converter) Convert(inputPath, outputPath string) (*models.Document, error) {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "HTML → JSON 変換")

	utils.LogInfo("HTMLファイル '%s' を読み込みます", inputPath)
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, &IOError{Op: "HTML読み込み", Path: inputPath, Err: err}
	}

	result, err := c.parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	doc := BuildDocument(result.Issues, c.now())

	if err := WriteDocument(outputPath, doc); err != nil {
		return nil, err
	}

	utils.LogInfo("JSONを書き出しました: %s", outputPath)
	utils.LogInfo("  - Epic: %d 件", doc.Summary.Epics)
	utils.LogInfo("  - Story: %d 件", doc.Summary.Stories)
	utils.LogInfo("  - Subtask: %d 件", doc.Summary.Subtasks)
	utils.LogInfo("  - その他: %d 件", doc.Summary.Other)

	return doc, nil
}

// Run は設定されたパスで変換を実行し、CSV 出力が指定されていれば CSV も書き出します
func (c *Converter) Run() (*models.Document, error) {
	doc, err := c.Convert(c.config.InputHTML, c.config.OutputJSON)
	if err != nil {
		return nil, err
	}

	if c.config.OutputCSV != "" {
		if err := c.csvProc.WriteIssuesCSV(c.config.OutputCSV, doc.Issues); err != nil {
			return doc, fmt.Errorf("CSV出力エラー: %w", err)
		}
	}

	return doc, nil
}
