package services

import (
	"encoding/csv"
	"os"

	"jirabacklog/models"
	"jirabacklog/utils"
)

// CSVProcessor は抽出したイシューを CSV として書き出します
type CSVProcessor struct{}

// NewCSVProcessor は新しいCSVプロセッサーを作成します
func NewCSVProcessor() *CSVProcessor {
	return &CSVProcessor{}
}

// CSVHeaders は全イシューのフィールド名を初出順に並べた列一覧を返します
func (p *CSVProcessor) CSVHeaders(issues []models.Issue) []string {
	seen := make(map[string]bool)
	headers := make([]string, 0)
	for _, issue := range issues {
		for _, field := range issue.Fields() {
			if seen[field.Name] {
				continue
			}
			seen[field.Name] = true
			headers = append(headers, field.Name)
		}
	}
	return headers
}

// WriteIssuesCSV はイシュー一覧を CSV ファイルに書き出します。
// リスト値は ", " 区切りで連結し、値なしは空セルになります。
func (p *CSVProcessor) WriteIssuesCSV(path string, issues []models.Issue) error {
	utils.LogInfo("CSVファイル '%s' を作成します", path)

	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "CSVファイル作成", Path: path, Err: err}
	}
	defer file.Close()

	headers := p.CSVHeaders(issues)

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return &IOError{Op: "ヘッダー書き込み", Path: path, Err: err}
	}

	for _, issue := range issues {
		row := make([]string, len(headers))
		for i, header := range headers {
			if value, ok := issue.Get(header); ok {
				row[i] = value.Text()
			}
		}
		if err := writer.Write(row); err != nil {
			return &IOError{Op: "行書き込み", Path: path, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &IOError{Op: "CSV書き込み完了", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "CSVファイル保存", Path: path, Err: err}
	}

	utils.LogInfo("CSV書き込み完了: %d 行", len(issues))
	return nil
}
