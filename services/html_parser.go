package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jirabacklog/models"
	"jirabacklog/utils"
)

// Jira の HTML エクスポートの構造
const (
	IssueTableID   = "issuetable"
	headerRowClass = "rowHeader"
	issueRowClass  = "issuerow"
	columnIDAttr   = "data-id"
)

// 個別の抽出ルールを持つ列識別子
const (
	ColumnIssueKey       = "issuekey"
	ColumnSummary        = "summary"
	ColumnSubtasks       = "subtasks"
	ColumnStatus         = "status"
	ColumnStatusCategory = "statusCategory"
)

// 文字化けした「£」（Windows-1252 経由の UTF-8）を Σ に置き換える
const (
	mojibakePound = "\u00c2\u00a3"
	sigma         = "\u03a3"
)

// これらのセル値は「値なし」として扱います
var emptyCellValues = map[string]struct{}{
	"":           {},
	"&nbsp;":     {},
	"Unresolved": {},
	"Unassigned": {},
}

type cellExtractor func(b *models.IssueBuilder, column string, cell *goquery.Selection)

// 列識別子ごとの抽出ルール。ここにない列は extractGeneric で処理します。
var columnExtractors = map[string]cellExtractor{
	ColumnIssueKey:       extractIssueKey,
	ColumnSummary:        extractSummary,
	ColumnSubtasks:       extractSubtasks,
	ColumnStatus:         extractSpanText,
	ColumnStatusCategory: extractSpanText,
}

// ParseResult は HTML テーブルの解析結果です
type ParseResult struct {
	Columns []string
	Issues  []models.Issue
}

// HTMLParser は Jira の課題一覧 HTML からイシューを抽出します
type HTMLParser struct {
	tableID string
}

// NewHTMLParser は新しい HTML パーサーを作成します
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{tableID: IssueTableID}
}

// Parse は HTML を読み込み、イシューテーブルの全行を抽出します。
// テーブルが存在しない場合は *MissingTableError を返します。
func (p *HTMLParser) Parse(r io.Reader) (*ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("HTML解析エラー: %w", err)
	}

	table := doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == p.tableID
	}).First()
	if table.Length() == 0 {
		return nil, &MissingTableError{TableID: p.tableID}
	}

	columns := resolveColumns(table)
	utils.LogInfo("%d 列を検出しました", len(columns))

	rows := table.Find("tbody").First().Find("tr." + issueRowClass)
	issues := make([]models.Issue, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		issues = append(issues, extractRow(columns, row))
	})

	utils.LogInfo("%d 件のイシューを解析しました", len(issues))
	return &ParseResult{Columns: columns, Issues: issues}, nil
}

// ヘッダー行の th から列識別子を左から順に取得
func resolveColumns(table *goquery.Selection) []string {
	headerRow := table.Find("thead").First().Find("tr." + headerRowClass).First()

	columns := make([]string, 0)
	headerRow.Find("th").Each(func(_ int, th *goquery.Selection) {
		columns = append(columns, th.AttrOr(columnIDAttr, ""))
	})
	return columns
}

// 1行分のセルを列識別子に従って抽出。ヘッダー数を超えるセルは無視します。
func extractRow(columns []string, row *goquery.Selection) models.Issue {
	builder := models.NewIssueBuilder()

	row.Find("td").EachWithBreak(func(idx int, cell *goquery.Selection) bool {
		if idx >= len(columns) {
			return false
		}

		column := columns[idx]
		extract, ok := columnExtractors[column]
		if !ok {
			extract = extractGeneric
		}
		extract(builder, column, cell)
		return true
	})

	return builder.Build()
}

// issuekey 列は key と url の2フィールドになる
func extractIssueKey(b *models.IssueBuilder, _ string, cell *goquery.Selection) {
	key, url := "", ""
	if link := cell.Find("a.issue-link").First(); link.Length() > 0 {
		key = strings.TrimSpace(link.Text())
		url = link.AttrOr("href", "")
	}

	b.Set(models.FieldKey, models.StringValue(key))
	b.Set(models.FieldURL, models.StringValue(url))
}

// 親課題のパンくず（span.parentIssue）は要約に含めない
func extractSummary(b *models.IssueBuilder, column string, cell *goquery.Selection) {
	paragraph := cell.Find("p").First()
	if paragraph.Length() == 0 {
		b.Set(column, models.StringValue(strippedText(cell)))
		return
	}

	paragraph = paragraph.Clone()
	paragraph.Find("span.parentIssue").First().Remove()
	b.Set(column, models.StringValue(strippedText(paragraph)))
}

func extractSubtasks(b *models.IssueBuilder, column string, cell *goquery.Selection) {
	b.Set(column, models.ListValue(splitSubtaskKeys(strippedText(cell))))
}

// status / statusCategory はセル内の最初の span のテキスト
func extractSpanText(b *models.IssueBuilder, column string, cell *goquery.Selection) {
	text := ""
	if span := cell.Find("span").First(); span.Length() > 0 {
		text = strippedText(span)
	}
	b.Set(column, models.StringValue(text))
}

func extractGeneric(b *models.IssueBuilder, column string, cell *goquery.Selection) {
	b.Set(column, normalizeCellText(strippedText(cell)))
}

// splitSubtaskKeys はカンマ区切りのサブタスクキーを分割します
func splitSubtaskKeys(text string) []string {
	keys := make([]string, 0)
	for _, part := range strings.Split(text, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// normalizeCellText は汎用列のテキストを整形し、空を表す値を「値なし」に変換します
func normalizeCellText(text string) models.FieldValue {
	text = strings.ReplaceAll(text, "\u00a0", "")
	text = strings.ReplaceAll(text, mojibakePound, sigma)

	if _, ok := emptyCellValues[text]; ok {
		return models.AbsentValue()
	}
	// 抽出後もマークアップが文字列として残っているセル
	if strings.HasPrefix(text, "<em>") && strings.HasSuffix(text, "</em>") {
		return models.AbsentValue()
	}

	return models.StringValue(text)
}
