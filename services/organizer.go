package services

import (
	"time"

	"jirabacklog/models"
)

// ExportDateLayout は export_date の書式です（ローカル時刻、マイクロ秒まで）
const ExportDateLayout = "2006-01-02T15:04:05.000000"

// OrganizeIssues はイシュータイプの完全一致でイシューを4つに分類します。
// Epic / Story / Subtask 以外（値なしを含む）はすべて other です。
func OrganizeIssues(issues []models.Issue) models.Organized {
	organized := models.Organized{
		Epics:    make([]models.Issue, 0),
		Stories:  make([]models.Issue, 0),
		Subtasks: make([]models.Issue, 0),
		Other:    make([]models.Issue, 0),
	}

	for _, issue := range issues {
		switch issue.IssueType() {
		case models.IssueTypeEpic:
			organized.Epics = append(organized.Epics, issue)
		case models.IssueTypeStory:
			organized.Stories = append(organized.Stories, issue)
		case models.IssueTypeSubtask:
			organized.Subtasks = append(organized.Subtasks, issue)
		default:
			organized.Other = append(organized.Other, issue)
		}
	}

	return organized
}

// Summarize は件数と出力日時を集計します
func Summarize(issues []models.Issue, organized models.Organized, exportedAt time.Time) models.Summary {
	return models.Summary{
		TotalIssues: len(issues),
		Epics:       len(organized.Epics),
		Stories:     len(organized.Stories),
		Subtasks:    len(organized.Subtasks),
		Other:       len(organized.Other),
		ExportDate:  exportedAt.Local().Format(ExportDateLayout),
	}
}

// BuildDocument は抽出済みのイシューから出力ドキュメントを組み立てます
func BuildDocument(issues []models.Issue, exportedAt time.Time) *models.Document {
	if issues == nil {
		issues = make([]models.Issue, 0)
	}
	organized := OrganizeIssues(issues)

	return &models.Document{
		Summary:   Summarize(issues, organized, exportedAt),
		Issues:    issues,
		Organized: organized,
	}
}
