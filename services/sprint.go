package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"jirabacklog/config"
	"jirabacklog/models"
)

var leadingIntPattern = regexp.MustCompile(`^\s*([+-]?\d+)`)

// SprintStats はスプリントごとの集計です
type SprintStats struct {
	Name     string
	Total    int
	Epics    int
	Stories  int
	Subtasks int
	Done     int
	Points   int
}

// SprintPlanner はスプリントフィールドをもとにイシューを集計します
type SprintPlanner struct {
	sprintField string
	pointsField string
	doneKeyword string
}

// NewSprintPlanner は設定のフィールド名を使うプランナーを作成します
func NewSprintPlanner(cfg *config.Config) *SprintPlanner {
	return &SprintPlanner{
		sprintField: cfg.SprintField,
		pointsField: cfg.StoryPointField,
		doneKeyword: strings.ToLower(cfg.DoneKeyword),
	}
}

// スプリントフィールドはカンマ区切りで複数のスプリントを持てる
func (s *SprintPlanner) sprintsOf(issue models.Issue) []string {
	value := issue.GetString(s.sprintField)
	if value == "" {
		return nil
	}

	var sprints []string
	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			sprints = append(sprints, name)
		}
	}
	return sprints
}

// SprintNames は全イシューに含まれるスプリント名を重複なしで昇順に返します
func (s *SprintPlanner) SprintNames(issues []models.Issue) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, issue := range issues {
		for _, name := range s.sprintsOf(issue) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// IssuesForSprint は指定したスプリントに属するイシューを返します
func (s *SprintPlanner) IssuesForSprint(issues []models.Issue, sprintName string) []models.Issue {
	result := make([]models.Issue, 0)
	for _, issue := range issues {
		for _, name := range s.sprintsOf(issue) {
			if name == sprintName {
				result = append(result, issue)
				break
			}
		}
	}
	return result
}

// UnassignedIssues はスプリント未割り当てのイシューを返します
func (s *SprintPlanner) UnassignedIssues(issues []models.Issue) []models.Issue {
	result := make([]models.Issue, 0)
	for _, issue := range issues {
		if issue.GetString(s.sprintField) == "" {
			result = append(result, issue)
		}
	}
	return result
}

// SprintStats は指定したスプリントの件数とストーリーポイントを集計します
func (s *SprintPlanner) SprintStats(issues []models.Issue, sprintName string) SprintStats {
	stats := SprintStats{Name: sprintName}
	for _, issue := range s.IssuesForSprint(issues, sprintName) {
		stats.Total++
		switch issue.GetString(models.FieldIssueType) {
		case models.IssueTypeEpic:
			stats.Epics++
		case models.IssueTypeStory:
			stats.Stories++
		case models.IssueTypeSubtask:
			stats.Subtasks++
		}
		if s.doneKeyword != "" && strings.Contains(strings.ToLower(issue.GetString(models.FieldStatus)), s.doneKeyword) {
			stats.Done++
		}
		stats.Points += parseStoryPoints(issue.GetString(s.pointsField))
	}
	return stats
}

// Report は全スプリントの集計をスプリント名の昇順で返します
func (s *SprintPlanner) Report(issues []models.Issue) []SprintStats {
	names := s.SprintNames(issues)
	report := make([]SprintStats, 0, len(names))
	for _, name := range names {
		report = append(report, s.SprintStats(issues, name))
	}
	return report
}

// parseStoryPoints は先頭の整数部分を読み取ります（"3.5" は 3、数値でなければ 0）
func parseStoryPoints(value string) int {
	match := leadingIntPattern.FindStringSubmatch(value)
	if match == nil {
		return 0
	}
	points, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return points
}
