package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jirabacklog/config"
)

func newTestPlanner() *SprintPlanner {
	return NewSprintPlanner(&config.Config{
		SprintField:     "customfield_10020",
		StoryPointField: "customfield_10016",
		DoneKeyword:     "Done",
	})
}

func TestSprintNames(t *testing.T) {
	issues := parseHTML(t, sampleHTML()).Issues

	assert.Equal(t, []string{"Sprint 1", "Sprint 2"}, newTestPlanner().SprintNames(issues))
}

func TestIssuesForSprint(t *testing.T) {
	issues := parseHTML(t, sampleHTML()).Issues
	planner := newTestPlanner()

	assert.Equal(t, []string{"GF-2", "GF-3"}, keysOf(planner.IssuesForSprint(issues, "Sprint 1")))
	assert.Equal(t, []string{"GF-3", ""}, keysOf(planner.IssuesForSprint(issues, "Sprint 2")))
	assert.Empty(t, planner.IssuesForSprint(issues, "Sprint 9"))
}

func TestUnassignedIssues(t *testing.T) {
	issues := parseHTML(t, sampleHTML()).Issues

	assert.Equal(t, []string{"GF-1"}, keysOf(newTestPlanner().UnassignedIssues(issues)))
}

func TestSprintReport(t *testing.T) {
	issues := parseHTML(t, sampleHTML()).Issues

	report := newTestPlanner().Report(issues)

	assert.Equal(t, []SprintStats{
		{Name: "Sprint 1", Total: 2, Stories: 1, Subtasks: 1, Done: 1, Points: 7},
		{Name: "Sprint 2", Total: 2, Subtasks: 1, Done: 0, Points: 2},
	}, report)
}

func TestParseStoryPoints(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{input: "5", expected: 5},
		{input: " 8 ", expected: 8},
		{input: "3.5", expected: 3},
		{input: "13 pts", expected: 13},
		{input: "-2", expected: -2},
		{input: "three", expected: 0},
		{input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseStoryPoints(tt.input))
		})
	}
}
