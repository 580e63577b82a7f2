package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirabacklog/models"
)

func issueOfType(key string, issueType models.FieldValue) models.Issue {
	return models.NewIssueBuilder().
		Set(models.FieldKey, models.StringValue(key)).
		Set(models.FieldIssueType, issueType).
		Build()
}

func keysOf(issues []models.Issue) []string {
	keys := make([]string, 0, len(issues))
	for _, issue := range issues {
		keys = append(keys, issue.Key())
	}
	return keys
}

func TestOrganizeIssues(t *testing.T) {
	issues := []models.Issue{
		issueOfType("A-1", models.StringValue("Epic")),
		issueOfType("A-2", models.StringValue("Story")),
		issueOfType("A-3", models.StringValue(" Subtask ")),
		issueOfType("A-4", models.StringValue("Bug")),
		issueOfType("A-5", models.StringValue("epic")),
		issueOfType("A-6", models.AbsentValue()),
		models.NewIssueBuilder().Set(models.FieldKey, models.StringValue("A-7")).Build(),
		issueOfType("A-8", models.StringValue("Story")),
		issueOfType("A-9", models.StringValue("Sub-task")),
	}

	organized := OrganizeIssues(issues)

	assert.Equal(t, []string{"A-1"}, keysOf(organized.Epics))
	assert.Equal(t, []string{"A-2", "A-8"}, keysOf(organized.Stories))
	assert.Equal(t, []string{"A-3"}, keysOf(organized.Subtasks))
	assert.Equal(t, []string{"A-4", "A-5", "A-6", "A-7", "A-9"}, keysOf(organized.Other))
}

func TestOrganizePartitionIsExhaustive(t *testing.T) {
	result := parseHTML(t, sampleHTML())
	organized := OrganizeIssues(result.Issues)

	buckets := map[string][]models.Issue{
		models.IssueTypeEpic:    organized.Epics,
		models.IssueTypeStory:   organized.Stories,
		models.IssueTypeSubtask: organized.Subtasks,
		"":                      organized.Other,
	}

	seen := 0
	for bucketType, bucket := range buckets {
		for _, issue := range bucket {
			seen++
			if bucketType == "" {
				assert.NotContains(t, []string{"Epic", "Story", "Subtask"}, issue.IssueType())
				continue
			}
			assert.Equal(t, bucketType, issue.IssueType())
		}
	}
	assert.Equal(t, len(result.Issues), seen)
}

func TestOrganizeEmpty(t *testing.T) {
	organized := OrganizeIssues(nil)

	assert.NotNil(t, organized.Epics)
	assert.NotNil(t, organized.Stories)
	assert.NotNil(t, organized.Subtasks)
	assert.NotNil(t, organized.Other)
}

func TestBuildDocumentSummary(t *testing.T) {
	result := parseHTML(t, sampleHTML())
	exportedAt := time.Date(2024, 5, 1, 9, 30, 15, 123456000, time.Local)

	doc := BuildDocument(result.Issues, exportedAt)

	require.Len(t, doc.Issues, 4)
	assert.Equal(t, models.Summary{
		TotalIssues: 4,
		Epics:       1,
		Stories:     1,
		Subtasks:    1,
		Other:       1,
		ExportDate:  "2024-05-01T09:30:15.123456",
	}, doc.Summary)

	s := doc.Summary
	assert.Equal(t, s.TotalIssues, s.Epics+s.Stories+s.Subtasks+s.Other)
	assert.Equal(t, len(doc.Issues), s.TotalIssues)
}

func TestBuildDocumentWithoutIssues(t *testing.T) {
	doc := BuildDocument(nil, time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local))

	assert.NotNil(t, doc.Issues)
	assert.Equal(t, 0, doc.Summary.TotalIssues)
	assert.Equal(t, "2024-01-02T03:04:05.000000", doc.Summary.ExportDate)
}
