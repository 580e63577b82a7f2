package services

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirabacklog/models"
)

func TestCSVHeadersFirstAppearanceOrder(t *testing.T) {
	issues := []models.Issue{
		models.NewIssueBuilder().
			Set("key", models.StringValue("A-1")).
			Set("summary", models.StringValue("one")).
			Build(),
		models.NewIssueBuilder().
			Set("priority", models.StringValue("High")).
			Set("key", models.StringValue("A-2")).
			Build(),
	}

	assert.Equal(t, []string{"key", "summary", "priority"}, NewCSVProcessor().CSVHeaders(issues))
}

func TestWriteIssuesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.csv")
	issues := []models.Issue{
		models.NewIssueBuilder().
			Set("key", models.StringValue("A-1")).
			Set("assignee", models.AbsentValue()).
			Set("subtasks", models.ListValue([]string{"A-2", "A-3"})).
			Build(),
		models.NewIssueBuilder().
			Set("key", models.StringValue("A-2")).
			Set("summary", models.StringValue("needs, quoting")).
			Build(),
	}

	require.NoError(t, NewCSVProcessor().WriteIssuesCSV(path, issues))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"key", "assignee", "subtasks", "summary"},
		{"A-1", "", "A-2, A-3", ""},
		{"A-2", "", "", "needs, quoting"},
	}, records)
}

func TestWriteIssuesCSVCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "issues.csv")

	err := NewCSVProcessor().WriteIssuesCSV(path, nil)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
}
