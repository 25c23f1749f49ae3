package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/plastinin/projectgrid/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryFetcher struct {
	dataset []domain.Project
}

func (f *memoryFetcher) FetchPage(_ context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	resp := domain.ApplyQuery(f.dataset, req)
	return &resp, nil
}

func projects(n int) []domain.Project {
	out := make([]domain.Project, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Project{
			ID:     i,
			Title:  "Project",
			Status: domain.Statuses[i%len(domain.Statuses)],
			Tags:   []string{"Bug", "Urgent"},
		})
	}
	return out
}

func TestParseFilter(t *testing.T) {
	clause, err := parseFilter("status=Open,Completed")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterClause{Column: "status", Value: "Open,Completed"}, clause)

	clause, err = parseFilter("title=")
	require.NoError(t, err)
	assert.True(t, clause.IsInert())

	_, err = parseFilter("status")
	assert.Error(t, err)

	_, err = parseFilter("=open")
	assert.Error(t, err)
}

func TestSelectColumns(t *testing.T) {
	cols, err := selectColumns(nil)
	require.NoError(t, err)
	assert.Len(t, cols, len(table.DefaultColumns))

	cols, err = selectColumns([]string{"id", " status "})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, domain.FieldID, cols[0].Key)
	assert.Equal(t, domain.FieldStatus, cols[1].Key)

	_, err = selectColumns([]string{"owner"})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "проек...", truncate("проекты проекта", 8))
}

func TestPrintPageTable(t *testing.T) {
	var buf bytes.Buffer
	cols, err := selectColumns([]string{"id", "tags"})
	require.NoError(t, err)

	printPageTable(&buf, cols, projects(2), 1, 10, 2, maxCellWidth)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TAGS")
	assert.Contains(t, out, "Bug,Urgent")
	assert.Contains(t, out, "Page 1 of 1 (2 rows, 2 total)")
}

func TestRunBrowse(t *testing.T) {
	cols, err := selectColumns([]string{"id", "status"})
	require.NoError(t, err)
	ctrl := table.NewController(&memoryFetcher{dataset: projects(25)}, cols, 10, zap.NewNop())

	in := strings.NewReader(strings.Join([]string{
		"n",
		"bogus",
		"page x",
		"add",
		"col 0 status",
		"val 0 completed",
		"q",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, runBrowse(context.Background(), ctrl, in, &out, false))

	text := out.String()
	assert.Contains(t, text, "Page 1 of 3 (10 rows, 25 total)")
	assert.Contains(t, text, "Page 2 of 3 (10 rows, 25 total)")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.Contains(t, text, `invalid page "x"`)
	assert.Contains(t, text, `[0] status = "completed"`)

	state := ctrl.Snapshot()
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, []domain.FilterClause{{Column: "status", Value: "completed"}}, state.Filters)
	// статус Completed у каждой четвёртой записи: 6 из 25
	assert.Equal(t, 6, state.Total)
}

func TestRunBrowse_EndOfInput(t *testing.T) {
	ctrl := table.NewController(&memoryFetcher{dataset: projects(3)}, table.DefaultColumns, 10, zap.NewNop())
	var out bytes.Buffer

	require.NoError(t, runBrowse(context.Background(), ctrl, strings.NewReader("p\n"), &out, false))

	assert.Equal(t, 1, ctrl.Snapshot().Page)
}

func TestPrintPageJSON_UsesWireTimestamps(t *testing.T) {
	p := projects(1)
	p[0].DueDate = time.Date(2024, 3, 3, 12, 0, 0, 120_000_000, time.UTC)
	var buf bytes.Buffer

	require.NoError(t, printPageJSON(&buf, &domain.QueryResponse{Data: p, Total: 1}))

	assert.Contains(t, buf.String(), `"dueDate": "2024-03-03T12:00:00.120Z"`)
	assert.Contains(t, buf.String(), `"total": 1`)
}

func TestRootPreRun_LoadsConfig(t *testing.T) {
	t.Setenv("CLIENT_BASE_URL", "http://projects.test:9000")
	t.Setenv("QUERY_DEFAULT_PAGE_SIZE", "25")
	t.Cleanup(func() { baseURL, cfg, projectClient, log = "", nil, nil, nil })

	require.NoError(t, rootCmd.PersistentPreRunE(listCmd, nil))

	assert.Equal(t, "http://projects.test:9000", baseURL)
	assert.NotNil(t, projectClient)
	assert.Equal(t, 25, pageSizeFlag(listCmd))
}

func TestRootPreRun_InvalidConfigIsAnError(t *testing.T) {
	t.Setenv("QUERY_DEFAULT_PAGE_SIZE", "0")
	t.Cleanup(func() { baseURL, cfg, projectClient, log = "", nil, nil, nil })

	err := rootCmd.PersistentPreRunE(listCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
