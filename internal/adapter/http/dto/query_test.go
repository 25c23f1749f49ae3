package dto

import (
	"net/url"
	"testing"

	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery(t *testing.T) {
	q, err := EncodeQuery(domain.QueryRequest{
		Page:     2,
		PageSize: 25,
		Filters:  map[string]string{"status": "Open,Completed"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "25", q.Get("pageSize"))
	assert.JSONEq(t, `{"status":"Open,Completed"}`, q.Get("filters"))
}

func TestEncodeQuery_NilFiltersBecomeEmptyObject(t *testing.T) {
	q, err := EncodeQuery(domain.QueryRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, "{}", q.Get("filters"))
}

func TestDecodeQuery_InverseOfEncode(t *testing.T) {
	req := domain.QueryRequest{
		Page:     3,
		PageSize: 7,
		Filters:  map[string]string{"status": "open", "tags": "bug, urgent"},
	}
	q, err := EncodeQuery(req)
	require.NoError(t, err)

	// через строку, как это делает транспорт
	parsed, err := url.ParseQuery(q.Encode())
	require.NoError(t, err)

	got, err := DecodeQuery(parsed, domain.DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestDecodeQuery_Defaults(t *testing.T) {
	got, err := DecodeQuery(url.Values{}, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.QueryRequest{Page: 1, PageSize: 10, Filters: map[string]string{}}, got)
}

func TestDecodeQuery_Clamping(t *testing.T) {
	got, err := DecodeQuery(url.Values{"page": {"0"}, "pageSize": {"-5"}}, 15)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 15, got.PageSize)
}

func TestDecodeQuery_NullFilters(t *testing.T) {
	got, err := DecodeQuery(url.Values{"filters": {"null"}}, 10)
	require.NoError(t, err)

	assert.NotNil(t, got.Filters)
	assert.Empty(t, got.Filters)
}

func TestDecodeQuery_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		q     url.Values
		param string
	}{
		{"page not a number", url.Values{"page": {"abc"}}, "page"},
		{"page size not a number", url.Values{"pageSize": {"1.5"}}, "pageSize"},
		{"malformed filters", url.Values{"filters": {"{status:"}}, "filters"},
		{"filters not an object", url.Values{"filters": {`["status"]`}}, "filters"},
		{"non-string filter value", url.Values{"filters": {`{"budget":5000}`}}, "filters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeQuery(tt.q, 10)
			require.ErrorIs(t, err, domain.ErrInvalidQueryRequest)

			var qerr *domain.InvalidQueryError
			require.ErrorAs(t, err, &qerr)
			assert.Equal(t, tt.param, qerr.Param)
		})
	}
}

func TestProjectListRoundTrip(t *testing.T) {
	result := &domain.QueryResponse{
		Data: []domain.Project{{
			ID:       4,
			Title:    "Rustic Steel Chair",
			Status:   domain.StatusOnHold,
			Priority: domain.PriorityHigh,
			Budget:   4200,
			Tags:     []string{"Bug", "Improvement"},
		}},
		Total: 31,
	}

	assert.Equal(t, result, ProjectListFromDomain(result).ToDomain())
}
