package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubRepository struct {
	resp *domain.QueryResponse
	err  error
	got  domain.QueryRequest
}

func (s *stubRepository) Query(_ context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	s.got = req
	return s.resp, s.err
}

func (s *stubRepository) Count() int { return 3 }

type observation struct {
	clauses, matched int
	err              error
}

type stubRecorder struct {
	observed []observation
}

func (s *stubRecorder) ObserveQuery(clauses, matched int, _ time.Duration, err error) {
	s.observed = append(s.observed, observation{clauses: clauses, matched: matched, err: err})
}

func TestProjectUseCase_List(t *testing.T) {
	repo := &stubRepository{resp: &domain.QueryResponse{Data: []domain.Project{{ID: 1}}, Total: 1}}
	recorder := &stubRecorder{}
	uc := NewProjectUseCase(repo, recorder, domain.DefaultPageSize, zap.NewNop())

	req := domain.QueryRequest{Page: 1, PageSize: 10, Filters: map[string]string{"status": "open"}}
	resp, err := uc.List(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, req, repo.got)
	assert.Equal(t, []observation{{clauses: 1, matched: 1}}, recorder.observed)
	assert.Equal(t, 3, uc.DatasetSize())
}

func TestProjectUseCase_ListAppliesConfiguredPageSize(t *testing.T) {
	repo := &stubRepository{resp: &domain.QueryResponse{Data: []domain.Project{}}}
	uc := NewProjectUseCase(repo, &stubRecorder{}, 25, zap.NewNop())

	_, err := uc.List(context.Background(), domain.QueryRequest{Page: 0, PageSize: 0})
	require.NoError(t, err)

	assert.Equal(t, domain.QueryRequest{Page: 1, PageSize: 25, Filters: map[string]string{}}, repo.got)
}

func TestProjectUseCase_ListError(t *testing.T) {
	cause := errors.New("boom")
	recorder := &stubRecorder{}
	uc := NewProjectUseCase(&stubRepository{err: cause}, recorder, domain.DefaultPageSize, zap.NewNop())

	_, err := uc.List(context.Background(), domain.QueryRequest{Page: 1, PageSize: 10})

	assert.ErrorIs(t, err, cause)
	require.Len(t, recorder.observed, 1)
	assert.ErrorIs(t, recorder.observed[0].err, cause)
}

func TestProjectUseCase_WarnsOnUnknownColumns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &stubRepository{resp: &domain.QueryResponse{Data: []domain.Project{}}}
	uc := NewProjectUseCase(repo, &stubRecorder{}, domain.DefaultPageSize, zap.New(core))

	_, err := uc.List(context.Background(), domain.QueryRequest{
		Page:     1,
		PageSize: 10,
		Filters:  map[string]string{"owner": "bob"},
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("Query filters reference unknown columns").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []interface{}{"owner"}, entries[0].ContextMap()["columns"])
}
