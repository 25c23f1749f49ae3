package usecase

import (
	"context"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
)

// ProjectRepository интерфейс для чтения набора проектов
type ProjectRepository interface {
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
	Count() int
}

// QueryRecorder интерфейс для записи метрик запросов
type QueryRecorder interface {
	ObserveQuery(clauses, matched int, duration time.Duration, err error)
}
