package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
	"go.uber.org/zap"
)

// ProjectUseCase бизнес-логика чтения таблицы проектов
type ProjectUseCase struct {
	projectRepo     ProjectRepository
	recorder        QueryRecorder
	defaultPageSize int
	logger          *zap.Logger
}

// NewProjectUseCase создаёт новый экземпляр ProjectUseCase
func NewProjectUseCase(
	projectRepo ProjectRepository,
	recorder QueryRecorder,
	defaultPageSize int,
	logger *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo:     projectRepo,
		recorder:        recorder,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// List возвращает страницу проектов, совпавших с фильтрами
func (uc *ProjectUseCase) List(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	start := time.Now()
	req = req.Normalize(uc.defaultPageSize)

	// Неизвестная колонка не ошибка, но почти всегда опечатка на клиенте
	if unknown := domain.CompileFilters(req.Filters).UnknownColumns(); len(unknown) > 0 {
		uc.logger.Warn("Query filters reference unknown columns",
			zap.Strings("columns", unknown),
		)
	}

	resp, err := uc.projectRepo.Query(ctx, req)
	duration := time.Since(start)

	if err != nil {
		uc.recorder.ObserveQuery(len(req.Filters), 0, duration, err)
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	uc.recorder.ObserveQuery(len(req.Filters), resp.Total, duration, nil)

	uc.logger.Debug("Projects queried",
		zap.Int("page", req.Page),
		zap.Int("page_size", req.PageSize),
		zap.Any("filters", req.Filters),
		zap.Int("total", resp.Total),
		zap.Int("returned", len(resp.Data)),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// DatasetSize возвращает количество записей в наборе данных
func (uc *ProjectUseCase) DatasetSize() int {
	return uc.projectRepo.Count()
}
