package repository

import (
	"context"
	"fmt"

	"github.com/plastinin/projectgrid/internal/domain"
)

// ProjectRepository хранилище проектов в памяти.
// Набор данных задаётся один раз при создании и дальше только читается,
// поэтому репозиторий безопасен для конкурентных запросов без блокировок.
type ProjectRepository struct {
	projects []domain.Project
}

// NewProjectRepository создаёт репозиторий поверх готового набора данных
func NewProjectRepository(projects []domain.Project) (*ProjectRepository, error) {
	for i := range projects {
		if err := projects[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid dataset record %d: %w", i, err)
		}
		if projects[i].ID != i+1 {
			return nil, fmt.Errorf("dataset record %d has id %d, want %d", i, projects[i].ID, i+1)
		}
	}
	return &ProjectRepository{projects: projects}, nil
}

// Count возвращает размер набора данных
func (r *ProjectRepository) Count() int {
	return len(r.projects)
}

// Query возвращает страницу проектов с фильтрацией
func (r *ProjectRepository) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("query cancelled: %w", err)
	}

	resp := domain.ApplyQuery(r.projects, req)
	return &resp, nil
}
