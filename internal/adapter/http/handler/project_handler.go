package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/plastinin/projectgrid/internal/adapter/http/dto"
	"github.com/plastinin/projectgrid/internal/domain"
	"go.uber.org/zap"
)

// ProjectLister источник страниц проектов
type ProjectLister interface {
	List(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}

// ProjectHandler обработчик HTTP запросов таблицы проектов
type ProjectHandler struct {
	projectUC       ProjectLister
	defaultPageSize int
	logger          *zap.Logger
}

// NewProjectHandler создаёт новый ProjectHandler
func NewProjectHandler(projectUC ProjectLister, defaultPageSize int, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUC:       projectUC,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// List возвращает страницу проектов
// GET /api/projects?page=1&pageSize=10&filters={"status":"Open,Completed"}
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQuery(r.URL.Query(), h.defaultPageSize)
	if err != nil {
		h.logger.Warn("Invalid query request",
			zap.String("query", r.URL.RawQuery),
			zap.Error(err),
		)
		respondError(w, h.logger, http.StatusBadRequest, dto.ErrCodeInvalidQuery, err.Error())
		return
	}

	result, err := h.projectUC.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// клиент ушёл, отвечать некому
			return
		}
		h.logger.Error("Failed to list projects", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, dto.ErrCodeInternal, "Failed to list projects")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.ProjectListFromDomain(result))
}
