package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// DatasetSizer сообщает размер загруженного набора данных
type DatasetSizer interface {
	DatasetSize() int
}

// HealthHandler обработчик health check запросов
type HealthHandler struct {
	dataset DatasetSizer
	logger  *zap.Logger
}

// NewHealthHandler создаёт новый HealthHandler
func NewHealthHandler(dataset DatasetSizer, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{dataset: dataset, logger: logger}
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// Check проверяет состояние сервиса
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:  "ok",
		Records: h.dataset.DatasetSize(),
	})
}
