package handler

import (
	"encoding/json"
	"net/http"

	"github.com/plastinin/projectgrid/internal/adapter/http/dto"
	"go.uber.org/zap"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError отправляет ответ с ошибкой
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, errCode, message string) {
	respondJSON(w, logger, status, dto.NewErrorResponse(errCode, message))
}
