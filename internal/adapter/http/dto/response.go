package dto

// Коды ошибок API
const (
	ErrCodeInvalidQuery = "invalid_query"
	ErrCodeInternal     = "internal_error"
)

// ErrorResponse конверт ошибки API, общий для сервера и клиента
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewErrorResponse создаёт ответ с ошибкой
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   code,
		Message: message,
	}
}

// IsEmpty true, если тело ответа не было конвертом ошибки
func (r *ErrorResponse) IsEmpty() bool {
	return r.Error == "" && r.Message == ""
}
